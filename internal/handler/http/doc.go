// Package http implements the REST transport of the accounts service.
//
// It wires the chi router, request handlers and middleware. Tracing, access
// logging, bearer authentication, resend throttling and error-to-status
// mapping are handled here before requests reach the service layer.
package http
