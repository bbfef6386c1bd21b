package models

// Email is an outgoing message. Text is the plain-text alternative of HTML.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}
