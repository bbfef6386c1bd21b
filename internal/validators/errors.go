package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError carries a "field" -> "message" map for every rule that
// failed. Field names are the JSON names of the request model.
type ValidationError struct {
	Errors map[string]string
}

// Error joins the per-field messages in a stable, field-sorted order.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s %s", field, e.Errors[field]))
	}
	return strings.Join(msgs, "; ")
}
