package swagval

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeNotInteger    = "not_integer"
	CodeMaximum       = "maximum"
	CodeMinimum       = "minimum"
	CodeMultipleOf    = "multiple_of"
	CodeMaxLength     = "max_length"
	CodeMinLength     = "min_length"
	CodePattern       = "pattern"
	CodeMaxItems      = "max_items"
	CodeMinItems      = "min_items"
	CodeTupleSize     = "tuple_size"
	CodeUniqueItems   = "unique_items"
	CodeMaxProperties = "max_properties"
	CodeMinProperties = "min_properties"
	CodeRequired      = "required"
	CodeInvalidEnum   = "invalid_enum"
	// Reference and schema problems
	CodeUnknownSchema   = "unknown_schema"
	CodeCyclicReference = "cyclic_reference"
	CodeInvalidSchema   = "invalid_schema"
)

// ValidationError is a single detected violation.
type ValidationError struct {
	Path    string `json:"path"` // JSON Pointer (for example: /items/2/price); "" is the root.
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string { return e.Message }

// String renders "path: message", naming the root "(root)".
func (e ValidationError) String() string {
	p := e.Path
	if p == "" {
		p = "(root)"
	}
	return p + ": " + e.Message
}

// Errors is an ordered, accumulated list of violations that implements error.
type Errors []ValidationError

// Error summarizes the first few entries.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(errs)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		// e.g. /age: exceeds maximum (should be <=10)
		b.WriteString(errs[i].String())
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages returns the bare messages in order.
func (errs Errors) Messages() []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

// AsErrors extracts Errors from an error using errors.As internally.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
