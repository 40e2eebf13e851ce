package interview

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidInput is the single error kind reported for malformed input:
// wrong counts, non-numeric tokens, out-of-range group sizes, negative
// amounts and arithmetic overflow.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes which piece of input was rejected.
type InputError struct {
	Field   string
	Message string
	Err     error
}

// Error reports the rejected field, then the message and cause if set.
func (e *InputError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrInvalidInput, e.Field)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes ErrInvalidInput and the underlying cause to errors.Is
// and errors.As.
func (e *InputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidInput}
	}
	return []error{ErrInvalidInput, e.Err}
}

// IsInvalidInput reports whether err was caused by malformed input.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

func invalidf(field, format string, args ...any) error {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// numberError reports tok as an unparsable number. A *strconv.NumError is
// reduced to its cause since the field and token are already reported.
func numberError(field, tok string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &InputError{Field: field, Message: strconv.Quote(tok), Err: err}
}
