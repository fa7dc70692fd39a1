package notesync

import (
	"errors"
	"fmt"
)

// Code classifies pipeline and collaborator failures.
type Code string

const (
	// CodeConfigMissing: a required credential or endpoint is absent.
	// Raised before any network call.
	CodeConfigMissing Code = "CONFIG_MISSING"

	// CodeTicketNotFound: the ticketing collaborator has no such ticket.
	CodeTicketNotFound Code = "TICKET_NOT_FOUND"

	// CodeNoPrivateAnnotation: the ticket has no private annotations.
	CodeNoPrivateAnnotation Code = "NO_PRIVATE_ANNOTATION"

	// CodeEmptyBody: the selected annotation body is empty.
	CodeEmptyBody Code = "EMPTY_BODY"

	// CodeTokenNotFound: the annotation body contains no order token.
	CodeTokenNotFound Code = "TOKEN_NOT_FOUND"

	// CodeOrderNotFound: no order matches the extracted token.
	CodeOrderNotFound Code = "ORDER_NOT_FOUND"

	// CodeTransport: a network or HTTP-layer failure from either
	// collaborator, including timeouts.
	CodeTransport Code = "TRANSPORT_ERROR"

	// CodeValidation: the commerce collaborator rejected the note write.
	CodeValidation Code = "VALIDATION_ERROR"
)

// Error carries a classification code alongside a human-readable message.
// Collaborator clients return *Error so the Syncer can map failures to
// outcomes without inspecting transport details.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a classified error with a formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WrapError wraps an underlying cause with a classification code.
func WrapError(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the classification code from err. Unclassified errors
// (context cancellation, raw transport failures) report CodeTransport.
func CodeOf(err error) Code {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeTransport
}
