package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // updated or skipped (preview)
	ExitFailure      = 1 // sync pipeline failed
	ExitCommandError = 2 // command error (bad arguments, missing configuration)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ResultWriter renders a sync Result in the configured format.
type ResultWriter struct {
	Format string
	Writer io.Writer // result output (stdout)
}

// Write renders one Result. JSON mode emits the full structured result on
// Writer regardless of outcome. Text mode prints a human summary for
// success and preview; failure reasons travel on the returned ExitError
// and reach the diagnostic stream via the caller.
func (w *ResultWriter) Write(res notesync.Result) error {
	if w.Format == "json" {
		enc := json.NewEncoder(w.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	switch res.Outcome {
	case notesync.OutcomeUpdated:
		fmt.Fprintf(w.Writer, "Updated order %s (ID %d) note for ticket %d.\n",
			res.OrderName, res.OrderID, res.TicketID)
	case notesync.OutcomeSkipped:
		fmt.Fprintf(w.Writer, "Preview for order %s (ID %d), no write performed:\n",
			res.OrderName, res.OrderID)
		fmt.Fprintln(w.Writer, "================================================")
		fmt.Fprint(w.Writer, res.Preview)
		fmt.Fprintln(w.Writer, "================================================")
	}
	return nil
}
