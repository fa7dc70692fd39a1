package notesync

import "context"

// Ticketing is the support-ticket collaborator. Implementations return
// annotations in ascending creation order and classify failures with
// *Error (CodeTicketNotFound, CodeTransport).
type Ticketing interface {
	// ListPrivateAnnotations returns the private annotations on a ticket,
	// oldest first. An existing ticket with no private annotations yields
	// an empty slice, not an error.
	ListPrivateAnnotations(ctx context.Context, ticketID int64) ([]Annotation, error)
}

// Commerce is the order-management collaborator. Implementations classify
// failures with *Error (CodeOrderNotFound, CodeValidation, CodeTransport).
type Commerce interface {
	// FindOrderByName resolves an order token to the order it names,
	// using normalized comparison on the order name.
	FindOrderByName(ctx context.Context, name string) (Order, error)

	// UpdateOrderNote overwrites the order's note field with the full
	// merged text. The caller guarantees the new text preserves all
	// prior content.
	UpdateOrderNote(ctx context.Context, orderID int64, note string) error
}
