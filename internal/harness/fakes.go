package harness

import (
	"context"
	"strings"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
)

// FakeTicketing is an in-memory ticketing collaborator.
type FakeTicketing struct {
	TicketID    int64
	Missing     bool
	Annotations []notesync.Annotation

	// ListCalls counts collaborator invocations.
	ListCalls int
}

// ListPrivateAnnotations returns the private fixture annotations in their
// declared (source-chronological) order, mirroring the real client's
// contract.
func (f *FakeTicketing) ListPrivateAnnotations(ctx context.Context, ticketID int64) ([]notesync.Annotation, error) {
	f.ListCalls++
	if f.Missing || ticketID != f.TicketID {
		return nil, notesync.NewError(notesync.CodeTicketNotFound, "ticket %d not found", ticketID)
	}
	var private []notesync.Annotation
	for _, a := range f.Annotations {
		if a.Private {
			private = append(private, a)
		}
	}
	return private, nil
}

// FakeCommerce is an in-memory commerce collaborator. UpdateOrderNote
// mutates the stored order so repeated runs observe prior writes, like
// the real remote field.
type FakeCommerce struct {
	Orders []notesync.Order

	FindCalls   int
	UpdateCalls int

	// FindErr and UpdateErr, when set, are returned instead of the
	// normal behavior.
	FindErr   error
	UpdateErr error
}

// FindOrderByName matches the token against order names, ignoring case
// and a leading "#".
func (f *FakeCommerce) FindOrderByName(ctx context.Context, name string) (notesync.Order, error) {
	f.FindCalls++
	if f.FindErr != nil {
		return notesync.Order{}, f.FindErr
	}
	for _, o := range f.Orders {
		if strings.EqualFold(strings.TrimPrefix(o.Name, "#"), strings.TrimPrefix(name, "#")) {
			return o, nil
		}
	}
	return notesync.Order{}, notesync.NewError(notesync.CodeOrderNotFound, "order %q not found", name)
}

// UpdateOrderNote overwrites the stored note for the order.
func (f *FakeCommerce) UpdateOrderNote(ctx context.Context, orderID int64, note string) error {
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i := range f.Orders {
		if f.Orders[i].ID == orderID {
			f.Orders[i].Note = note
			return nil
		}
	}
	return notesync.NewError(notesync.CodeOrderNotFound, "order id %d not found", orderID)
}

// Note returns the current note of the order with the given id, or "".
func (f *FakeCommerce) Note(orderID int64) string {
	for _, o := range f.Orders {
		if o.ID == orderID {
			return o.Note
		}
	}
	return ""
}
