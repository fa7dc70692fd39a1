package notesync

import "time"

// Annotation is a single private, timestamped entry on a support ticket.
// Annotations are immutable and sourced from the ticketing collaborator.
type Annotation struct {
	ID        int64
	Body      string
	Author    string
	CreatedAt time.Time
	Private   bool
}

// Order is the commerce-side record a transcript block is appended to.
// Name equals the order token under normalized comparison; Note is the
// shared free-text field this pipeline appends to.
type Order struct {
	ID   int64
	Name string
	Note string
}

// Outcome is the terminal state of a sync invocation.
type Outcome string

const (
	// OutcomeUpdated means the merged note was written to the order.
	OutcomeUpdated Outcome = "updated"

	// OutcomeSkipped means preview mode stopped the run before the write.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFailed means a pipeline step failed; Reason says why.
	OutcomeFailed Outcome = "failed"
)

// Result reports a single sync invocation. It is constructed once per run
// and never persisted.
type Result struct {
	// RunID correlates log lines and output for one invocation.
	RunID string `json:"run_id"`

	// TicketID is the ticket the invocation was asked to sync.
	TicketID int64 `json:"ticket_id"`

	// Outcome is the terminal state: updated, skipped, or failed.
	Outcome Outcome `json:"outcome"`

	// Code classifies a failure; empty on success.
	Code Code `json:"code,omitempty"`

	// Reason is a human-readable explanation suitable for operator
	// display. Set for failed and skipped outcomes.
	Reason string `json:"reason,omitempty"`

	// OrderName and OrderID identify the matched order, once found.
	OrderName string `json:"order_name,omitempty"`
	OrderID   int64  `json:"order_id,omitempty"`

	// Preview is the full note text that was written, or that would have
	// been written in preview mode.
	Preview string `json:"preview,omitempty"`
}
