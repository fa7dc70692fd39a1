package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
	"github.com/Ahmed-Anwar-PMO/notesync/internal/token"
)

// Run executes a scenario against fake collaborators and asserts the
// expectation. Run ids are fixed ("run-1", "run-2", ...) so output is
// deterministic.
func Run(t *testing.T, sc *Scenario) {
	t.Helper()

	ticketing := &FakeTicketing{
		TicketID: sc.Ticket.ID,
		Missing:  sc.Ticket.Missing,
	}
	for _, a := range sc.Ticket.Annotations {
		ticketing.Annotations = append(ticketing.Annotations, notesync.Annotation{
			ID:        a.ID,
			Body:      a.Body,
			Author:    a.Author,
			CreatedAt: a.CreatedAt,
			Private:   a.Private,
		})
	}

	commerce := &FakeCommerce{}
	for _, o := range sc.Orders {
		commerce.Orders = append(commerce.Orders, notesync.Order{
			ID:   o.ID,
			Name: o.Name,
			Note: o.Note,
		})
	}

	runSeq := 0
	syncer := notesync.NewSyncer(
		ticketing,
		commerce,
		token.MustNew(token.DefaultPattern),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).WithRunIDGenerator(func() string {
		runSeq++
		return fmt.Sprintf("run-%d", runSeq)
	})

	runs := sc.Runs
	if runs == 0 {
		runs = 1
	}
	var res notesync.Result
	for i := 0; i < runs; i++ {
		res = syncer.Sync(context.Background(), sc.Ticket.ID, sc.DryRun)
	}

	require.Equal(t, sc.Expect.Outcome, res.Outcome,
		"outcome mismatch, reason: %q", res.Reason)
	assert.Equal(t, sc.Expect.Code, res.Code, "failure code")
	if sc.Expect.ReasonContains != "" {
		assert.Contains(t, res.Reason, sc.Expect.ReasonContains)
	}
	if sc.Expect.OrderName != "" {
		assert.Equal(t, sc.Expect.OrderName, res.OrderName)
	}
	if sc.Expect.FindCalls != nil {
		assert.Equal(t, *sc.Expect.FindCalls, commerce.FindCalls, "commerce find calls")
	}
	if sc.Expect.UpdateCalls != nil {
		assert.Equal(t, *sc.Expect.UpdateCalls, commerce.UpdateCalls, "commerce update calls")
	}

	if sc.Expect.Golden {
		text := res.Preview
		if res.Outcome == notesync.OutcomeUpdated {
			text = commerce.Note(res.OrderID)
			// The written note and the preview must agree exactly.
			assert.Equal(t, res.Preview, text, "preview differs from written note")
		}
		g := goldie.New(t,
			goldie.WithFixtureDir("testdata/golden"),
			goldie.WithNameSuffix(".golden"),
		)
		g.Assert(t, sc.Name, []byte(text))
	}
}
