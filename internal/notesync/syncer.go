package notesync

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/token"
)

// RunIDGenerator produces correlation ids for sync invocations.
type RunIDGenerator func() string

// UUIDv7RunID generates time-sortable UUIDv7 run ids, so runs sort by
// invocation time in log aggregation.
func UUIDv7RunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Syncer sequences one sync invocation end to end. It holds no mutable
// state between runs and is safe for concurrent use; all per-run state
// lives on the stack.
type Syncer struct {
	ticketing Ticketing
	commerce  Commerce
	matcher   *token.Matcher
	log       *slog.Logger
	newRunID  RunIDGenerator
}

// NewSyncer constructs a Syncer over the two collaborator ports. The
// matcher defines the order-token shape; log may be nil for a discard
// logger.
func NewSyncer(ticketing Ticketing, commerce Commerce, matcher *token.Matcher, log *slog.Logger) *Syncer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Syncer{
		ticketing: ticketing,
		commerce:  commerce,
		matcher:   matcher,
		log:       log,
		newRunID:  UUIDv7RunID,
	}
}

// WithRunIDGenerator overrides run id generation, for deterministic tests.
func (s *Syncer) WithRunIDGenerator(gen RunIDGenerator) *Syncer {
	s.newRunID = gen
	return s
}

// Sync runs the pipeline for one ticket. In preview mode the pipeline runs
// up to the merge and stops: outcome is skipped and Preview carries the
// text that would have been written. The note write is the only mutating
// call and happens at most once per invocation.
func (s *Syncer) Sync(ctx context.Context, ticketID int64, preview bool) Result {
	res := Result{RunID: s.newRunID(), TicketID: ticketID}
	log := s.log.With("run_id", res.RunID, "ticket_id", ticketID)

	annotations, err := s.ticketing.ListPrivateAnnotations(ctx, ticketID)
	if err != nil {
		return s.fail(log, res, CodeOf(err), err.Error())
	}

	annotation, ok := SelectLatestPrivate(annotations)
	if !ok {
		return s.fail(log, res, CodeNoPrivateAnnotation,
			"no qualifying private note on ticket")
	}
	log.Debug("selected annotation",
		"annotation_id", annotation.ID,
		"author", annotation.Author,
		"created_at", annotation.CreatedAt)

	body := strings.TrimSpace(annotation.Body)
	if body == "" {
		return s.fail(log, res, CodeEmptyBody, "latest private note has an empty body")
	}

	tok, ok := s.matcher.Extract(body)
	if !ok {
		return s.fail(log, res, CodeTokenNotFound,
			"no order token in note (expected "+s.matcher.Pattern().String()+")")
	}
	log.Debug("extracted order token", "token", tok)

	order, err := s.commerce.FindOrderByName(ctx, tok)
	if err != nil {
		return s.fail(log, res, CodeOf(err), err.Error())
	}
	res.OrderName = order.Name
	res.OrderID = order.ID

	block := FormatBlock(ticketID, annotation.Author, annotation.CreatedAt, body)
	merged := MergeNote(order.Note, block)
	res.Preview = merged

	if preview {
		res.Outcome = OutcomeSkipped
		res.Reason = "preview mode, no write performed"
		log.Info("preview, skipping write", "order_name", order.Name, "order_id", order.ID)
		return res
	}

	if err := s.commerce.UpdateOrderNote(ctx, order.ID, merged); err != nil {
		return s.fail(log, res, CodeOf(err), err.Error())
	}

	res.Outcome = OutcomeUpdated
	log.Info("order note updated", "order_name", order.Name, "order_id", order.ID)
	return res
}

func (s *Syncer) fail(log *slog.Logger, res Result, code Code, reason string) Result {
	res.Outcome = OutcomeFailed
	res.Code = code
	res.Reason = reason
	log.Error("sync failed", "code", string(code), "reason", reason)
	return res
}
