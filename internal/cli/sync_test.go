package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
	"github.com/Ahmed-Anwar-PMO/notesync/internal/token"
)

type fakeTicketing struct {
	annotations []notesync.Annotation
}

func (f *fakeTicketing) ListPrivateAnnotations(ctx context.Context, ticketID int64) ([]notesync.Annotation, error) {
	return f.annotations, nil
}

type fakeCommerce struct {
	order       notesync.Order
	updateCalls int
}

func (f *fakeCommerce) FindOrderByName(ctx context.Context, name string) (notesync.Order, error) {
	if f.order.ID == 0 {
		return notesync.Order{}, notesync.NewError(notesync.CodeOrderNotFound, "order %q not found", name)
	}
	return f.order, nil
}

func (f *fakeCommerce) UpdateOrderNote(ctx context.Context, orderID int64, note string) error {
	f.updateCalls++
	return nil
}

func fakeBuild(ticketing *fakeTicketing, commerce *fakeCommerce) func(*slog.Logger) (*notesync.Syncer, error) {
	return func(log *slog.Logger) (*notesync.Syncer, error) {
		return notesync.NewSyncer(ticketing, commerce, token.MustNew(token.DefaultPattern), log).
			WithRunIDGenerator(func() string { return "run-test" }), nil
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := &cobra.Command{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetContext(context.Background())
	return cmd, out, errOut
}

func validAnnotations() []notesync.Annotation {
	return []notesync.Annotation{{
		ID:        1,
		Body:      "A273302 hold shipment",
		Author:    "Ahmed Anwar",
		CreatedAt: time.Date(2025, 11, 29, 18, 10, 0, 0, time.UTC),
		Private:   true,
	}}
}

func TestRunSync_RejectsBadTicketID(t *testing.T) {
	opts := &SyncOptions{RootOptions: &RootOptions{Format: "text"}}
	cmd, _, _ := newTestCmd()

	for _, arg := range []string{"abc", "-3", "0", "12.5", ""} {
		err := runSync(opts, arg, cmd)
		require.Error(t, err, "arg %q", arg)
		assert.Equal(t, ExitCommandError, GetExitCode(err), "arg %q", arg)
		assert.Contains(t, err.Error(), "positive integer")
	}
}

func TestRunSync_Updated(t *testing.T) {
	commerce := &fakeCommerce{order: notesync.Order{ID: 9001, Name: "A273302"}}
	opts := &SyncOptions{
		RootOptions: &RootOptions{Format: "text"},
		BuildSyncer: fakeBuild(&fakeTicketing{annotations: validAnnotations()}, commerce),
	}
	cmd, out, _ := newTestCmd()

	err := runSync(opts, "123456", cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, commerce.updateCalls)
	assert.Contains(t, out.String(), "Updated order A273302")
}

func TestRunSync_DryRunSkipsWrite(t *testing.T) {
	commerce := &fakeCommerce{order: notesync.Order{ID: 9001, Name: "A273302"}}
	opts := &SyncOptions{
		RootOptions: &RootOptions{Format: "text"},
		DryRun:      true,
		BuildSyncer: fakeBuild(&fakeTicketing{annotations: validAnnotations()}, commerce),
	}
	cmd, out, _ := newTestCmd()

	err := runSync(opts, "123456", cmd)
	require.NoError(t, err, "preview exits zero")
	assert.Equal(t, 0, commerce.updateCalls)
	assert.Contains(t, out.String(), "#123456 | Ahmed Anwar | 2025-11-29 18:10 UTC")
}

func TestRunSync_FailureExitsNonZero(t *testing.T) {
	opts := &SyncOptions{
		RootOptions: &RootOptions{Format: "text"},
		BuildSyncer: fakeBuild(&fakeTicketing{annotations: nil}, &fakeCommerce{}),
	}
	cmd, _, _ := newTestCmd()

	err := runSync(opts, "123456", cmd)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "no qualifying private note")
}

func TestRunSync_JSONOutput(t *testing.T) {
	commerce := &fakeCommerce{order: notesync.Order{ID: 9001, Name: "A273302"}}
	opts := &SyncOptions{
		RootOptions: &RootOptions{Format: "json"},
		BuildSyncer: fakeBuild(&fakeTicketing{annotations: validAnnotations()}, commerce),
	}
	cmd, out, _ := newTestCmd()

	err := runSync(opts, "123456", cmd)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"outcome": "updated"`)
	assert.Contains(t, out.String(), `"run_id": "run-test"`)
}

func TestRunSync_BuildFailureIsCommandError(t *testing.T) {
	opts := &SyncOptions{
		RootOptions: &RootOptions{Format: "text"},
		BuildSyncer: func(log *slog.Logger) (*notesync.Syncer, error) {
			return nil, notesync.NewError(notesync.CodeConfigMissing,
				"missing environment variables: ZENDESK_API_TOKEN")
		},
	}
	cmd, _, _ := newTestCmd()

	err := runSync(opts, "123456", cmd)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "ZENDESK_API_TOKEN")
}
