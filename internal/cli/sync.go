package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ahmed-Anwar-PMO/notesync/internal/config"
	"github.com/Ahmed-Anwar-PMO/notesync/internal/notesync"
	"github.com/Ahmed-Anwar-PMO/notesync/internal/shopify"
	"github.com/Ahmed-Anwar-PMO/notesync/internal/token"
	"github.com/Ahmed-Anwar-PMO/notesync/internal/zendesk"
)

// SyncOptions holds flags for the sync command.
type SyncOptions struct {
	*RootOptions
	DryRun bool

	// BuildSyncer overrides pipeline construction (for testing). If nil,
	// collaborators are built from the environment configuration.
	BuildSyncer func(log *slog.Logger) (*notesync.Syncer, error)
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SyncOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sync <ticket-id>",
		Short: "Append a ticket's latest private note to its order",
		Long: `Append a ticket's latest private note to the order it references.

The ticket's most recent private note is selected, an order token (for
example "A273302") is extracted from its text, and a transcript block is
appended to that order's note field. With --dry-run the merged note is
printed and nothing is written.

Example:
  notesync sync 123456
  notesync sync 123456 --dry-run`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the merged note without writing it")

	return cmd
}

func runSync(opts *SyncOptions, ticketArg string, cmd *cobra.Command) error {
	ticketID, err := strconv.ParseInt(ticketArg, 10, 64)
	if err != nil || ticketID <= 0 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("ticket id must be a positive integer, got %q", ticketArg))
	}

	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	build := opts.BuildSyncer
	if build == nil {
		build = buildSyncer
	}
	syncer, err := build(log)
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}

	res := syncer.Sync(cmd.Context(), ticketID, opts.DryRun)

	writer := &ResultWriter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}
	if err := writer.Write(res); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}

	if res.Outcome == notesync.OutcomeFailed {
		return NewExitError(ExitFailure, res.Reason)
	}
	return nil
}

// buildSyncer wires the pipeline from environment configuration. It fails
// fast on missing configuration, before any network call.
func buildSyncer(log *slog.Logger) (*notesync.Syncer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	matcher, err := token.New(cfg.TokenPattern())
	if err != nil {
		return nil, err
	}

	ticketing := zendesk.NewClient(zendesk.Config{
		Subdomain: cfg.ZendeskSubdomain,
		Email:     cfg.ZendeskEmail,
		APIToken:  cfg.ZendeskAPIToken,
		Timeout:   cfg.HTTPTimeout,
	})
	commerce := shopify.NewClient(shopify.Config{
		Store:       cfg.ShopifyStore,
		AccessToken: cfg.ShopifyAdminToken,
		APIVersion:  cfg.ShopifyAPIVersion,
		Timeout:     cfg.HTTPTimeout,
	})

	return notesync.NewSyncer(ticketing, commerce, matcher, log), nil
}
