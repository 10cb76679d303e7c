package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/cmd/sheetsplit/opts"
	"github.com/walteh/sheetsplit/pkg/config"
	"github.com/walteh/sheetsplit/pkg/migrate"
	"github.com/walteh/sheetsplit/pkg/remote/gsheets"
	"github.com/walteh/sheetsplit/pkg/retry"
)

// NewBootstrapCmd creates the bootstrap command
func NewBootstrapCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create a fresh translation table listing every client",
		Long: `Bootstrap creates the translation table in the destination folder and
pre-fills it with one row per client spreadsheet. Fill in the
descriptions and skip flags, then run migrate with the printed sheet id.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ro.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if err := promptIDs(cfg, promptSource, promptDest); err != nil {
				return err
			}
			return runBootstrap(cmd.Context(), cfg)
		},
	}

	return cmd
}

// runBootstrap creates the translation table and prints where to find it.
// The migrate command reuses it when the user answers yes to the client
// list question.
func runBootstrap(ctx context.Context, cfg *config.Config) error {
	if cfg.SourceFolderID == "" {
		return errors.New("source_folder_id is required")
	}
	if cfg.DestFolderID == "" {
		return errors.New("dest_folder_id is required")
	}

	client, err := gsheets.New(ctx, gsheets.Options{CredentialsFile: cfg.CredentialsFile})
	if err != nil {
		return errors.Errorf("connecting to the document store: %w", err)
	}

	mgr, err := migrate.New(migrate.Options{
		Config: cfg,
		Client: retry.WrapClient(client, cfg.RetryConfig()),
	})
	if err != nil {
		return err
	}

	res, err := mgr.Bootstrap(ctx)
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Created translation table with %d clients", res.Clients)
	pterm.Info.Printfln("Sheet id: %s", res.DocumentID)
	pterm.Info.Println("Fill in the Description and Skip? columns, then run: sheetsplit migrate")
	return nil
}
