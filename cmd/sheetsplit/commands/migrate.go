package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/cmd/sheetsplit/opts"
	"github.com/walteh/sheetsplit/pkg/migrate"
	"github.com/walteh/sheetsplit/pkg/remote/gsheets"
	"github.com/walteh/sheetsplit/pkg/retry"
	"github.com/walteh/sheetsplit/pkg/status"
)

// NewMigrateCmd creates the migrate command
func NewMigrateCmd(ro *opts.RootOpts) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Split every valid workout sheet into its own spreadsheet",
		Long: `Migrate reads the translation table, walks every client spreadsheet in
the source folder and copies each valid workout sheet into a fresh
spreadsheet in the destination folder. Failed copies are deleted again;
anything that could not be cleaned up is listed at the end.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := ro.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Workers = workers
			}

			if err := promptIDs(cfg, promptSource, promptDest); err != nil {
				return err
			}

			if cfg.TranslationSheetID == "" {
				create, err := pterm.DefaultInteractiveConfirm.Show("No translation table configured. Create the client list now?")
				if err != nil {
					return errors.Errorf("reading answer: %w", err)
				}
				if create {
					return runBootstrap(ctx, cfg)
				}
				if err := promptIDs(cfg, promptTranslation); err != nil {
					return err
				}
			}

			if err := cfg.ValidateRun(); err != nil {
				return err
			}

			client, err := gsheets.New(ctx, gsheets.Options{CredentialsFile: cfg.CredentialsFile})
			if err != nil {
				return errors.Errorf("connecting to the document store: %w", err)
			}

			mgr, err := migrate.New(migrate.Options{
				Config:   cfg,
				Client:   retry.WrapClient(client, cfg.RetryConfig()),
				Reporter: status.NewConsole(os.Stdout),
			})
			if err != nil {
				return err
			}

			summary, err := mgr.Run(ctx)
			if err != nil {
				return err
			}
			if summary.Stats.Failures() {
				return errors.Errorf("%d records failed, %d need manual cleanup",
					summary.Stats.Failed, summary.Stats.ManualCleanups)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "override the per-document worker pool size")

	return cmd
}
