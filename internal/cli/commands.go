// Package cli wires the reldir commands into a cobra command tree.
// All release logic lives in pkg/commands; this package only parses
// flags, applies configured defaults, and renders results.
package cli

import (
	"fmt"

	"github.com/arthur-debert/reldir/internal/version"
	"github.com/arthur-debert/reldir/pkg/commands/cleanup"
	"github.com/arthur-debert/reldir/pkg/commands/rollback"
	"github.com/arthur-debert/reldir/pkg/commands/status"
	"github.com/arthur-debert/reldir/pkg/config"
	"github.com/arthur-debert/reldir/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "reldir",
		Short:   "Manage a releases directory deployment layout",
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "Output format: text, json or yaml")

	cfg, err := config.New()
	if err != nil {
		// Built-in defaults are static; only malformed environment
		// overrides can fail. Surface that when a command runs.
		rootCmd.PersistentPreRun = nil
		rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return rootCmd
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRollbackCmd(cfg))
	rootCmd.AddCommand(newCleanupCmd(cfg))
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reldir version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Built:  %s\n", version.Date)
			}
		},
	}
}

func newRollbackCmd(cfg *config.Config) *cobra.Command {
	var step int

	cmd := &cobra.Command{
		Use:     "rollback <dest>",
		Short:   MsgRollbackShort,
		Long:    MsgRollbackLong,
		Example: MsgRollbackExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			log.Info().
				Str("dest", args[0]).
				Int("step", step).
				Bool("dry_run", dryRun).
				Msg("Rolling back current release")

			result, err := rollback.Rollback(rollback.RollbackOptions{
				Dest:   args[0],
				Step:   step,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			return renderResult(cmd, result, rollbackText(result))
		},
	}

	cmd.Flags().IntVar(&step, "step", cfg.Step(), "Number of releases to move back from the current one")

	return cmd
}

func newCleanupCmd(cfg *config.Config) *cobra.Command {
	var (
		keepReleases int
		keepCurrent  bool
	)

	cmd := &cobra.Command{
		Use:     "cleanup <dest>",
		Short:   MsgCleanupShort,
		Long:    MsgCleanupLong,
		Example: MsgCleanupExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")

			log.Info().
				Str("dest", args[0]).
				Int("keep_releases", keepReleases).
				Bool("keep_current", keepCurrent).
				Bool("dry_run", dryRun).
				Msg("Cleaning up old releases")

			result, err := cleanup.Cleanup(cleanup.CleanupOptions{
				Dest:         args[0],
				KeepReleases: keepReleases,
				KeepCurrent:  keepCurrent,
				DryRun:       dryRun,
			})
			if err != nil {
				return err
			}

			return renderResult(cmd, result, cleanupText(result))
		},
	}

	cmd.Flags().IntVar(&keepReleases, "keep-releases", cfg.KeepReleases(), "Number of most-recent releases to retain")
	cmd.Flags().BoolVar(&keepCurrent, "keep-current", cfg.KeepCurrent(), "Spare the release current points to, even outside the keep window")

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status <dest>",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := status.Status(status.StatusOptions{Dest: args[0]})
			if err != nil {
				return err
			}

			return renderResult(cmd, result, statusText(result))
		},
	}
}
