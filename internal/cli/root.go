package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

type configKey struct{}

// contextWithConfig stores the resolved configuration in ctx.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the configuration stored in ctx, or the defaults.
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.New()
}

// NewRootCmd creates the root Cobra command for the listbox CLI.
// It wires up configuration, logging, tracing and the pick, inspect and
// version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	return newRootCmd(ver, runTeaProgram)
}

func newRootCmd(ver string, run programRunner) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "listbox",
		Short:         "Accessible listbox picker for the terminal",
		Long:          "listbox: pick one or more options from YAML documents or stdin with a keyboard and mouse driven listbox",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cmd.SetContext(contextWithConfig(cmd.Context(), cfg))

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $LISTBOX_HOME/config.yaml or ~/.listbox/config.yaml)")
	cmd.AddCommand(newPickCmd(run), newInspectCmd(), newVersionCmd(ver))

	return cmd
}

// loadConfig reads the config named by --config or LISTBOX_CONFIG strictly
// and the default config file leniently.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flagValue, _ := cmd.Flags().GetString("config")
	path, explicit := config.ResolvePath(flagValue)
	if explicit {
		return config.Load(path)
	}
	return config.NewWithDefaults(cmd.Context(), path), nil
}

const rootCmdExample = `  # Pick one option from a document
  listbox pick fruit.yaml

  # Pick several options from stdin lines of "value<TAB>text"
  printf 'a\tAlpha\nb\tBeta\n' | listbox pick --multi

  # Print the selection as JSON
  listbox pick --multi --output json fruit.yaml vegetables.yaml

  # Show the accessibility tree without a terminal
  listbox inspect --multi --value apple fruit.yaml`
