package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/config"
	"github.com/rshade/listbox/internal/tui"
)

// programRunner runs the interactive model until it quits.
type programRunner func(ctx context.Context, m tui.Model) (tui.Model, error)

// runTeaProgram runs m on the terminal. The UI is drawn on stderr so the
// selection on stdout can be captured; keys are read from the terminal
// even when stdin carries the options.
func runTeaProgram(ctx context.Context, m tui.Model) (tui.Model, error) {
	if !isTerminal(os.Stderr) {
		return m, ErrNoTerminal
	}

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
	if !isTerminal(os.Stdin) {
		opts = append(opts, tea.WithInputTTY())
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, fmt.Errorf("running interactive listbox: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok {
		// This should not happen unless the TUI library changes
		return m, fmt.Errorf("unexpected model type: %T, expected tui.Model", final)
	}
	return result, nil
}

type pickFlags struct {
	listboxFlags

	virtualized bool
	height      int
	title       string
	output      string
}

func newPickCmd(run programRunner) *cobra.Command {
	var flags pickFlags

	cmd := &cobra.Command{
		Use:   "pick [FILE...]",
		Short: "Pick options interactively",
		Long: `Shows an interactive listbox and prints the selection.

Options come from YAML documents, or from stdin as one "value<TAB>text"
line per option when no file (or "-") is given.

Keys: up/down move, home/end jump, space/enter select, tab toggles focus,
q or esc finish, ctrl+c cancels. With --multi, shift+up/down extend the
selection, ctrl+shift+home/end select a range and ctrl+a selects all.
In single-select modes enter finishes after selecting.`,
		Example: `  # Pick one fruit
  listbox pick fruit.yaml

  # Pick several values from a list of lines
  ls | listbox pick --multi --label Files

  # Long lists render only the rows in view
  seq 10000 | listbox pick --virtualized --height 15`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, args, &flags, run)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.virtualized, "virtualized", false, "render only the rows in view")
	cmd.Flags().IntVar(&flags.height, "height", 0, "rows in view for --virtualized (0 fits the terminal)")
	cmd.Flags().StringVar(&flags.title, "title", "", "title above the options (defaults to the label)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", config.OutputText, "selection format: text, json or yaml")

	return cmd
}

func runPick(cmd *cobra.Command, args []string, flags *pickFlags, run programRunner) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	output := cfg.Output.Format
	if cmd.Flags().Changed("output") {
		output = flags.output
	}
	if err := config.ValidateOutputFormat(output); err != nil {
		return err
	}

	height := cfg.Listbox.Height
	if cmd.Flags().Changed("height") {
		height = flags.height
	}
	if height < 0 {
		return fmt.Errorf("%w: %d", config.ErrInvalidHeight, height)
	}

	doc, nodes, err := loadOptions(ctx, cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	lbCfg, err := flags.listboxConfig(cfg, doc)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("virtualized") {
		lbCfg.Virtualized = flags.virtualized
	}

	model, err := tui.NewModel(ctx, lbCfg, nodes, tui.Options{
		Title:          flags.title,
		Description:    doc.Description,
		Height:         height,
		ConfirmOnEnter: true,
	})
	if err != nil {
		return err
	}

	final, err := run(ctx, model)
	if err != nil {
		return err
	}

	if final.State() == tui.ViewStateCancelled {
		logger.Debug().Ctx(ctx).Msg("selection cancelled")
		return &ExitError{ExitCode: exitCodeCancelled, Reason: "selection cancelled"}
	}

	selected := final.Selected()
	logger.Debug().Ctx(ctx).Strs("selected", selected).Str("mode", lbCfg.Mode.String()).Msg("selection made")

	return writeSelection(cmd.OutOrStdout(), output, selected, optionTexts(final.Listbox().Entries()))
}
