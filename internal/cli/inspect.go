package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/listbox/internal/listbox"
)

func newInspectCmd() *cobra.Command {
	var flags listboxFlags

	cmd := &cobra.Command{
		Use:   "inspect [FILE...]",
		Short: "Print the accessibility tree of a listbox",
		Long: `Builds the listbox for the given options without a terminal and prints
every element with its role and aria attributes.`,
		Example: `  # Show the tree of a multiselect listbox with one option selected
  listbox inspect --multi --value apple fruit.yaml`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runInspect(cmd *cobra.Command, args []string, flags *listboxFlags) error {
	ctx := cmd.Context()

	doc, nodes, err := loadOptions(ctx, cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	lbCfg, err := flags.listboxConfig(configFromContext(ctx), doc)
	if err != nil {
		return err
	}

	lb, err := listbox.New(ctx, lbCfg, nodes...)
	if err != nil {
		return err
	}
	return writeTree(cmd.OutOrStdout(), lb)
}

// writeTree prints one element per line, indented by nesting.
func writeTree(w io.Writer, lb *listbox.Listbox) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "listbox %s\n", lb.Attributes())

	for _, row := range lb.Rows() {
		switch {
		case row.Group != nil:
			fmt.Fprintf(&sb, "  group %s\n", row.Group.Attributes())
			fmt.Fprintf(&sb, "    label %s %q\n", row.Group.LabelAttributes(), row.Group.Label())
		case row.Option != nil:
			indent := "  "
			if row.Option.Group() != "" {
				indent = "    "
			}
			fmt.Fprintf(&sb, "%soption %s %q\n", indent, row.Option.Attributes(), row.Option.Text())
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
