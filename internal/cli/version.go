package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/listbox/pkg/version"
)

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(w, "listbox version %s\n", ver); err != nil {
				return err
			}
			if !version.IsRelease() {
				_, _ = fmt.Fprintln(w, "development build")
			}
			if commit := version.GetGitCommit(); commit != "" {
				_, _ = fmt.Fprintf(w, "commit: %s\n", commit)
			}
			if date := version.GetBuildDate(); date != "" {
				_, _ = fmt.Fprintf(w, "built: %s\n", date)
			}
			return nil
		},
	}
}
