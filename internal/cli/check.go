package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [path]",
		Short: "Parse a question file and report its sections",
		Args:  maxPositional(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, _, err := opts.loadDocument(cmd.Flags(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d sections, %d questions\n", path, len(doc.Sections), doc.Count())
			for _, section := range doc.Sections {
				fmt.Fprintf(out, "  %s (%d)\n", section.Title, len(section.Questions))
			}
			return nil
		},
	}
}
