package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"flashquiz/internal/question"
)

func newFormatCommand(opts *rootOptions) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "format [path]",
		Short: "Print a question file in canonical form",
		Args:  maxPositional(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, path, _, err := opts.loadDocument(cmd.Flags(), args)
			if err != nil {
				return err
			}
			formatted := question.Format(doc)
			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), formatted)
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				return &question.FileAccessError{Path: path, Err: err}
			}
			if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Formatted %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file in place")
	return cmd
}
