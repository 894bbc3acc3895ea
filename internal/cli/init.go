package cli

import (
	"bufio"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"flashquiz/internal/config"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold " + config.ConfigFileName + " and a sample question file",
		Args:  maxPositional(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolve target dir: %w", err)
			}
			out := cmd.OutOrStdout()
			if !yes {
				reader := bufio.NewReader(opts.stdin)
				confirm, err := promptYesNo(reader, out, fmt.Sprintf("Initialize flashquiz in %s?", abs), true)
				if err != nil {
					return err
				}
				if !confirm {
					fmt.Fprintln(cmd.ErrOrStderr(), "Init cancelled.")
					return nil
				}
			}
			configPath, questionsPath, err := config.Scaffold(abs)
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			fmt.Fprintf(out, "Wrote %s\n", configPath)
			fmt.Fprintf(out, "Wrote %s\n", questionsPath)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
