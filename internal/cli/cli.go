package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks failures caused by invalid arguments or flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand(stdin)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteContextC(context.Background())
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(stderr, "flashquiz: %v\n", err)
	var usage *usageError
	if errors.As(err, &usage) {
		if cmd == nil {
			cmd = root
		}
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return ExitError
}

func newRootCommand(stdin io.Reader) *cobra.Command {
	opts := &rootOptions{stdin: stdin}
	root := &cobra.Command{
		Use:   "flashquiz [path]",
		Short: "Run a true/false flashcard quiz in the terminal",
		Long: "flashquiz reads a question file of titled sections with 'w' (true) and 'f' (false)\n" +
			"questions, shuffles them and asks them one by one. Answers containing 'w' or 'y'\n" +
			"count as true.",
		Args:          maxPositional(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuiz(cmd, opts, args)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	opts.registerPersistent(root.PersistentFlags())
	opts.registerQuiz(root.Flags())

	root.AddCommand(
		newCheckCommand(opts),
		newFormatCommand(opts),
		newExportCommand(opts),
		newInitCommand(opts),
	)
	return root
}

// maxPositional reports too many arguments as a usage error.
func maxPositional(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
