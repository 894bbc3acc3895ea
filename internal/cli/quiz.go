package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"flashquiz/internal/console"
	"flashquiz/internal/quiz"
)

// runQuiz loads the question file and runs an interactive session.
func runQuiz(cmd *cobra.Command, opts *rootOptions, args []string) error {
	doc, path, cfg, err := opts.loadDocument(cmd.Flags(), args)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	log := logger.WithField("session_id", uuid.NewString())

	decision, err := console.ResolveMode(cfg.UI, opts.stdin, stdout)
	if err != nil {
		return &usageError{err: err}
	}
	if decision.Warning != "" {
		log.Warn(decision.Warning)
	}
	log.WithFields(logrus.Fields{
		"file":      path,
		"sections":  len(doc.Sections),
		"questions": doc.Count(),
		"ui":        string(decision.Mode),
	}).Debug("starting session")

	session, err := quiz.NewSession(doc, quiz.Options{
		Reader:    newLineReader(decision.Mode, opts.stdin, stdout, cfg.Prompt),
		Out:       stdout,
		Styles:    console.NewStyles(stdout, cfg.NoColor),
		Width:     cfg.WrapWidth,
		Shuffler:  quiz.NewShuffler(cfg.Seed),
		Observers: []quiz.Observer{quiz.LogObserver{Log: log}},
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return session.Run(ctx)
}
