package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"

	"flashquiz/internal/console"
	"flashquiz/internal/question"
)

// LineReader reads one line of user input per call. Any error ends the quiz.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Options configures a Session.
type Options struct {
	Reader    LineReader
	Out       io.Writer
	Styles    console.Styles
	Width     int
	Shuffler  Shuffler
	Observers []Observer
}

// Session drives the prompt, answer and feedback loop over a shuffled pool.
type Session struct {
	pool     *Pool
	state    State
	reason   DoneReason
	doneErr  error
	notified bool
	reader   LineReader
	out      io.Writer
	styles   console.Styles
	width    int
	observer multiObserver
}

// NewSession flattens and shuffles doc into a ready-to-run session.
func NewSession(doc question.Document, opts Options) (*Session, error) {
	if opts.Reader == nil {
		return nil, errors.New("quiz session requires a line reader")
	}
	if opts.Out == nil {
		return nil, errors.New("quiz session requires an output writer")
	}
	width := opts.Width
	if width <= 0 {
		width = console.DefaultWidth
	}
	shuffler := opts.Shuffler
	if shuffler == nil {
		shuffler = NewShuffler(0)
	}

	pool := NewPool(doc)
	pool.Shuffle(shuffler)

	session := &Session{
		pool:     pool,
		state:    AwaitingQuestion,
		reader:   opts.Reader,
		out:      opts.Out,
		styles:   opts.Styles,
		width:    width,
		observer: multiObserver(opts.Observers),
	}
	if pool.Len() == 0 {
		session.state = Done
		session.reason = DonePoolEmpty
	}
	return session, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Reason returns why the session is Done; empty while questions remain.
func (s *Session) Reason() DoneReason {
	return s.reason
}

// Remaining returns the number of questions not yet asked.
func (s *Session) Remaining() int {
	return s.pool.Len()
}

// Run asks questions until the pool is empty or input ends. Ending input is
// not an error; only failures writing output are returned.
func (s *Session) Run(ctx context.Context) error {
	for s.state != Done {
		if err := s.Next(ctx); err != nil {
			return err
		}
	}
	s.notifyDone()
	return nil
}

// Next asks a single question and reports the verdict.
func (s *Session) Next(ctx context.Context) error {
	if s.state == Done {
		return nil
	}
	if err := ctx.Err(); err != nil {
		s.finish(DoneInputClosed, err)
		return nil
	}
	item, ok := s.pool.Pop()
	if !ok {
		s.finish(DonePoolEmpty, nil)
		return nil
	}
	remaining := s.pool.Len()

	s.observer.OnQuestion(item, remaining)
	if _, err := fmt.Fprintf(s.out, "\n(remaining: %d)\n", remaining); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if _, err := fmt.Fprintf(s.out, "\n%s\n", s.styles.Question(console.Wrap(item.Text, s.width))); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	input, err := s.reader.ReadLine(ctx)
	if err != nil {
		s.finish(DoneInputClosed, err)
		return nil
	}

	given := question.InterpretAnswer(input)
	correct := given == item.Answer
	verdict := s.styles.Wrong("Wrong answer!")
	if correct {
		verdict = s.styles.Correct("Correct!")
	}
	if _, err := fmt.Fprintln(s.out, verdict); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	s.observer.OnAnswer(AnswerEvent{
		Question:  item,
		Input:     input,
		Given:     given,
		Correct:   correct,
		Remaining: remaining,
	})

	if remaining == 0 {
		s.finish(DonePoolEmpty, nil)
	}
	return nil
}

func (s *Session) finish(reason DoneReason, err error) {
	s.state = Done
	s.reason = reason
	s.doneErr = err
	s.notifyDone()
}

func (s *Session) notifyDone() {
	if s.notified {
		return
	}
	s.notified = true
	s.observer.OnDone(s.reason, s.doneErr)
}
