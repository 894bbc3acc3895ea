package quiz

import "flashquiz/internal/question"

// State is the position of a session in its lifecycle.
type State int

const (
	// AwaitingQuestion means questions remain and input is open.
	AwaitingQuestion State = iota
	// Done is terminal: the pool is empty or input has closed.
	Done
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case AwaitingQuestion:
		return "awaiting_question"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// DoneReason explains why a session reached Done.
type DoneReason string

const (
	// DonePoolEmpty marks a session that asked every question.
	DonePoolEmpty DoneReason = "pool_empty"
	// DoneInputClosed marks input that ended, failed or was interrupted.
	DoneInputClosed DoneReason = "input_closed"
)

// AnswerEvent describes one answered question.
type AnswerEvent struct {
	Question  question.Question
	Input     string
	Given     bool
	Correct   bool
	Remaining int
}

// Observer receives session lifecycle events for logging or tests.
type Observer interface {
	// OnQuestion signals that a question was shown.
	OnQuestion(item question.Question, remaining int)
	// OnAnswer delivers the verdict for an answered question.
	OnAnswer(event AnswerEvent)
	// OnDone signals the session reached Done.
	OnDone(reason DoneReason, err error)
}

// multiObserver fans out events to a list of observers.
type multiObserver []Observer

func (m multiObserver) OnQuestion(item question.Question, remaining int) {
	for _, observer := range m {
		observer.OnQuestion(item, remaining)
	}
}

func (m multiObserver) OnAnswer(event AnswerEvent) {
	for _, observer := range m {
		observer.OnAnswer(event)
	}
}

func (m multiObserver) OnDone(reason DoneReason, err error) {
	for _, observer := range m {
		observer.OnDone(reason, err)
	}
}
