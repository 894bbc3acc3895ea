package quiz

import (
	"context"
	"io"

	"flashquiz/internal/question"
)

// scriptedReader replays answers, then reports end of input.
type scriptedReader struct {
	answers []string
	calls   int
}

func (r *scriptedReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.calls++
	if len(r.answers) == 0 {
		return "", io.EOF
	}
	answer := r.answers[0]
	r.answers = r.answers[1:]
	return answer, nil
}

// identityShuffler leaves the pool in document order.
type identityShuffler struct{}

func (identityShuffler) Shuffle(int, func(i, j int)) {}

// reverseShuffler reverses the pool so pops follow document order.
type reverseShuffler struct{}

func (reverseShuffler) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// recordingObserver captures session events.
type recordingObserver struct {
	asked   []question.Question
	answers []AnswerEvent
	reasons []DoneReason
	errs    []error
}

func (o *recordingObserver) OnQuestion(item question.Question, _ int) {
	o.asked = append(o.asked, item)
}

func (o *recordingObserver) OnAnswer(event AnswerEvent) {
	o.answers = append(o.answers, event)
}

func (o *recordingObserver) OnDone(reason DoneReason, err error) {
	o.reasons = append(o.reasons, reason)
	o.errs = append(o.errs, err)
}

func exampleDocument() question.Document {
	return question.Document{Sections: []question.Section{
		{Title: "S", Questions: []question.Question{
			{Text: "Q1?", Answer: true},
			{Text: "Q2?", Answer: false},
		}},
	}}
}
