package quiz

import (
	"github.com/sirupsen/logrus"

	"flashquiz/internal/question"
)

// LogObserver writes session events to a structured logger at debug level.
type LogObserver struct {
	Log logrus.FieldLogger
}

// OnQuestion logs the question being asked.
func (o LogObserver) OnQuestion(item question.Question, remaining int) {
	o.Log.WithFields(logrus.Fields{
		"remaining": remaining,
		"expected":  item.Answer,
	}).Debug("asking question")
}

// OnAnswer logs the interpreted answer and verdict.
func (o LogObserver) OnAnswer(event AnswerEvent) {
	o.Log.WithFields(logrus.Fields{
		"input":     event.Input,
		"given":     event.Given,
		"correct":   event.Correct,
		"remaining": event.Remaining,
	}).Debug("answer checked")
}

// OnDone logs why the session ended.
func (o LogObserver) OnDone(reason DoneReason, err error) {
	entry := o.Log.WithField("reason", string(reason))
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Debug("session finished")
}
