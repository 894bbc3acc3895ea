package quiz

import "flashquiz/internal/question"

// Shuffler permutes n elements through swap; *rand.Rand from math/rand/v2
// satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Pool is the working set of questions for one quiz run.
type Pool struct {
	items []question.Question
}

// NewPool flattens every section of doc into a pool in document order.
func NewPool(doc question.Document) *Pool {
	return &Pool{items: doc.Questions()}
}

// Len returns the number of questions left.
func (p *Pool) Len() int {
	return len(p.items)
}

// Shuffle reorders the remaining questions with a uniform permutation.
func (p *Pool) Shuffle(shuffler Shuffler) {
	shuffler.Shuffle(len(p.items), func(i, j int) {
		p.items[i], p.items[j] = p.items[j], p.items[i]
	})
}

// Pop removes and returns the last question; ok is false once empty.
func (p *Pool) Pop() (item question.Question, ok bool) {
	if len(p.items) == 0 {
		return question.Question{}, false
	}
	last := len(p.items) - 1
	item = p.items[last]
	p.items = p.items[:last]
	return item, true
}

// Items returns a copy of the remaining questions in pop-reverse order.
func (p *Pool) Items() []question.Question {
	return append([]question.Question(nil), p.items...)
}
