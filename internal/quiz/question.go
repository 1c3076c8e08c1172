// Package quiz holds the trivia domain: immutable questions and the
// session state machine driving a single play-through of a batch.
package quiz

import "fmt"

// Answer is one selectable option of a question.
type Answer struct {
	Text    string
	Correct bool
}

// Question is a single multiple-choice question. The answer order is fixed
// at construction time (the question bank client shuffles before building),
// and exactly one answer is correct.
type Question struct {
	Text    string
	Answers []Answer
}

// NewQuestion validates and builds a Question. It enforces the invariants
// the rest of the session relies on: at least two answers, exactly one of
// them correct.
func NewQuestion(text string, answers []Answer) (Question, error) {
	if len(answers) < 2 {
		return Question{}, fmt.Errorf("question %q: need at least 2 answers, got %d", text, len(answers))
	}

	correct := 0
	for _, a := range answers {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		return Question{}, fmt.Errorf("question %q: want exactly 1 correct answer, got %d", text, correct)
	}

	q := Question{
		Text:    text,
		Answers: make([]Answer, len(answers)),
	}
	copy(q.Answers, answers)
	return q, nil
}

// CorrectIndex returns the position of the correct answer.
func (q Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a.Correct {
			return i
		}
	}
	return -1
}
