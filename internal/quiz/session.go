package quiz

import "errors"

// ErrEmptyBatch is returned by Start when no questions were supplied.
// A session must never enter InProgress with nothing to ask.
var ErrEmptyBatch = errors.New("quiz: empty question batch")

// State is the lifecycle state of a Session.
type State int

const (
	StateIdle State = iota
	StateInProgress
	StateFinished
)

// String returns a short name for the state, used in logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in_progress"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// SelectionResult describes one locked-in answer: what was chosen, whether
// it was correct, and where the correct answer sits so the rendering layer
// can highlight it. After a selection every option is locked until Advance.
type SelectionResult struct {
	ChosenIndex  int
	CorrectIndex int
	Correct      bool
	Score        int
}

// AdvanceResult describes the outcome of moving past an answered question.
type AdvanceResult struct {
	Index    int
	Score    int
	Total    int
	Finished bool
}

// Session is the quiz state machine. It exclusively owns its question
// sequence; the rendering layer gets read-only views of the current
// question and drives all mutation through Start, SelectAnswer, Advance
// and Restart. All transitions are synchronous — the session is only ever
// touched from the event loop, so it carries no locking.
type Session struct {
	questions []Question
	index     int
	score     int
	answered  bool
	state     State

	observers []func(Event)
}

// NewSession returns an idle session. Seed it with Start.
func NewSession() *Session {
	return &Session{}
}

// Subscribe registers fn to receive transition events. Events fire
// synchronously inside the transition that caused them.
func (s *Session) Subscribe(fn func(Event)) {
	s.observers = append(s.observers, fn)
}

func (s *Session) emit(ev Event) {
	for _, fn := range s.observers {
		fn(ev)
	}
}

// Start seeds the session with a fresh batch and enters InProgress.
// It fails with ErrEmptyBatch on an empty batch and leaves the session
// untouched in that case.
func (s *Session) Start(questions []Question) error {
	if len(questions) == 0 {
		return ErrEmptyBatch
	}

	s.questions = make([]Question, len(questions))
	copy(s.questions, questions)
	s.index = 0
	s.score = 0
	s.answered = false
	s.state = StateInProgress

	s.emit(StartedEvent{Total: len(s.questions)})
	return nil
}

// Restart replaces the current run with a new batch. Valid from Finished,
// and from InProgress as an abandon-and-restart. Semantically identical
// to Start.
func (s *Session) Restart(questions []Question) error {
	return s.Start(questions)
}

// SelectAnswer locks in the answer at index i for the current question.
// It only acts while InProgress and before an answer has been locked;
// anything else — including a second selection — is a deliberate no-op
// reported via ok=false, so correctness never depends on the rendering
// layer disabling its buttons.
func (s *Session) SelectAnswer(i int) (SelectionResult, bool) {
	if s.state != StateInProgress || s.answered {
		return SelectionResult{}, false
	}

	q := s.questions[s.index]
	if i < 0 || i >= len(q.Answers) {
		return SelectionResult{}, false
	}

	s.answered = true
	correct := q.Answers[i].Correct
	if correct {
		s.score++
	}

	res := SelectionResult{
		ChosenIndex:  i,
		CorrectIndex: q.CorrectIndex(),
		Correct:      correct,
		Score:        s.score,
	}
	s.emit(AnswerLockedEvent{Index: s.index, Result: res})
	return res, true
}

// Advance moves past the current question once it has been answered.
// Reaching the end of the batch transitions to Finished; otherwise the
// answered lock resets for the next question.
func (s *Session) Advance() (AdvanceResult, bool) {
	if s.state != StateInProgress || !s.answered {
		return AdvanceResult{}, false
	}

	s.index++
	res := AdvanceResult{
		Index: s.index,
		Score: s.score,
		Total: len(s.questions),
	}

	if s.index == len(s.questions) {
		s.state = StateFinished
		res.Finished = true
		s.emit(FinishedEvent{Score: s.score, Total: len(s.questions)})
	} else {
		s.answered = false
		s.emit(AdvancedEvent{Index: s.index})
	}
	return res, true
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Current returns the question at the cursor. ok is false when the
// session is idle or finished.
func (s *Session) Current() (Question, bool) {
	if s.state != StateInProgress {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Index returns the zero-based cursor position.
func (s *Session) Index() int {
	return s.index
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Len returns the number of questions in the batch.
func (s *Session) Len() int {
	return len(s.questions)
}

// Answered reports whether the current question is locked.
func (s *Session) Answered() bool {
	return s.answered
}
