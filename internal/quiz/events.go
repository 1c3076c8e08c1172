package quiz

// Event is a typed transition result emitted by the session. The rendering
// layer (and the logger) registers handlers via Session.Subscribe instead
// of reaching into session state.
type Event interface {
	event()
}

// StartedEvent fires when a batch seeds the session.
type StartedEvent struct {
	Total int
}

// AnswerLockedEvent fires when an answer is locked in for a question.
type AnswerLockedEvent struct {
	Index  int
	Result SelectionResult
}

// AdvancedEvent fires on a non-terminal advance.
type AdvancedEvent struct {
	Index int
}

// FinishedEvent fires when the last question has been advanced past.
type FinishedEvent struct {
	Score int
	Total int
}

func (StartedEvent) event()      {}
func (AnswerLockedEvent) event() {}
func (AdvancedEvent) event()     {}
func (FinishedEvent) event()     {}
