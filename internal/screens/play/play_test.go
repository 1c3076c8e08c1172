package play

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rudram/trivl/internal/opentdb"
	"github.com/rudram/trivl/internal/quiz"
	"github.com/rudram/trivl/internal/router"
	"github.com/rudram/trivl/internal/screens/summary"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion(t *testing.T, text string) quiz.Question {
	t.Helper()
	q, err := quiz.NewQuestion(text, []quiz.Answer{
		{Text: "right", Correct: true},
		{Text: "wrong one"},
		{Text: "wrong two"},
		{Text: "wrong three"},
	})
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	return q
}

func testBatch(t *testing.T, n int) []quiz.Question {
	t.Helper()
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = testQuestion(t, "question")
	}
	return qs
}

func testPlayScreen() *PlayScreen {
	client := opentdb.NewClient("http://example.invalid")
	return New(client, opentdb.BatchRequest{Amount: 2}, zap.NewNop())
}

// deliver hands a batch to the screen under the current generation, as
// if the in-flight fetch completed.
func deliver(s *PlayScreen, qs []quiz.Question, err error) {
	s.Update(batchReadyMsg{Gen: s.fetchGen, Questions: qs, Err: err})
}

func TestPlayScreen_BatchStartsSession(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()

	deliver(s, testBatch(t, 2), nil)

	if s.session == nil || s.session.State() != quiz.StateInProgress {
		t.Fatal("expected session to be in progress after batch")
	}
	if s.loading {
		t.Error("expected loading to be cleared")
	}
	if len(s.answers.Answers) != 4 {
		t.Errorf("answers = %d, want 4", len(s.answers.Answers))
	}
}

func TestPlayScreen_StaleBatchDiscarded(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()

	s.Update(batchReadyMsg{Gen: uuid.New(), Questions: testBatch(t, 2)})

	if s.session != nil {
		t.Error("stale batch must not start a session")
	}
	if !s.loading {
		t.Error("stale batch must not clear the loading state")
	}
}

func TestPlayScreen_FetchErrorKeepsSession(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()
	deliver(s, testBatch(t, 2), nil)

	// Lock in an answer, then fail a refetch.
	s.Update(keyPress('1'))
	score := s.session.Score()

	_ = s.fetchBatch()
	deliver(s, nil, &opentdb.NetworkError{StatusCode: 500})

	if s.errMsg == "" {
		t.Error("expected an error message after failed fetch")
	}
	if s.session.State() != quiz.StateInProgress {
		t.Error("failed fetch must not disturb the session")
	}
	if s.session.Score() != score {
		t.Errorf("score changed across failed fetch: %d != %d", s.session.Score(), score)
	}
}

func TestPlayScreen_EmptyBatch(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()

	deliver(s, nil, nil)

	if s.errMsg == "" {
		t.Error("expected an error message for an empty batch")
	}
	if s.session.State() == quiz.StateInProgress {
		t.Error("empty batch must not start a round")
	}
}

func TestPlayScreen_AnswerAndAdvance(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()
	deliver(s, testBatch(t, 2), nil)

	// Correct answer is option 1.
	s.Update(keyPress('1'))
	if !s.session.Answered() {
		t.Fatal("expected answer to be locked")
	}
	if s.lastResult == nil || !s.lastResult.Correct {
		t.Fatal("expected a correct result")
	}

	// Any key moves to the next question.
	s.Update(keyPress(' '))
	if s.session.Index() != 1 {
		t.Errorf("index = %d, want 1", s.session.Index())
	}
	if s.lastResult != nil {
		t.Error("expected verdict to be cleared on advance")
	}
}

func TestPlayScreen_FinishReplacesWithSummary(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()
	deliver(s, testBatch(t, 1), nil)

	s.Update(keyPress('2'))
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a navigation command on finish")
	}

	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected summary screen, got %T", msg.Screen)
	}
	if s.session.State() != quiz.StateFinished {
		t.Error("expected session to be finished")
	}
}

func TestPlayScreen_ErrorRetryRefetches(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()
	deliver(s, nil, &opentdb.NetworkError{})

	before := s.fetchGen
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a fetch command on retry")
	}
	if s.fetchGen == before {
		t.Error("retry must stamp a new generation")
	}
	if !s.loading || s.errMsg != "" {
		t.Error("retry must re-enter the loading state")
	}
}

func TestPlayScreen_Views(t *testing.T) {
	s := testPlayScreen()
	_ = s.Init()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	deliver(s, testBatch(t, 1), nil)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	s.errMsg = "boom"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}
