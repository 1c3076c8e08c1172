package play

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rudram/trivl/internal/logging"
	"github.com/rudram/trivl/internal/opentdb"
	"github.com/rudram/trivl/internal/quiz"
	"github.com/rudram/trivl/internal/router"
	"github.com/rudram/trivl/internal/screen"
	"github.com/rudram/trivl/internal/screens/summary"
	"github.com/rudram/trivl/internal/ui/components"
	"github.com/rudram/trivl/internal/ui/layout"
)

// PlayScreen implements screen.Screen for the active quiz round: it
// fetches a question batch, drives the session through it and hands
// off to the summary screen when the round finishes.
type PlayScreen struct {
	client *opentdb.Client
	req    opentdb.BatchRequest
	log    *zap.Logger

	session    *quiz.Session
	answers    components.AnswerList
	lastResult *quiz.SelectionResult

	fetchGen uuid.UUID
	loading  bool
	errMsg   string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.ScoreProvider = (*PlayScreen)(nil)

// New creates a PlayScreen that starts a fresh session once the first
// batch arrives.
func New(client *opentdb.Client, req opentdb.BatchRequest, log *zap.Logger) *PlayScreen {
	return &PlayScreen{
		client: client,
		req:    req,
		log:    log,
	}
}

// Resume creates a PlayScreen that restarts an existing session on the
// next batch, keeping its subscribers.
func Resume(client *opentdb.Client, req opentdb.BatchRequest, log *zap.Logger, session *quiz.Session) *PlayScreen {
	s := New(client, req, log)
	s.session = session
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	return s.fetchBatch()
}

func (s *PlayScreen) Title() string {
	return "Quiz"
}

func (s *PlayScreen) Score() (int, int) {
	if s.session == nil || s.session.State() == quiz.StateIdle {
		return 0, -1
	}
	return s.session.Score(), s.session.Len()
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.loading || s.session == nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.session.Answered() {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Lock in"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		return s.handleBatch(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// fetchBatch requests a fresh question batch. Each call stamps a new
// generation so a result from a superseded fetch is ignored.
func (s *PlayScreen) fetchBatch() tea.Cmd {
	gen := uuid.New()
	s.fetchGen = gen
	s.loading = true
	s.errMsg = ""

	client := s.client
	req := s.req
	return func() tea.Msg {
		questions, err := client.FetchBatch(context.Background(), req)
		return batchReadyMsg{Gen: gen, Questions: questions, Err: err}
	}
}

func (s *PlayScreen) handleBatch(msg batchReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.fetchGen {
		s.log.Debug("discarding stale batch", zap.String("generation", msg.Gen.String()))
		return s, nil
	}
	s.loading = false

	if msg.Err != nil {
		s.log.Warn("batch fetch failed", zap.Error(msg.Err))
		s.errMsg = friendlyError(msg.Err)
		return s, nil
	}

	var err error
	if s.session == nil {
		s.session = quiz.NewSession()
		s.session.Subscribe(logging.SessionObserver(s.log))
		err = s.session.Start(msg.Questions)
	} else {
		err = s.session.Restart(msg.Questions)
	}
	if err != nil {
		s.errMsg = friendlyError(err)
		return s, nil
	}

	s.syncAnswers()
	return s, nil
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		switch key {
		case "r", "R":
			return s, s.fetchBatch()
		default:
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if s.loading || s.session == nil || s.session.State() != quiz.StateInProgress {
		return s, nil
	}

	// Feedback showing — any key moves on.
	if s.session.Answered() {
		return s.advance()
	}

	switch key {
	case "enter":
		return s.lockAnswer(s.answers.Selected)
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(s.answers.Answers) {
			s.answers.Selected = i
			return s.lockAnswer(i)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.answers, cmd = s.answers.Update(msg)
	return s, cmd
}

func (s *PlayScreen) lockAnswer(i int) (screen.Screen, tea.Cmd) {
	res, ok := s.session.SelectAnswer(i)
	if !ok {
		return s, nil
	}
	s.lastResult = &res
	s.answers.Lock(res)
	return s, nil
}

func (s *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	res, ok := s.session.Advance()
	if !ok {
		return s, nil
	}
	if res.Finished {
		sess := s.session
		client := s.client
		req := s.req
		log := s.log
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(res.Score, res.Total, func() screen.Screen {
					return Resume(client, req, log, sess)
				}),
			}
		}
	}
	s.syncAnswers()
	return s, nil
}

// syncAnswers rebuilds the answer list for the current question.
func (s *PlayScreen) syncAnswers() {
	s.lastResult = nil
	if q, ok := s.session.Current(); ok {
		s.answers = components.NewAnswerList(q)
	}
}

// friendlyError turns client and session errors into a short message
// suitable for the error view.
func friendlyError(err error) string {
	var netErr *opentdb.NetworkError
	if errors.As(err, &netErr) {
		if netErr.StatusCode > 0 {
			return "The question bank is unavailable right now (try again in a moment)."
		}
		return "Could not reach the question bank. Check your connection."
	}
	var fmtErr *opentdb.FormatError
	if errors.As(err, &fmtErr) {
		return "The question bank sent a response we could not read."
	}
	if errors.Is(err, quiz.ErrEmptyBatch) {
		return "No questions match these settings. Try a different category or difficulty."
	}
	return err.Error()
}
