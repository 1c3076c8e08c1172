package logging

import (
	"go.uber.org/zap"

	"github.com/rudram/trivl/internal/quiz"
)

// SessionObserver returns a session event handler that mirrors every
// transition into the log, so a play-through can be reconstructed from
// the log file alone.
func SessionObserver(log *zap.Logger) func(quiz.Event) {
	return func(ev quiz.Event) {
		switch ev := ev.(type) {
		case quiz.StartedEvent:
			log.Info("session started", zap.Int("questions", ev.Total))
		case quiz.AnswerLockedEvent:
			log.Debug("answer locked",
				zap.Int("question", ev.Index),
				zap.Int("chosen", ev.Result.ChosenIndex),
				zap.Bool("correct", ev.Result.Correct),
				zap.Int("score", ev.Result.Score))
		case quiz.AdvancedEvent:
			log.Debug("advanced", zap.Int("question", ev.Index))
		case quiz.FinishedEvent:
			log.Info("session finished",
				zap.Int("score", ev.Score),
				zap.Int("total", ev.Total))
		}
	}
}
