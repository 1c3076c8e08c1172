package play

import (
	"github.com/google/uuid"

	"github.com/rudram/trivl/internal/quiz"
)

// batchReadyMsg carries the outcome of a question fetch. Gen identifies
// the fetch that produced it; results tagged with an older generation
// are discarded so an abandoned fetch can never clobber a newer one.
type batchReadyMsg struct {
	Gen       uuid.UUID
	Questions []quiz.Question
	Err       error
}
