package opentdb

import "fmt"

// NetworkError indicates the transport failed or the question bank
// returned a non-success status. A fetch that fails this way is
// retryable and never touches session state.
type NetworkError struct {
	StatusCode int // 0 when the transport itself failed
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("question bank returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("question bank unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FormatError indicates the response body was not valid JSON or did not
// match the expected result-list shape.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected question bank response: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
