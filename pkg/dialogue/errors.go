package dialogue

import "fmt"

// RecommendationFailedError collapses any internal failure of a conversation
// turn into one condition. Callers learn that the turn failed and at which
// step, never the storage or model internals behind it.
type RecommendationFailedError struct {
	Op  string
	Err error
}

func (e *RecommendationFailedError) Error() string {
	return fmt.Sprintf("recommendation failed: %s: %v", e.Op, e.Err)
}

func (e *RecommendationFailedError) Unwrap() error {
	return e.Err
}
