package prediction

import "errors"

// Failure categories for the prediction pipeline. Handlers classify wrapped
// errors with errors.Is and turn them into response categories.
var (
	// ErrModelUnavailable means the remote prediction service could not be
	// reached or refused the call. Transient; a caller may retry.
	ErrModelUnavailable = errors.New("prediction service unavailable")

	// ErrModelResponseMalformed means the remote service answered, but its
	// nested payload could not be decoded or did not match the batch we sent.
	ErrModelResponseMalformed = errors.New("prediction service returned a malformed response")

	// ErrPredictionCountMismatch means the number of predictions differs from
	// the number of devices. Silently zipping them would mis-attribute
	// results, so the whole batch fails.
	ErrPredictionCountMismatch = errors.New("prediction count does not match device count")
)
