package domain

import "errors"

var (
	ErrInvalidDate        = errors.New("invalid solar date")
	ErrInvalidHour        = errors.New("hour out of range")
	ErrEmptyQuestion      = errors.New("question must not be empty")
	ErrQuestionTooLong    = errors.New("question too long")
	ErrUnknownPosition    = errors.New("unknown position")
	ErrRateLimited        = errors.New("generator rate limited")
	ErrQuotaExceeded      = errors.New("generator quota exceeded")
	ErrBackendUnavailable = errors.New("generator backend unavailable")
	ErrEmptyGeneration    = errors.New("generator returned no content")
)

// IsGenerationError reports whether err belongs to the generator failure
// classes that are shown to the user alongside a fallback interpretation.
func IsGenerationError(err error) bool {
	return errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrQuotaExceeded) ||
		errors.Is(err, ErrBackendUnavailable) ||
		errors.Is(err, ErrEmptyGeneration)
}
