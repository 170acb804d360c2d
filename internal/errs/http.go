package errs

import "fmt"

// NewHTTPError classifies a non-2xx response for the retry policy:
// 4xx client errors (except 408/429) are irrecoverable, 5xx server errors
// are recoverable, anything unexpected is retried conservatively.
func NewHTTPError(statusCode int, body, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s: status %d", operation, statusCode),
	}
}

// NewNetworkError classifies a transport-level failure. Network errors are
// always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s: %w", operation, err),
	}
}

func categoryFor(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429: // timeouts and throttling are worth retrying
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}
