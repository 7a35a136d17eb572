package usecase

import (
	"errors"
	"fmt"

	"portfolio-assistant/internal/integrations/openai"
)

type ErrorCode string

const (
	ErrorInvalidInput ErrorCode = "INVALID_INPUT"
	ErrorInternal     ErrorCode = "INTERNAL_ERROR"
)

// Error is the only error type the flows propagate. Upstream model and
// network faults never surface here; they are absorbed into fallback
// responses. What remains is input-contract violations and wiring faults.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// httpStatusCoder matches upstream errors that carry an HTTP status.
type httpStatusCoder interface {
	HTTPStatusCode() int
}

// Upstream failure classes, used for event payloads and fallback wording.
const (
	failureUnavailable   = "upstream_unavailable"
	failureAuth          = "upstream_auth_failure"
	failureOverloaded    = "upstream_overloaded"
	failureEmptyResponse = "upstream_empty_response"
)

// classifyUpstreamFailure maps an adapter error to its failure class.
func classifyUpstreamFailure(err error) string {
	if errors.Is(err, openai.ErrEmptyCompletion) {
		return failureEmptyResponse
	}
	var statusErr httpStatusCoder
	if errors.As(err, &statusErr) {
		switch status := statusErr.HTTPStatusCode(); {
		case status == 401 || status == 403:
			return failureAuth
		case status == 429 || status >= 500:
			return failureOverloaded
		default:
			return failureUnavailable
		}
	}
	return failureUnavailable
}
