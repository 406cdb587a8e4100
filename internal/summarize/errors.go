package summarize

import "fmt"

// FailureKind classifies a backend failure for retry dispatch. The set is
// closed: every failure an attempt can produce maps to exactly one kind.
type FailureKind int

const (
	FailTimeout FailureKind = iota
	FailRateLimit
	FailBadFormat
	FailOther
)

func (k FailureKind) String() string {
	switch k {
	case FailTimeout:
		return "timeout"
	case FailRateLimit:
		return "rate_limit"
	case FailBadFormat:
		return "bad_format"
	default:
		return "other"
	}
}

// BackendError is the terminal failure returned after retries are exhausted.
type BackendError struct {
	Kind FailureKind
	Err  error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("summarization backend failed (%s): %v", e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
