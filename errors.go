package vaporetto

import "fmt"

// Kind classifies the reason a vaporetto operation failed. The core only
// ever fails during Predictor construction and Sentence construction;
// Predict, PredictWithScore and FillTags are infallible given a valid
// Predictor and a non-empty Sentence.
type Kind int

const (
	// InvalidModel means a Model's structure is inconsistent: a weight
	// vector's length doesn't match its window size or pattern length, or
	// tagging was requested against a model with no tag classes.
	InvalidModel Kind = iota
	// InvalidInput means the caller-supplied sentence is unusable, e.g.
	// zero-length.
	InvalidInput
)

func (k Kind) String() string {
	switch k {
	case InvalidModel:
		return "InvalidModel"
	case InvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by Model.Validate, Predictor.New and
// sentence constructors. It carries a Kind so callers can distinguish
// structural model problems from bad input without string matching.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newError(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}
