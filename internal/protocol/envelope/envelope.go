package envelope

import (
	"fmt"
	"strings"
)

// Fixed error messages surfaced to callers.
const (
	MsgConnect   = "Could not connect to platform API"
	MsgFormat    = "Response did not match expected format"
	MsgNoSession = "Play session has not been built"
)

// Status is the outcome of a call.
type Status int

const (
	StatusError Status = iota
	StatusSuccess
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "SUCCESS"
	}
	return "ERROR"
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	switch strings.ToUpper(string(b)) {
	case "SUCCESS":
		*s = StatusSuccess
	case "ERROR":
		*s = StatusError
	default:
		return fmt.Errorf("unknown envelope status %q", b)
	}
	return nil
}

// Envelope wraps a single result. Error is empty exactly when Status is
// StatusSuccess; Content is the zero value on error.
type Envelope[T any] struct {
	Status  Status `json:"status"`
	Error   string `json:"error"`
	Content T      `json:"content"`
}

// OK reports whether the call succeeded.
func (e Envelope[T]) OK() bool { return e.Status == StatusSuccess }

// Success wraps content in a SUCCESS envelope.
func Success[T any](content T) Envelope[T] {
	return Envelope[T]{Status: StatusSuccess, Content: content}
}

// Failure builds an ERROR envelope with msg.
func Failure[T any](msg string) Envelope[T] {
	return Envelope[T]{Status: StatusError, Error: msg}
}

// Forward re-types a failed envelope, keeping its error verbatim.
func Forward[T, U any](e Envelope[U]) Envelope[T] {
	return Failure[T](e.Error)
}

// Many wraps an ordered list of results.
type Many[T any] struct {
	Status  Status `json:"status"`
	Error   string `json:"error"`
	Content []T    `json:"content"`
}

func (e Many[T]) OK() bool { return e.Status == StatusSuccess }

// SuccessMany wraps items in a SUCCESS envelope, preserving order.
func SuccessMany[T any](items []T) Many[T] {
	if items == nil {
		items = []T{}
	}
	return Many[T]{Status: StatusSuccess, Content: items}
}

// FailureMany builds an ERROR list envelope with msg.
func FailureMany[T any](msg string) Many[T] {
	return Many[T]{Status: StatusError, Error: msg}
}

// ForwardMany re-types a failed list envelope, keeping its error verbatim.
func ForwardMany[T, U any](e Many[U]) Many[T] {
	return FailureMany[T](e.Error)
}

// Map converts each item of a successful list, keeping order. Failed
// envelopes are forwarded unchanged.
func Map[T, U any](e Many[U], fn func(U) T) Many[T] {
	if !e.OK() {
		return ForwardMany[T](e)
	}
	out := make([]T, 0, len(e.Content))
	for _, item := range e.Content {
		out = append(out, fn(item))
	}
	return SuccessMany(out)
}
