package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Checker is implemented by every payload type.
type Checker interface {
	Check() bool
}

// Mode selects between single-object and list decoding.
type Mode int

const (
	Single Mode = iota
	Many
)

func (m Mode) String() string {
	if m == Many {
		return "many"
	}
	return "single"
}

// Kind distinguishes why a body was rejected.
type Kind int

const (
	FormatError Kind = iota + 1
	ValidationError
)

func (k Kind) String() string {
	switch k {
	case FormatError:
		return "format"
	case ValidationError:
		return "validation"
	}
	return "unknown"
}

var (
	ErrFormat     = errors.New("response is not valid JSON for the expected shape")
	ErrValidation = errors.New("response failed validation")
)

// DeserializeError reports a rejected response body.
type DeserializeError struct {
	Kind  Kind
	Type  string
	Index int // element index for list bodies, -1 otherwise
	Err   error
}

func (e *DeserializeError) Error() string {
	where := e.Type
	if e.Index >= 0 {
		where = fmt.Sprintf("%s[%d]", e.Type, e.Index)
	}
	if e.Err != nil {
		return fmt.Sprintf("decode %s: %s: %v", where, e.Kind, e.Err)
	}
	return fmt.Sprintf("decode %s: %s", where, e.Kind)
}

func (e *DeserializeError) Unwrap() error { return e.Err }

// Is matches ErrFormat and ErrValidation by kind.
func (e *DeserializeError) Is(target error) bool {
	switch target {
	case ErrFormat:
		return e.Kind == FormatError
	case ErrValidation:
		return e.Kind == ValidationError
	}
	return false
}

// Decode parses body into T and applies T's Check.
func Decode[T Checker](body []byte) (T, error) {
	return decodeAt[T](body, -1)
}

// DecodeMany parses a bare JSON array of T, checking every element.
func DecodeMany[T Checker](body []byte) ([]T, error) {
	var wrapped struct {
		Results []json.RawMessage `json:"results"`
	}
	doc := make([]byte, 0, len(body)+len(`{"results":}`))
	doc = append(doc, `{"results":`...)
	doc = append(doc, bytes.TrimSpace(body)...)
	doc = append(doc, '}')
	if err := json.Unmarshal(doc, &wrapped); err != nil {
		return nil, &DeserializeError{Kind: FormatError, Type: typeName[T](), Index: -1, Err: err}
	}
	if wrapped.Results == nil {
		return nil, &DeserializeError{Kind: FormatError, Type: typeName[T](), Index: -1, Err: errors.New("expected a JSON array")}
	}

	out := make([]T, 0, len(wrapped.Results))
	for i, raw := range wrapped.Results {
		v, err := decodeAt[T](raw, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Encode renders a request payload.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func decodeAt[T Checker](body []byte, index int) (T, error) {
	var out T
	if len(bytes.TrimSpace(body)) == 0 {
		return out, &DeserializeError{Kind: FormatError, Type: typeName[T](), Index: index, Err: errors.New("empty body")}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, &DeserializeError{Kind: FormatError, Type: typeName[T](), Index: index, Err: err}
	}
	if !out.Check() {
		var zero T
		return zero, &DeserializeError{Kind: ValidationError, Type: typeName[T](), Index: index}
	}
	return out, nil
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
