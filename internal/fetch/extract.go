package fetch

import (
	"encoding/json"
	"fmt"
)

// Extractor turns a successful payload into typed fields.
type Extractor[T any] interface {
	Extract(resp *RawResponse) (T, error)
}

type ExtractorFunc[T any] func(resp *RawResponse) (T, error)

func (f ExtractorFunc[T]) Extract(resp *RawResponse) (T, error) {
	return f(resp)
}

// UnexpectedShapeError reports a payload that does not have the fields the
// caller relies on.
type UnexpectedShapeError struct {
	URL    string
	Detail string
	Err    error
}

func (e *UnexpectedShapeError) Error() string {
	msg := fmt.Sprintf("unexpected response structure from %s: %s", e.URL, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *UnexpectedShapeError) Unwrap() error {
	return e.Err
}

func NewUnexpectedShapeError(resp *RawResponse, detail string, err error) *UnexpectedShapeError {
	u := ""
	if resp != nil {
		u = resp.URL
	}

	return &UnexpectedShapeError{URL: u, Detail: detail, Err: err}
}

// JSONExtractor decodes the whole body into T.
type JSONExtractor[T any] struct{}

func (JSONExtractor[T]) Extract(resp *RawResponse) (T, error) {
	var body T
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return body, NewUnexpectedShapeError(resp, "malformed JSON document", err)
	}

	return body, nil
}
