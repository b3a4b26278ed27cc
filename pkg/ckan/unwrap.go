package ckan

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownResponse is returned by Unwrap for a nil or foreign Response.
var ErrUnknownResponse = errors.New("ckan: unknown response")

// APIError is the error form of the Error variant.
type APIError struct {
	Help    string
	Payload any
}

func (e *APIError) Error() string {
	if m, ok := e.Payload.(map[string]any); ok {
		msg, _ := m["message"].(string)
		typ, _ := m["__type"].(string)
		switch {
		case typ != "" && msg != "":
			return fmt.Sprintf("ckan api error: %s: %s", typ, msg)
		case msg != "":
			return "ckan api error: " + msg
		}
	}
	raw, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Sprintf("ckan api error: %v", e.Payload)
	}
	return "ckan api error: " + string(raw)
}

// Unwrap collapses a Response into a value and an error for callers that do
// not need to tell the failure variants apart. Failures can still be
// recovered with errors.As using *APIError, StringError, TransportError or
// DecodeError.
func Unwrap[T any](resp Response[T]) (T, error) {
	var zero T
	switch r := resp.(type) {
	case Result[T]:
		return r.Result, nil
	case Error:
		return zero, &APIError{Help: r.Help, Payload: r.Error}
	case StringError:
		return zero, r
	case TransportError:
		return zero, r
	case DecodeError:
		return zero, r
	default:
		return zero, ErrUnknownResponse
	}
}
