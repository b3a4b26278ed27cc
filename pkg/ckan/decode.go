package ckan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var errNullString = errors.New("expected string, found null")

// Decode classifies a response body. Shapes are tried in a fixed order:
// success envelope, error envelope, bare string. A body matching none of
// them, including a result that does not fit T, yields a DecodeError.
func Decode[T any](body []byte) Response[T] {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return DecodeError{Message: fmt.Sprintf("invalid json: %v", err)}
	}

	success, successErr := decodeSuccess[T](raw)
	if successErr == nil {
		return Result[T]{Success: success}
	}

	fail, failErr := decodeFail(raw)
	if failErr == nil {
		return Error{Fail: fail}
	}

	msg, stringErr := decodeString(raw)
	if stringErr == nil {
		return StringError{Message: msg}
	}

	return DecodeError{Message: fmt.Sprintf(
		"data did not match any response shape (result: %v; error: %v; string: %v)",
		successErr, failErr, stringErr,
	)}
}

func decodeSuccess[T any](raw json.RawMessage) (Success[T], error) {
	fields, help, err := decodeEnvelope(raw)
	if err != nil {
		return Success[T]{}, err
	}
	result, ok := fields["result"]
	if !ok {
		return Success[T]{}, errors.New(`missing field "result"`)
	}
	if isNull(result) && !nilable[T]() {
		var zero T
		return Success[T]{}, fmt.Errorf("field \"result\": expected %T, found null", zero)
	}
	var value T
	if err := json.Unmarshal(result, &value); err != nil {
		return Success[T]{}, fmt.Errorf("field \"result\": %w", err)
	}
	return Success[T]{Help: help, Result: value}, nil
}

func decodeFail(raw json.RawMessage) (Fail, error) {
	fields, help, err := decodeEnvelope(raw)
	if err != nil {
		return Fail{}, err
	}
	payload, ok := fields["error"]
	if !ok {
		return Fail{}, errors.New(`missing field "error"`)
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return Fail{}, fmt.Errorf("field \"error\": %w", err)
	}
	return Fail{Help: help, Error: value}, nil
}

// decodeEnvelope splits an object into its fields and extracts the required
// string "help" field shared by both envelopes.
func decodeEnvelope(raw json.RawMessage) (map[string]json.RawMessage, string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, "", err
	}
	if fields == nil {
		return nil, "", errors.New("expected object, found null")
	}
	helpRaw, ok := fields["help"]
	if !ok {
		return nil, "", errors.New(`missing field "help"`)
	}
	help, err := decodeString(helpRaw)
	if err != nil {
		return nil, "", fmt.Errorf("field \"help\": %w", err)
	}
	return fields, help, nil
}

// nilable reports whether null is a valid value of T. A missing "result"
// key is still a non-match for these types so that error envelopes are
// never read as empty results.
func nilable[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// decodeString decodes a JSON string, rejecting null which encoding/json
// would otherwise accept as the empty string.
func decodeString(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", errNullString
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}
