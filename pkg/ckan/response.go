package ckan

// Variant kinds reported by Response.Kind.
const (
	KindResult         = "result"
	KindError          = "error"
	KindStringError    = "string_error"
	KindTransportError = "transport_error"
	KindDecodeError    = "decode_error"
)

// Response is the outcome of a single action invocation. It is a closed union:
// the only implementations are Result, Error, StringError, TransportError and
// DecodeError, and callers are expected to type switch over all five.
//
//	switch r := resp.(type) {
//	case ckan.Result[Status]:
//	case ckan.Error:
//	case ckan.StringError:
//	case ckan.TransportError:
//	case ckan.DecodeError:
//	}
type Response[T any] interface {
	Kind() string
	response()
}

// Success is the envelope of a successful action call.
type Success[T any] struct {
	Help   string `json:"help"`
	Result T      `json:"result"`
}

// Fail is the envelope of an action call the server rejected. Error keeps
// whatever JSON the server sent, with numbers held as json.Number.
type Fail struct {
	Help  string `json:"help"`
	Error any    `json:"error"`
}

// Result wraps a payload that matched the success envelope.
type Result[T any] struct {
	Success[T]
}

// Error wraps a payload that matched the error envelope.
type Error struct {
	Fail
}

// StringError is a bare JSON string returned in place of an envelope.
type StringError struct {
	Message string
}

// TransportError reports that the request never produced a response.
type TransportError struct {
	Message string
}

// DecodeError reports a response body that matched none of the known shapes.
type DecodeError struct {
	Message string
}

func (Result[T]) Kind() string      { return KindResult }
func (Error) Kind() string          { return KindError }
func (StringError) Kind() string    { return KindStringError }
func (TransportError) Kind() string { return KindTransportError }
func (DecodeError) Kind() string    { return KindDecodeError }

func (Result[T]) response()      {}
func (Error) response()          {}
func (StringError) response()    {}
func (TransportError) response() {}
func (DecodeError) response()    {}

func (e StringError) Error() string    { return "ckan string response: " + e.Message }
func (e TransportError) Error() string { return "ckan transport: " + e.Message }
func (e DecodeError) Error() string    { return "ckan decode: " + e.Message }
