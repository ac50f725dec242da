package lambda

import (
	"bytes"
	"encoding/json"
)

// InboundEvent represents the event document passed to a function invocation.
// Only httpMethod, path and body are interpreted; every other key is kept in
// the raw document so it can be echoed back.
type InboundEvent struct {
	HTTPMethod *string
	Path       *string
	Body       *string

	raw json.RawMessage
}

// Response represents the document returned from a function invocation
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

// NewEvent builds an event from its recognised fields. Empty strings are kept
// as present values; pass nil to leave a field absent.
func NewEvent(method, path, body *string) InboundEvent {
	return InboundEvent{HTTPMethod: method, Path: path, Body: body}
}

// String returns a pointer to s, for building events in code
func String(s string) *string {
	return &s
}

// UnmarshalJSON accepts any JSON document. Recognised keys holding a
// non-string value (including null) are treated as absent.
func (e *InboundEvent) UnmarshalJSON(data []byte) error {
	*e = InboundEvent{raw: append(json.RawMessage(nil), data...)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Not an object (array, scalar, null): nothing to recognise.
		if json.Valid(data) {
			return nil
		}
		return err
	}

	e.HTTPMethod = stringField(fields, "httpMethod")
	e.Path = stringField(fields, "path")
	e.Body = stringField(fields, "body")
	return nil
}

// MarshalJSON writes the event back out exactly as it was received
func (e InboundEvent) MarshalJSON() ([]byte, error) {
	return e.Echo(), nil
}

// Echo returns the event document verbatim. Events built in code have no raw
// document, so one is synthesised from the recognised fields.
func (e InboundEvent) Echo() json.RawMessage {
	if len(bytes.TrimSpace(e.raw)) > 0 {
		return e.raw
	}

	doc := make(map[string]string, 3)
	if e.HTTPMethod != nil {
		doc["httpMethod"] = *e.HTTPMethod
	}
	if e.Path != nil {
		doc["path"] = *e.Path
	}
	if e.Body != nil {
		doc["body"] = *e.Body
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return out
}

func stringField(fields map[string]json.RawMessage, key string) *string {
	value, ok := fields[key]
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return nil
	}
	// json.Unmarshal leaves s untouched for null
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil
	}
	return &s
}
