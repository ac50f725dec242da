package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// BodyKind tells how a request body was interpreted
type BodyKind int

const (
	// BodyEmpty means no body, or a body that decoded to an empty value
	BodyEmpty BodyKind = iota
	// BodyParsed means the body was valid JSON
	BodyParsed
	// BodyRaw means the body was not valid JSON and is carried as text
	BodyRaw
)

// ParsedBody is the outcome of interpreting an optional JSON request body
type ParsedBody struct {
	Kind  BodyKind
	Value interface{}
}

// ParseBody decodes body as a single JSON document. A body that fails to
// decode falls back to {"raw": body}; decode failures are never returned.
func ParseBody(body *string) ParsedBody {
	if body == nil || *body == "" {
		return ParsedBody{Kind: BodyEmpty}
	}

	value, err := decodeJSON(*body)
	if err != nil {
		return ParsedBody{
			Kind:  BodyRaw,
			Value: map[string]interface{}{"raw": *body},
		}
	}
	if isEmptyValue(value) {
		return ParsedBody{Kind: BodyEmpty}
	}
	return ParsedBody{Kind: BodyParsed, Value: value}
}

// Present reports whether the body belongs in the response payload
func (p ParsedBody) Present() bool {
	return p.Kind != BodyEmpty
}

func decodeJSON(s string) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	// Trailing data after the first document is malformed input
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON document")
	}
	return value, nil
}

func isEmptyValue(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case string:
		return value == ""
	case json.Number:
		f, err := value.Float64()
		return err == nil && f == 0
	case []interface{}:
		return len(value) == 0
	case map[string]interface{}:
		return len(value) == 0
	}
	return false
}
