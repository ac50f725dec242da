package handlers

import (
	"encoding/json"
	"testing"

	"lambda-workshop/pkg/lambda"
)

func TestParseBody(t *testing.T) {
	tests := []struct {
		name     string
		body     *string
		wantKind BodyKind
	}{
		{"nil", nil, BodyEmpty},
		{"empty string", lambda.String(""), BodyEmpty},
		{"whitespace only", lambda.String("   "), BodyRaw},
		{"object", lambda.String(`{"name":"Test User"}`), BodyParsed},
		{"empty object", lambda.String(`{}`), BodyEmpty},
		{"empty array", lambda.String(`[]`), BodyEmpty},
		{"false", lambda.String(`false`), BodyEmpty},
		{"true", lambda.String(`true`), BodyParsed},
		{"zero", lambda.String(`0`), BodyEmpty},
		{"zero float", lambda.String(`0.0`), BodyEmpty},
		{"empty json string", lambda.String(`""`), BodyEmpty},
		{"json string", lambda.String(`"hi"`), BodyParsed},
		{"not json", lambda.String("not json"), BodyRaw},
		{"truncated", lambda.String(`{"a":`), BodyRaw},
		{"two documents", lambda.String(`1 2`), BodyRaw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBody(tt.body)
			if got.Kind != tt.wantKind {
				t.Errorf("ParseBody() kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Present() != (tt.wantKind != BodyEmpty) {
				t.Errorf("Present() = %v", got.Present())
			}
		})
	}
}

func TestParseBody_RawFallback(t *testing.T) {
	got := ParseBody(lambda.String("not json"))

	raw, ok := got.Value.(map[string]interface{})
	if !ok {
		t.Fatalf("Value = %#v, want a map", got.Value)
	}
	if len(raw) != 1 || raw["raw"] != "not json" {
		t.Errorf("Value = %v, want {raw: not json}", raw)
	}
}

func TestParseBody_PreservesNumbers(t *testing.T) {
	got := ParseBody(lambda.String(`{"price":19.90,"qty":3}`))

	out, err := json.Marshal(got.Value)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"price":19.90,"qty":3}` {
		t.Errorf("re-encoded body = %s", out)
	}
}
