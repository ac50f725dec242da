package lambda

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func strPtrEqual(got *string, want *string) bool {
	if got == nil || want == nil {
		return got == want
	}
	return *got == *want
}

func TestInboundEvent_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantMethod *string
		wantPath   *string
		wantBody   *string
	}{
		{
			name:       "gateway shaped",
			doc:        `{"httpMethod":"GET","path":"/hello","body":"{}","headers":{"a":"b"}}`,
			wantMethod: String("GET"),
			wantPath:   String("/hello"),
			wantBody:   String("{}"),
		},
		{
			name: "empty object",
			doc:  `{}`,
		},
		{
			name:       "null body is absent",
			doc:        `{"httpMethod":"GET","body":null}`,
			wantMethod: String("GET"),
		},
		{
			name:     "empty strings are present",
			doc:      `{"path":"","body":""}`,
			wantPath: String(""),
			wantBody: String(""),
		},
		{
			name: "non-string values are ignored",
			doc:  `{"httpMethod":1,"path":["/"],"body":{"a":1}}`,
		},
		{
			name: "array document",
			doc:  `[1,2,3]`,
		},
		{
			name: "scalar document",
			doc:  `"hello"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var event InboundEvent
			if err := json.Unmarshal([]byte(tt.doc), &event); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !strPtrEqual(event.HTTPMethod, tt.wantMethod) {
				t.Errorf("HTTPMethod = %v, want %v", event.HTTPMethod, tt.wantMethod)
			}
			if !strPtrEqual(event.Path, tt.wantPath) {
				t.Errorf("Path = %v, want %v", event.Path, tt.wantPath)
			}
			if !strPtrEqual(event.Body, tt.wantBody) {
				t.Errorf("Body = %v, want %v", event.Body, tt.wantBody)
			}
			if string(event.Echo()) != tt.doc {
				t.Errorf("Echo() = %s, want %s", event.Echo(), tt.doc)
			}
		})
	}
}

func TestInboundEvent_EchoSynthesised(t *testing.T) {
	event := NewEvent(String("POST"), nil, String(`{"a":1}`))

	var doc map[string]string
	if err := json.Unmarshal(event.Echo(), &doc); err != nil {
		t.Fatalf("Echo() is not valid JSON: %v", err)
	}
	if doc["httpMethod"] != "POST" {
		t.Errorf("httpMethod = %q, want POST", doc["httpMethod"])
	}
	if _, ok := doc["path"]; ok {
		t.Error("absent path should not be synthesised")
	}
	if doc["body"] != `{"a":1}` {
		t.Errorf("body = %q", doc["body"])
	}

	if got := string(InboundEvent{}.Echo()); got != "{}" {
		t.Errorf("empty event Echo() = %s, want {}", got)
	}
}

func TestInboundEvent_MarshalJSON(t *testing.T) {
	var event InboundEvent
	doc := `{"key1":"value1","key2":[true,null]}`
	if err := json.Unmarshal([]byte(doc), &event); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	out, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != doc {
		t.Errorf("Marshal() = %s, want %s", out, doc)
	}
}

func TestFromAPIGateway(t *testing.T) {
	tests := []struct {
		name       string
		req        events.APIGatewayProxyRequest
		wantMethod *string
		wantPath   *string
		wantBody   *string
	}{
		{
			name: "zero request",
		},
		{
			name:       "plain body",
			req:        events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/hello", Body: `{"name":"x"}`},
			wantMethod: String("POST"),
			wantPath:   String("/hello"),
			wantBody:   String(`{"name":"x"}`),
		},
		{
			name:     "base64 body",
			req:      events.APIGatewayProxyRequest{Body: "eyJhIjoxfQ==", IsBase64Encoded: true},
			wantBody: String(`{"a":1}`),
		},
		{
			name:     "invalid base64 kept as text",
			req:      events.APIGatewayProxyRequest{Body: "not base64!", IsBase64Encoded: true},
			wantBody: String("not base64!"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := FromAPIGateway(tt.req)
			if !strPtrEqual(event.HTTPMethod, tt.wantMethod) {
				t.Errorf("HTTPMethod = %v, want %v", event.HTTPMethod, tt.wantMethod)
			}
			if !strPtrEqual(event.Path, tt.wantPath) {
				t.Errorf("Path = %v, want %v", event.Path, tt.wantPath)
			}
			if !strPtrEqual(event.Body, tt.wantBody) {
				t.Errorf("Body = %v, want %v", event.Body, tt.wantBody)
			}

			var echoed events.APIGatewayProxyRequest
			if err := json.Unmarshal(event.Echo(), &echoed); err != nil {
				t.Fatalf("Echo() is not a proxy request: %v", err)
			}
			if echoed.Path != tt.req.Path || echoed.Body != tt.req.Body {
				t.Errorf("Echo() = %s, want the original proxy request", event.Echo())
			}
		})
	}
}

func TestResponse_APIGateway(t *testing.T) {
	resp := Response{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"message":"hi"}`,
	}

	got := resp.APIGateway()
	if got.StatusCode != 200 || got.Body != resp.Body || got.Headers["Content-Type"] != "application/json" {
		t.Errorf("APIGateway() = %+v", got)
	}
}

func TestResponse_JSONShape(t *testing.T) {
	out, err := json.Marshal(Response{StatusCode: 200, Body: "{}"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"statusCode":200,"body":"{}"}` {
		t.Errorf("Marshal() = %s", out)
	}
}
