package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lambda-workshop/internal/handlers"
	"lambda-workshop/pkg/lambda"

	"github.com/sirupsen/logrus"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadEvent(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		stdin   string
		want    string
		wantErr bool
	}{
		{
			name:  "stdin JSON",
			path:  func(t *testing.T) string { return "-" },
			stdin: `{"httpMethod":"GET"}`,
			want:  `{"httpMethod":"GET"}`,
		},
		{
			name:  "empty stdin",
			path:  func(t *testing.T) string { return "" },
			stdin: "  \n",
			want:  `{}`,
		},
		{
			name: "JSON file",
			path: func(t *testing.T) string {
				return writeTempFile(t, "event.json", `{"path":"/hello"}`)
			},
			want: `{"path":"/hello"}`,
		},
		{
			name: "YAML file",
			path: func(t *testing.T) string {
				return writeTempFile(t, "event.yaml", "httpMethod: POST\npath: /hello\nbody: '{\"name\": \"Test User\"}'\n")
			},
			want: `{"body":"{\"name\": \"Test User\"}","httpMethod":"POST","path":"/hello"}`,
		},
		{
			name: "invalid JSON file",
			path: func(t *testing.T) string {
				return writeTempFile(t, "event.json", `{"path":`)
			},
			wantErr: true,
		},
		{
			name: "invalid YAML file",
			path: func(t *testing.T) string {
				return writeTempFile(t, "event.yml", "a: [1, 2")
			},
			wantErr: true,
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadEvent(tt.path(t), strings.NewReader(tt.stdin))
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if string(got) != tt.want {
				t.Errorf("LoadEvent() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInvoke(t *testing.T) {
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	h := handlers.NewGreetingHandler(handlers.CLI, logger, handlers.HandlerOptions{})
	resp, err := Invoke(context.Background(), h, []byte(`{"key1":"value1"}`))
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("Response body is not valid JSON: %v", err)
	}
	if body["message"] != "Hello from CLI Lambda!" {
		t.Errorf("message = %v", body["message"])
	}
	input, _ := body["input"].(map[string]interface{})
	if input["key1"] != "value1" {
		t.Errorf("input = %v", body["input"])
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
		t.Fatalf("Expected one JSON log line, got %q", logs.String())
	}
	if id, _ := entry["request_id"].(string); len(id) != 36 {
		t.Errorf("request_id = %v, want a generated UUID", entry["request_id"])
	}
}

func TestInvoke_InvalidDocument(t *testing.T) {
	h := handlers.NewGreetingHandler(handlers.SAM, nil, handlers.HandlerOptions{})
	if _, err := Invoke(context.Background(), h, []byte(`{`)); err == nil {
		t.Error("Expected a decode error")
	}
}

func TestWriteResponse(t *testing.T) {
	resp := lambda.Response{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"message":"<hi>"}`,
	}

	var compact bytes.Buffer
	if err := WriteResponse(&compact, resp, false); err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}
	want := `{"statusCode":200,"headers":{"Content-Type":"application/json"},"body":"{\"message\":\"<hi>\"}"}` + "\n"
	if compact.String() != want {
		t.Errorf("WriteResponse() = %q, want %q", compact.String(), want)
	}

	var pretty bytes.Buffer
	if err := WriteResponse(&pretty, resp, true); err != nil {
		t.Fatalf("WriteResponse() error = %v", err)
	}
	if !strings.Contains(pretty.String(), "\n  \"statusCode\": 200") {
		t.Errorf("pretty output not indented: %q", pretty.String())
	}

	if err := WriteResponse(io.Discard, resp, true); err != nil {
		t.Errorf("WriteResponse(io.Discard) error = %v", err)
	}
}
