package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lambda-workshop/internal/handlers"
	"lambda-workshop/pkg/lambda"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadEvent reads an event document from path, or from stdin when path is
// empty or "-". YAML files are converted to JSON. Empty input is the empty
// event.
func LoadEvent(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read event: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []byte("{}"), nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlToJSON(data)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("event is not valid JSON")
	}
	return data, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML event: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML event to JSON: %w", err)
	}
	return out, nil
}

// Invoke decodes doc and calls the handler once, with a Lambda context
// carrying a fresh request ID
func Invoke(ctx context.Context, h *handlers.GreetingHandler, doc []byte) (lambda.Response, error) {
	var event lambda.InboundEvent
	if err := json.Unmarshal(doc, &event); err != nil {
		return lambda.Response{}, fmt.Errorf("failed to decode event: %w", err)
	}

	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       uuid.New().String(),
		InvokedFunctionArn: "arn:aws:lambda:local:000000000000:function:" + h.Variant().Name,
	})
	return h.Handle(ctx, event), nil
}

// WriteResponse writes the response document followed by a newline
func WriteResponse(w io.Writer, resp lambda.Response, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}
