package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lambda-workshop/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

const (
	defaultMethod = "UNKNOWN"
	defaultPath   = "/"

	// ISO-8601 extended with microseconds and a numeric UTC offset
	timestampLayout         = "2006-01-02T15:04:05.000000-07:00"
	timestampLayoutNoFrac   = "2006-01-02T15:04:05-07:00"
	contentTypeJSON         = "application/json"
	headerContentType       = "Content-Type"
	headerAllowOrigin       = "Access-Control-Allow-Origin"
	allowOriginAny          = "*"
	responseFallbackPayload = `{"message":"internal encoding error"}`
)

// HandlerOptions holds optional handler settings
type HandlerOptions struct {
	// LogEvents logs every event, whatever the variant says
	LogEvents bool

	// Clock overrides time.Now
	Clock func() time.Time
}

// GreetingHandler answers every invocation with the variant's greeting
type GreetingHandler struct {
	variant   Variant
	logger    *logrus.Logger
	logEvents bool
	now       func() time.Time
}

// payload is the decoded form of the response body. Field order matches the
// order keys are written in.
type payload struct {
	Message      string          `json:"message"`
	Method       *string         `json:"method,omitempty"`
	Path         *string         `json:"path,omitempty"`
	Timestamp    string          `json:"timestamp,omitempty"`
	Input        json.RawMessage `json:"input,omitempty"`
	ReceivedData interface{}     `json:"received_data,omitempty"`
}

// NewGreetingHandler creates a new greeting handler
func NewGreetingHandler(variant Variant, logger *logrus.Logger, opts HandlerOptions) *GreetingHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &GreetingHandler{
		variant:   variant,
		logger:    logger,
		logEvents: opts.LogEvents || variant.LogEvent,
		now:       now,
	}
}

// Variant returns the variant the handler was built for
func (h *GreetingHandler) Variant() Variant {
	return h.variant
}

// Handle maps one event to one response. It never fails: a malformed body is
// reported back as {"raw": body} and the status is always 200.
func (h *GreetingHandler) Handle(ctx context.Context, event lambda.InboundEvent) lambda.Response {
	if h.logEvents {
		h.logEvent(ctx, event)
	}

	method := defaultMethod
	if event.HTTPMethod != nil {
		method = *event.HTTPMethod
	}
	path := defaultPath
	if event.Path != nil {
		path = *event.Path
	}

	p := payload{Message: h.variant.Message}
	if h.variant.Route {
		p.Method = &method
		p.Path = &path
	}
	if h.variant.Timestamp {
		p.Timestamp = FormatTimestamp(h.now())
	}
	if h.variant.EchoInput {
		p.Input = event.Echo()
	}
	if h.variant.ParseBody {
		if body := ParseBody(event.Body); body.Present() {
			p.ReceivedData = body.Value
		}
	}

	encoded, err := json.Marshal(p)
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"variant": h.variant.Name,
			"error":   err.Error(),
		}).Error("Failed to encode response payload")
		encoded = []byte(responseFallbackPayload)
	}

	resp := lambda.Response{
		StatusCode: http.StatusOK,
		Body:       string(encoded),
	}
	if h.variant.Headers {
		resp.Headers = map[string]string{
			headerContentType: contentTypeJSON,
			headerAllowOrigin: allowOriginAny,
		}
	}
	return resp
}

// HandleEvent is the lambda.Start entrypoint for raw event documents
func (h *GreetingHandler) HandleEvent(ctx context.Context, event lambda.InboundEvent) (lambda.Response, error) {
	return h.Handle(ctx, event), nil
}

// HandleAPIGateway is the lambda.Start entrypoint behind an API Gateway proxy
func (h *GreetingHandler) HandleAPIGateway(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return h.Handle(ctx, lambda.FromAPIGateway(req)).APIGateway(), nil
}

func (h *GreetingHandler) logEvent(ctx context.Context, event lambda.InboundEvent) {
	fields := logrus.Fields{
		"variant": h.variant.Name,
		"event":   string(event.Echo()),
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields["request_id"] = lc.AwsRequestID
	}
	h.logger.WithFields(fields).Info("Event received")
}

// FormatTimestamp renders t in UTC as ISO-8601 with microseconds and a
// +00:00 offset. The fraction is left out when it is zero.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayoutNoFrac)
	}
	return t.Format(timestampLayout)
}
