package lambda

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// FromAPIGateway converts an API Gateway proxy request into an InboundEvent.
// The gateway always sends every field, so empty values are treated as absent.
func FromAPIGateway(req events.APIGatewayProxyRequest) InboundEvent {
	var event InboundEvent

	if req.HTTPMethod != "" {
		event.HTTPMethod = String(req.HTTPMethod)
	}
	if req.Path != "" {
		event.Path = String(req.Path)
	}
	if req.Body != "" {
		body := req.Body
		if req.IsBase64Encoded {
			if decoded, err := base64.StdEncoding.DecodeString(body); err == nil {
				body = string(decoded)
			}
		}
		event.Body = String(body)
	}

	if raw, err := json.Marshal(req); err == nil {
		event.raw = raw
	}
	return event
}

// APIGateway converts the response into the shape API Gateway expects
func (r Response) APIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       r.Body,
	}
}
