// Package docs registers the OpenAPI description of the local gateway.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Gateway health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Health"}}
                }
            }
        },
        "/{proxy}": {
            "x-amazon-apigateway-any-method": {},
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Invoke the function through the proxy integration",
                "description": "Any method and path is forwarded to the function as an API Gateway proxy event.",
                "parameters": [
                    {"name": "proxy", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": false, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Function response", "schema": {"$ref": "#/definitions/Greeting"}},
                    "413": {"description": "Request too large", "schema": {"$ref": "#/definitions/Error"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Greeting": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "method": {"type": "string"},
                "path": {"type": "string"},
                "timestamp": {"type": "string"},
                "input": {"type": "object"},
                "received_data": {}
            }
        },
        "Health": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "variant": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Lambda Workshop Local Gateway",
	Description:      "Local API Gateway proxy emulator for the workshop function.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
