package server

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	_ "lambda-workshop/internal/docs"
	"lambda-workshop/internal/handlers"
	"lambda-workshop/internal/middleware"
	"lambda-workshop/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	proxyResource = "/{proxy+}"
	localStage    = "local"
)

// NewRouter builds the local API Gateway emulator. Every request that does
// not hit /health or /swagger is forwarded to the function, the way a
// LambdaRestApi with proxy enabled does.
func NewRouter(c *Container) *gin.Engine {
	router := gin.New()
	// /health/ belongs to the function, not to the /health route
	router.RedirectTrailingSlash = false
	router.Use(middleware.Recovery(c.Logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(c.Logger))
	router.Use(middleware.RateLimiter(c.Config.Gateway.RateLimit, c.Config.Gateway.RateBurst, c.Logger))
	router.Use(middleware.RequestSizeLimit(c.Config.Gateway.MaxBodyBytes))

	// CORS stays off the proxy: the function decides its own headers
	local := router.Group("/", middleware.CORS())
	{
		local.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{
				"status":    "healthy",
				"variant":   c.Handler.Variant().Name,
				"timestamp": handlers.FormatTimestamp(time.Now()),
			})
		})
		local.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(ProxyIntegration(c.Handler, c.Logger))

	return router
}

// ProxyIntegration forwards the HTTP request to the handler as an API Gateway
// proxy event and writes the handler's response back unchanged.
func ProxyIntegration(h *handlers.GreetingHandler, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, middleware.ErrorResponse{
					Error:     "Request too large",
					Message:   err.Error(),
					RequestID: c.GetString(middleware.RequestIDKey),
					Timestamp: time.Now().UTC().Format(time.RFC3339),
				})
				return
			}
			logger.WithFields(logrus.Fields{
				"request_id": c.GetString(middleware.RequestIDKey),
				"error":      err.Error(),
			}).Error("Failed to read request body")
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorResponse{
				Error:     "Invalid request body",
				Message:   err.Error(),
				RequestID: c.GetString(middleware.RequestIDKey),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			})
			return
		}

		requestID := c.GetString(middleware.RequestIDKey)
		proxyReq := NewProxyRequest(c.Request, body, requestID)

		ctx := lambdacontext.NewContext(c.Request.Context(), &lambdacontext.LambdaContext{
			AwsRequestID: requestID,
		})
		resp := h.Handle(ctx, lambda.FromAPIGateway(proxyReq))

		contentType := "application/json"
		for key, value := range resp.Headers {
			if strings.EqualFold(key, "Content-Type") {
				contentType = value
				continue
			}
			c.Header(key, value)
		}
		c.Data(resp.StatusCode, contentType, []byte(resp.Body))
	}
}

// NewProxyRequest maps an HTTP request onto the event API Gateway sends for
// a proxy resource. Bodies that are not valid UTF-8 are base64 encoded.
func NewProxyRequest(r *http.Request, body []byte, requestID string) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(r.Header))
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}
	if r.Host != "" {
		headers["Host"] = r.Host
	}

	query := r.URL.Query()
	var queryParams map[string]string
	if len(query) > 0 {
		queryParams = make(map[string]string, len(query))
		for key, values := range query {
			if len(values) > 0 {
				queryParams[key] = values[0]
			}
		}
	}

	req := events.APIGatewayProxyRequest{
		Resource:                        proxyResource,
		Path:                            r.URL.Path,
		HTTPMethod:                      r.Method,
		Headers:                         headers,
		MultiValueHeaders:               r.Header,
		QueryStringParameters:           queryParams,
		MultiValueQueryStringParameters: query,
		PathParameters:                  map[string]string{"proxy": strings.TrimPrefix(r.URL.Path, "/")},
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:        requestID,
			Stage:            localStage,
			ResourcePath:     proxyResource,
			HTTPMethod:       r.Method,
			Path:             r.URL.Path,
			RequestTimeEpoch: time.Now().UnixMilli(),
			Identity: events.APIGatewayRequestIdentity{
				SourceIP:  clientIP(r),
				UserAgent: r.UserAgent(),
			},
		},
	}

	if len(body) > 0 {
		if utf8.Valid(body) {
			req.Body = string(body)
		} else {
			req.Body = base64.StdEncoding.EncodeToString(body)
			req.IsBase64Encoded = true
		}
	}
	return req
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}
