package server

import (
	"context"
	"sync"

	"lambda-workshop/internal/config"
	"lambda-workshop/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
)

// Runtime lazily builds the container for one Lambda entrypoint. The
// container is created once per execution environment and reused by every
// invocation that lands on it.
type Runtime struct {
	variant    string
	loadConfig func(variant string) (*config.Config, error)

	initOnce  sync.Once
	mu        sync.RWMutex
	container *Container
	initErr   error
}

// NewRuntime creates a runtime whose handler always uses the given variant
func NewRuntime(variant string) *Runtime {
	return &Runtime{
		variant:    variant,
		loadConfig: config.GetOptimizedConfig,
	}
}

// Container returns the service container, initializing it on first use
func (r *Runtime) Container() (*Container, error) {
	r.initOnce.Do(func() {
		// The entrypoint's variant wins over HANDLER_VARIANT
		cfg, err := r.loadConfig(r.variant)
		if err != nil {
			r.setInit(nil, err)
			return
		}

		container, err := NewContainer(cfg)
		r.setInit(container, err)
	})

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.container, r.initErr
}

func (r *Runtime) setInit(container *Container, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.container = container
	r.initErr = err
}

// HandleEvent invokes the handler with a raw event document
func (r *Runtime) HandleEvent(ctx context.Context, event lambda.InboundEvent) (lambda.Response, error) {
	container, err := r.Container()
	if err != nil {
		return lambda.Response{}, err
	}
	return container.Handler.HandleEvent(ctx, event)
}

// HandleAPIGateway invokes the handler with an API Gateway proxy event
func (r *Runtime) HandleAPIGateway(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := r.Container()
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return container.Handler.HandleAPIGateway(ctx, req)
}
