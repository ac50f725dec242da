package server

import (
	"fmt"

	"lambda-workshop/internal/config"
	"lambda-workshop/internal/handlers"
	"lambda-workshop/internal/logging"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Handler *handlers.GreetingHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger creates a container around an existing logger
func NewContainerWithLogger(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	variant, err := handlers.LookupVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}

	handler := handlers.NewGreetingHandler(variant, logger, handlers.HandlerOptions{
		LogEvents: cfg.Log.Events,
	})

	fields := deploymentFields(config.GetServerlessConfig())
	fields["environment"] = cfg.Environment
	fields["variant"] = variant.Name
	logger.WithFields(fields).Debug("Container initialized")

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Handler: handler,
	}, nil
}

func deploymentFields(sc *config.ServerlessConfig) logrus.Fields {
	if !sc.IsLambda {
		return logrus.Fields{"mode": sc.DeploymentMode()}
	}
	return logrus.Fields{
		"mode":             sc.DeploymentMode(),
		"function_name":    sc.FunctionName,
		"function_version": sc.FunctionVersion,
		"memory_mb":        sc.MemoryMB,
		"region":           sc.Region,
	}
}
