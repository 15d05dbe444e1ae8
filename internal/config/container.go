package config

import (
	"time"

	"pdf-analyzer-client/internal/client"
	"pdf-analyzer-client/internal/domain"
	"pdf-analyzer-client/internal/service"
	"pdf-analyzer-client/internal/workflow"
	"pdf-analyzer-client/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config       domain.Config
	Logger       domain.Logger
	Analyzer     domain.AnalyzerAPI
	PDFInspector domain.PDFInspector
	Controller   *workflow.Controller
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return NewContainerWithConfig(NewConfig())
}

// NewContainerWithConfig wires the dependencies for cfg
func NewContainerWithConfig(cfg domain.Config) *Container {
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	timeout := time.Duration(cfg.GetRequestTimeoutSeconds()) * time.Second
	analyzer := client.NewAnalyzerClient(cfg.GetAnalyzerBaseURL(), timeout, appLogger)

	return &Container{
		Config:       cfg,
		Logger:       appLogger,
		Analyzer:     analyzer,
		PDFInspector: service.NewPDFInspector(appLogger),
		Controller:   workflow.NewController(analyzer, appLogger),
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
