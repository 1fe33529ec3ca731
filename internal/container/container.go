// Package container provides dependency injection for the fincontroller application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"github.com/fjacquet/fincontroller/internal/common"
	"github.com/fjacquet/fincontroller/internal/config"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/manager"
	"github.com/fjacquet/fincontroller/internal/report"
	"github.com/fjacquet/fincontroller/internal/service"
	"github.com/fjacquet/fincontroller/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
// Container is immutable after creation.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	storePath string
	service   *service.TransactionService
	generator *report.Generator
}

// NewContainer creates and wires all application dependencies, loading the
// persisted collection on the way.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an injected logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger = logging.OrDiscard(logger)

	common.SetDelimiter(cfg.DelimiterRune())

	var (
		s         store.Store
		storePath string
	)
	if cfg.Storage.Enabled {
		storePath = store.ResolvePath(cfg.Storage.File)
		s = store.NewJSONStore(storePath, logger)
	} else {
		logger.Info("Persistence disabled, transactions live in memory only")
	}

	mgr := manager.New(s, logger)
	svc := service.New(mgr, logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, storePath),
		logging.F(logging.FieldCount, len(svc.All())))

	return &Container{
		logger:    logger,
		config:    cfg,
		storePath: storePath,
		service:   svc,
		generator: report.NewGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetService returns the transaction service.
func (c *Container) GetService() *service.TransactionService {
	return c.service
}

// GetReportGenerator returns the statistics report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// GetStorePath returns the resolved store file, or "" when persistence is disabled.
func (c *Container) GetStorePath() string {
	return c.storePath
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
