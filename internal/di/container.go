package di

import (
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/zap"

	"go-testing-examples/internal/config"
	"go-testing-examples/internal/usecase/calculator"
	"go-testing-examples/internal/usecase/user"
	"go-testing-examples/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Calculator calculator.Usecase
	Users      user.Usecase
}

// NewContainer validates cfg and builds the logger and usecases from it
func NewContainer(cfg *config.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	l, err := logger.New(loggerConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &Container{
		Config:     cfg,
		Logger:     l,
		Calculator: calculator.New(l),
		Users:      user.New(l),
	}, nil
}

func loggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:       cfg.Logger.Level,
		Format:      cfg.Logger.Format,
		Output:      cfg.Logger.OutputPath,
		Sampling:    cfg.Logger.EnableSampling,
		Service:     cfg.Logger.ServiceName,
		Version:     cfg.Logger.ServiceVersion,
		Environment: cfg.App.Environment,
	}
}

// Close flushes the logger
func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	// stdout and stderr reject fsync when attached to a terminal or pipe
	if err := c.Logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		return fmt.Errorf("logger sync: %w", err)
	}
	return nil
}
