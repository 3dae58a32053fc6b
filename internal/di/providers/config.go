// Package providers contains dependency injection providers for the feedback board engine.
package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/feedbackboardapp/feedback-board/internal/config"
	"github.com/feedbackboardapp/feedback-board/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting feedback board engine",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Data.Path,
		"data_backend", cfg.Data.Backend,
	)

	return log, nil
}
