package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/IdleGarden_Go/internal/config"
	"github.com/osse101/IdleGarden_Go/internal/logger"
)

// SetupLogger installs the application logger from cfg. Output goes to stdout
// and, when LOG_DIR is set, to a rotating session file under it. The returned
// closer must be closed on exit. A log file that cannot be opened is reported
// and logging continues on stdout.
func SetupLogger(cfg *config.Config) io.Closer {
	// Source locations only in dev
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == logger.EnvironmentDevelopment

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	loggerConfig.Dir = cfg.LogDir

	closer, err := logger.InitLogger(loggerConfig)
	if err != nil {
		slog.Warn(LogMsgLogFileUnavailable, "dir", cfg.LogDir, "error", err)
	}

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel())
	slog.Info(LogMsgStartingIdleGarden,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"api_base_url", cfg.APIBaseURL,
		"store_path", cfg.StorePath,
		"port", cfg.Port,
		"flush_delay", cfg.ComboFlushDelay,
		"display_tick", cfg.DisplayTick)

	return closer
}
