package tooling

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/deploymenttheory/go-ntgrbak/internal/config"
	"github.com/deploymenttheory/go-ntgrbak/internal/logger"
)

// Version of the ntgrbak tool, overridden at link time with
// -ldflags "-X github.com/deploymenttheory/go-ntgrbak/pkg/tooling.Version=..."
var Version = "0.1.0"

// InitOptions contains options for initializing the tooling API
type InitOptions struct {
	ConfigFile  string         // Path to configuration file
	Flags       *pflag.FlagSet // Command line flags overriding the configuration
	SuppressLog bool           // Keep the no-op logger
}

var initialized bool

// Initialize loads the configuration and sets up logging. Verbose mode
// raises the log level to debug so routine details reach stderr.
func Initialize(options InitOptions) error {
	if err := config.Initialize(options.ConfigFile, options.Flags); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if !options.SuppressLog {
		logConfig := logger.DefaultConfig()
		logConfig.Debug = config.Instance.Debug || config.Instance.Verbose
		if config.Instance.LogFormat != "" {
			logConfig.LogFormat = config.Instance.LogFormat
		}
		logConfig.LogFile = config.Instance.LogFile
		if err := logger.InitLogger(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	logger.LogDebug("Tooling API initialized", map[string]interface{}{
		"config_file": config.ConfigFile,
		"log_format":  config.Instance.LogFormat,
		"version":     Version,
	})

	initialized = true
	return nil
}

// DefaultOptions returns the default initialization options
func DefaultOptions() InitOptions {
	return InitOptions{
		SuppressLog: false,
	}
}

// GetVersion returns the current version of the tool
func GetVersion() string {
	return Version
}

// Shutdown flushes buffered log entries before the process exits
func Shutdown() error {
	if initialized {
		// stderr cannot always be synced; that is not worth failing over.
		_ = logger.Sync()
	}
	return nil
}

// Initialized reports whether Initialize has completed
func Initialized() bool {
	return initialized
}
