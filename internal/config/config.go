package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
	"github.com/deploymenttheory/go-ntgrbak/internal/common/fsutil"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "ntgrbak"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "NTGRBAK"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Shared routine switches
	Force   bool   `mapstructure:"force"`
	Verbose bool   `mapstructure:"verbose"`
	Digest  string `mapstructure:"digest"` // sha256, sha1, md5, blake2b

	// Defaults for "config wrap"
	Wrap struct {
		Model   string `mapstructure:"model"`
		Version uint32 `mapstructure:"version"`

		HasModel   bool `mapstructure:"-"`
		HasVersion bool `mapstructure:"-"`
	} `mapstructure:"wrap"`

	// NVRAM settings
	NVRAM struct {
		DumpFormat string `mapstructure:"dump_format"` // json, yaml, plist, xml-plist
	} `mapstructure:"nvram"`
}

// flagKeys maps configuration keys to the command line flags that override them.
var flagKeys = map[string]string{
	"debug":             "debug",
	"log_format":        "log-format",
	"log_file":          "log-file",
	"force":             "force",
	"verbose":           "verbose",
	"digest":            "digest",
	"wrap.model":        "model",
	"wrap.version":      "version",
	"nvram.dump_format": "format",
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string
)

// Initialize loads the configuration from defaults, the optional config file,
// NTGRBAK_* environment variables and finally the flags that were set on
// the command line, then stores the result in Instance.
func Initialize(cfgFile string, flags *pflag.FlagSet) error {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		addSearchPaths(v)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return err
	}

	ConfigLoaded = false
	ConfigFile = ""
	if readErr := v.ReadInConfig(); readErr != nil {
		// A missing config file is fine, anything else is not.
		if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("%w: %v", commonerrors.ErrConfigParseError, readErr)
		}
	} else {
		ConfigLoaded = true
		ConfigFile = v.ConfigFileUsed()
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("%w: %v", commonerrors.ErrConfigParseError, err)
	}
	cfg.Wrap.HasModel = v.IsSet("wrap.model")
	cfg.Wrap.HasVersion = v.IsSet("wrap.version")

	if err := cfg.Validate(); err != nil {
		return err
	}

	Instance = cfg
	return nil
}

// Validate rejects values no routine can act on.
func (c AppConfig) Validate() error {
	switch c.LogFormat {
	case "human", "json":
	default:
		return fmt.Errorf("%w: log_format %q", commonerrors.ErrConfigInvalid, c.LogFormat)
	}
	switch strings.ToLower(c.Digest) {
	case "", "sha256", "sha1", "md5", "blake2b":
	default:
		return fmt.Errorf("%w: digest %q", commonerrors.ErrConfigInvalid, c.Digest)
	}
	switch c.NVRAM.DumpFormat {
	case "json", "yaml", "plist", "xml-plist":
	default:
		return fmt.Errorf("%w: nvram.dump_format %q", commonerrors.ErrConfigInvalid, c.NVRAM.DumpFormat)
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")
	v.SetDefault("log_file", "")

	v.SetDefault("force", false)
	v.SetDefault("verbose", false)
	v.SetDefault("digest", "sha256")

	v.SetDefault("nvram.dump_format", "json")

	// No defaults for the wrap keys: IsSet must only report values the
	// user supplied. The env names are spelled out so that the binding
	// does not depend on SetEnvPrefix having run.
	_ = v.BindEnv("wrap.model", EnvPrefix+"_WRAP_MODEL")
	_ = v.BindEnv("wrap.version", EnvPrefix+"_WRAP_VERSION")
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	v.AddConfigPath(".")

	configDir, err := fsutil.GetConfigDir(AppName)
	if err == nil {
		v.AddConfigPath(configDir)
	}
}

// bindFlags binds every known flag present in flags. Commands only define
// the flags they use, so missing ones are skipped.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for key, name := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("%w: binding flag %s: %v", commonerrors.ErrConfigInvalid, name, err)
		}
	}
	return nil
}
