package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultFormat   = "text"
	defaultLogLevel = "warn"
)

var formats = []string{"text", "json", "yaml"}

// AppConfig holds application configuration
type AppConfig struct {
	format   string
	logLevel string
	noColor  bool
	pause    bool
}

// NewAppConfig builds the configuration from GPUPROBE_* environment variables
// and the command line. Flags take precedence over the environment. A --help
// request returns pflag.ErrHelp after printing the usage.
func NewAppConfig(args []string) (*AppConfig, error) {
	cfg := &AppConfig{
		format:   envString("GPUPROBE_FORMAT", defaultFormat),
		logLevel: envString("GPUPROBE_LOG_LEVEL", defaultLogLevel),
	}

	var err error
	if cfg.noColor, err = envBool("GPUPROBE_NO_COLOR"); err != nil {
		return nil, err
	}
	if cfg.pause, err = envBool("GPUPROBE_PAUSE"); err != nil {
		return nil, err
	}

	flagSet := pflag.NewFlagSet("gpuprobe", pflag.ContinueOnError)
	flagSet.StringVar(&cfg.format, "format", cfg.format, "report format: "+strings.Join(formats, ", "))
	flagSet.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "minimum diagnostic log level")
	flagSet.BoolVar(&cfg.noColor, "no-color", cfg.noColor, "disable coloured text output")
	flagSet.BoolVar(&cfg.pause, "pause", cfg.pause, "wait for ENTER before exiting")
	if err := flagSet.Parse(args); err != nil {
		return nil, err
	}

	cfg.format = strings.ToLower(cfg.format)
	if !validFormat(cfg.format) {
		return nil, fmt.Errorf("invalid format %q (want %s)", cfg.format, strings.Join(formats, ", "))
	}
	if _, err := zapcore.ParseLevel(cfg.logLevel); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return cfg, nil
}

func envString(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envBool(name string) (bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return b, nil
}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

// Fields returns the configuration as log fields
func (c *AppConfig) Fields() []zap.Field {
	return []zap.Field{
		zap.String("format", c.format),
		zap.String("logLevel", c.logLevel),
		zap.Bool("noColor", c.noColor),
		zap.Bool("pause", c.pause),
	}
}

// GetFormat returns the report format
func (c *AppConfig) GetFormat() string {
	return c.format
}

// GetLogLevel returns the minimum diagnostic log level
func (c *AppConfig) GetLogLevel() string {
	return c.logLevel
}

// NoColor reports whether coloured text output is disabled
func (c *AppConfig) NoColor() bool {
	return c.noColor
}

// Pause reports whether to wait for ENTER before exiting
func (c *AppConfig) Pause() bool {
	return c.pause
}
