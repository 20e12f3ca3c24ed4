// Package config loads application configuration from file and environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "WORD2PDF"
	configName = "word2pdf"
)

// Config holds engine and logging settings. Operator-facing UI preferences
// live in internal/settings, not here.
type Config struct {
	// EngineBinary overrides the word processor binary; empty autodetects
	// from PATH.
	EngineBinary string
	// ConvertTimeout bounds a single conversion; zero disables the deadline.
	ConvertTimeout time.Duration
	LogLevel       string
	// DiagnosticLog is the file conversion failures are appended to.
	DiagnosticLog string
}

// Load reads configuration from cfgFile when given, otherwise from
// word2pdf.yaml in the working directory or ~/.config/word2pdf/, with
// WORD2PDF_* environment variables taking precedence. A missing config file
// is not an error; defaults apply.
func Load(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("engine.binary", "")
	v.SetDefault("engine.timeout", 5*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.diagnostic_file", defaultDiagnosticLog())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	return Config{
		EngineBinary:   v.GetString("engine.binary"),
		ConvertTimeout: v.GetDuration("engine.timeout"),
		LogLevel:       v.GetString("log.level"),
		DiagnosticLog:  v.GetString("log.diagnostic_file"),
	}, nil
}

func defaultDiagnosticLog() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "word2pdf.log")
	}
	return filepath.Join(dir, "word2pdf", "word2pdf.log")
}
