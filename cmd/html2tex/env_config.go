package main

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-html2tex/internal/config"
)

// envPrefix marks the variables html2tex reads.
const envPrefix = "HTML2TEX_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // HTML2TEX_CONFIG: config file name or path
	Class      string        // HTML2TEX_CLASS: document class
	Timeout    time.Duration // HTML2TEX_TIMEOUT: per-file timeout
	InputDir   string        // HTML2TEX_INPUT_DIR: default input directory
	OutputDir  string        // HTML2TEX_OUTPUT_DIR: default output directory
	Workers    int           // HTML2TEX_WORKERS: parallel workers
}

// knownEnvVars lists valid HTML2TEX_* environment variables.
var knownEnvVars = map[string]bool{
	"HTML2TEX_CONFIG":     true,
	"HTML2TEX_CLASS":      true,
	"HTML2TEX_TIMEOUT":    true,
	"HTML2TEX_INPUT_DIR":  true,
	"HTML2TEX_OUTPUT_DIR": true,
	"HTML2TEX_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("HTML2TEX_CONFIG"),
		Class:      getenv("HTML2TEX_CLASS"),
		InputDir:   getenv("HTML2TEX_INPUT_DIR"),
		OutputDir:  getenv("HTML2TEX_OUTPUT_DIR"),
	}

	if timeout := getenv("HTML2TEX_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("HTML2TEX_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized HTML2TEX_* variable.
func warnUnknownEnvVars(environ []string, logger *slog.Logger) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig fills config values that the file left empty.
// Precedence: CLI flags > config file > env vars > defaults
// (flags are applied later by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Class != "" && cfg.Document.Class == "" {
		cfg.Document.Class = env.Class
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}
