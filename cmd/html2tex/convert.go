package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"

	html2tex "github.com/alnah/go-html2tex"
	"github.com/alnah/go-html2tex/internal/config"
	"github.com/alnah/go-html2tex/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadInput      = errors.New("failed to read input file")
	ErrWriteOutput    = errors.New("failed to write LaTeX file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// defaultFileTimeout bounds one file when neither flag nor env sets it.
const defaultFileTimeout = 30 * time.Second

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	converter    *html2tex.Converter
	saveHast     bool
	saveLatexAst bool
	logger       *slog.Logger
	now          func() time.Time
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(env.Environ(), logger)
	envCfg := loadEnvConfig(env.Getenv)

	// Validate worker count early
	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	class := cfg.Document.Class
	if class == "" {
		class = html2tex.DefaultDocumentClass
	}
	if !html2tex.IsKnownClass(class) {
		logger.Warn("unknown document class, passing through",
			"class", class,
			"hint", strings.TrimPrefix(hints.ForUnknownClass(html2tex.KnownClasses()), "\n  hint: "))
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		if errors.Is(err, ErrInvalidExtension) {
			return fmt.Errorf("%w%s", err, hints.ForUnsupportedInput(inputExtensions))
		}
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no convertible files found in %s%s", ErrNoInput, inputPath, hints.ForUnsupportedInput(inputExtensions))
	}

	poolSize := resolvePoolSize(workers)
	logger.Debug("starting conversion", "files", len(files), "workers", poolSize, "class", class, "timeout", timeout)

	params := &conversionParams{
		converter: html2tex.NewConverter(
			html2tex.WithDocumentClass(class),
			html2tex.WithTimeout(timeout),
			html2tex.WithLogger(logger),
		),
		saveHast:     cfg.Output.SaveHast,
		saveLatexAst: cfg.Output.SaveLatexAst,
		logger:       logger,
		now:          env.Now,
	}

	results := convertBatch(ctx, poolSize, files, params)

	summary := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if summary.Failed > 0 {
		return fmt.Errorf("%d conversion(s) failed: %w", summary.Failed, summary.FirstErr)
	}

	return nil
}

// newLogger builds the diagnostics logger. Result lines are printed
// separately so --quiet still reports failures.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig loads the config named by the flag, falling back to
// HTML2TEX_CONFIG, then to defaults.
func loadConfig(flagConfig, envConfig string) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envConfig
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.class != "" {
		cfg.Document.Class = flags.class
	}
	if flags.artifacts.saveHast {
		cfg.Output.SaveHast = true
	}
	if flags.artifacts.saveLatexAst {
		cfg.Output.SaveLatexAst = true
	}
}

// resolveTimeout parses the --timeout flag, falling back to the env value,
// then to defaultFileTimeout.
func resolveTimeout(flagTimeout string, envTimeout time.Duration) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagTimeout, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flagTimeout)
		}
		return d, nil
	}
	if envTimeout > 0 {
		return envTimeout, nil
	}
	return defaultFileTimeout, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolvePoolSize determines the worker count.
// Priority: explicit value > GOMAXPROCS (adjusted by automaxprocs for containers).
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}
	return max(1, min(runtime.GOMAXPROCS(0), 8))
}
