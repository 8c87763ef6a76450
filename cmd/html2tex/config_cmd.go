package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-html2tex/internal/yamlutil"
)

// parseConfigFlags parses flags for the config command.
func parseConfigFlags(args []string, stderr io.Writer) (string, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var name string
	fs.StringVarP(&name, "config", "c", "", "config file name or path")
	fs.Usage = func() { printConfigUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() > 0 {
		return "", fmt.Errorf("%w: config takes no arguments, got %q", ErrUnknownCommand, fs.Arg(0))
	}
	return name, nil
}

// runConfigCmd prints the effective configuration as YAML: the config file
// with HTML2TEX_* values filling what it leaves empty.
func runConfigCmd(args []string, env *Environment) int {
	name, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(name, envCfg.ConfigPath)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	applyEnvConfig(envCfg, cfg)

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitGeneral
	}
	_, _ = env.Stdout.Write(out)
	return ExitSuccess
}
