package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// artifactFlags select which intermediate trees are kept on disk.
type artifactFlags struct {
	saveHast     bool
	saveLatexAst bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	timeout   string
	class     string
	artifacts artifactFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// addArtifactFlags adds intermediate artifact flags to a FlagSet.
func addArtifactFlags(fs *flag.FlagSet, f *artifactFlags) {
	fs.BoolVar(&f.saveHast, "save-hast", false, "write <name>.hast.json next to each source")
	fs.BoolVar(&f.saveLatexAst, "save-latex-ast", false, "write <name>.latex.json next to each source")
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage goes to stderr on parse errors or -h.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output .tex file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file timeout (e.g., 30s, 2m)")

	// Document flags
	fs.StringVar(&f.class, "class", "", "LaTeX document class (default: book)")

	addArtifactFlags(fs, &f.artifacts)
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
