package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	html2tex "github.com/alnah/go-html2tex"
	"github.com/alnah/go-html2tex/internal/fileutil"
	"github.com/alnah/go-html2tex/internal/hints"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch converts files with at most workers goroutines.
// Results keep the order of files.
func convertBatch(ctx context.Context, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(workers, len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, f FileToConvert, params *conversionParams) ConversionResult {
	now := params.now
	if now == nil {
		now = time.Now
	}

	start := now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	tex, err := convertContent(ctx, f, params)
	if err == nil {
		err = writeOutput(f.OutputPath, tex)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w%s", err, hints.ForTimeout())
	}

	result.Err = err
	result.Duration = now().Sub(start)
	params.logger.Debug("file converted", "input", f.InputPath, "output", f.OutputPath, "duration", result.Duration, "ok", err == nil)
	return result
}

// convertContent runs the pipeline for one file and returns LaTeX source.
func convertContent(ctx context.Context, f FileToConvert, params *conversionParams) ([]byte, error) {
	conv := params.converter

	if f.Kind == kindTree {
		return convertTreeFile(ctx, f.InputPath, params)
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	input := html2tex.Input{HTML: string(content)}
	if f.Kind == kindMarkdown {
		input = html2tex.Input{Markdown: string(content)}
	}

	res, err := conv.Convert(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := saveArtifacts(f.InputPath, res, params); err != nil {
		return nil, err
	}
	return res.TeX, nil
}

// convertTreeFile converts a saved element tree.
func convertTreeFile(ctx context.Context, path string, params *conversionParams) ([]byte, error) {
	conv := params.converter

	file, err := os.Open(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	defer func() { _ = file.Close() }()

	tree, err := html2tex.DecodeTree(file)
	if err != nil {
		return nil, err
	}

	doc, err := conv.TreeToLatex(ctx, tree, html2tex.StageOptions{})
	if err != nil {
		return nil, err
	}

	if params.saveLatexAst {
		saved, err := conv.SaveLatex(doc.Data, path)
		if err != nil {
			return nil, err
		}
		params.logger.Debug("latex tree saved", "path", saved)
	}
	tex, err := conv.LatexToTeX(ctx, doc.Data, html2tex.StageOptions{})
	if err != nil {
		return nil, err
	}
	return tex.Data, nil
}

// saveArtifacts writes the trees Convert already built next to the source.
// Markdown sources are saved under the name their HTML would have.
func saveArtifacts(inputPath string, res *html2tex.ConvertResult, params *conversionParams) error {
	if !params.saveHast && !params.saveLatexAst {
		return nil
	}
	conv := params.converter

	htmlPath := fileutil.TrimExtension(inputPath, fileutil.MarkdownExtensions...)
	if htmlPath != inputPath {
		htmlPath += ".html"
	}
	hastPath, err := fileutil.HastPath(htmlPath)
	if err != nil {
		return fmt.Errorf("%w: %v", html2tex.ErrWriteArtifact, err)
	}

	if params.saveHast {
		saved, err := conv.SaveTree(res.Tree, htmlPath)
		if err != nil {
			return err
		}
		params.logger.Debug("element tree saved", "path", saved)
	}

	if params.saveLatexAst {
		saved, err := conv.SaveLatex(res.Latex, hastPath)
		if err != nil {
			return err
		}
		params.logger.Debug("latex tree saved", "path", saved)
	}
	return nil
}

// writeOutput writes LaTeX source, creating the output directory.
func writeOutput(path string, tex []byte) error {
	if err := fileutil.WriteFile(path, tex); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	FirstErr  error // First failure in input order, nil when none failed
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			if summary.FirstErr == nil {
				summary.FirstErr = r.Err
			}
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}
