// Package html2tex converts HTML documents to LaTeX.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv := html2tex.NewConverter()
//
//	result, err := conv.Convert(ctx, html2tex.Input{
//	    HTML: "<html><body><h1>Hello</h1><p>World</p></body></html>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.tex", result.TeX, 0644)
//
// The result carries every stage: the parsed element tree (result.Tree),
// the LaTeX tree (result.Latex) and the rendered source (result.TeX).
//
// # Conversion Pipeline
//
//  1. Markdown to HTML via Goldmark (Markdown input only)
//  2. HTML to element tree via golang.org/x/net/html (package hast)
//  3. Element tree to LaTeX tree (package latex)
//  4. LaTeX tree to source text (latex.Render)
//
// Step 3 maps h1-h6 to \section, paragraphs to text separated by paragraph
// breaks, and title/author meta tags in the head to \title and \author.
// Everything else in the body is dropped.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := html2tex.NewConverter(
//	    html2tex.WithDocumentClass(html2tex.ClassArticle),
//	    html2tex.WithTimeout(time.Minute),
//	    html2tex.WithLogger(slog.Default()),
//	)
//
// Input.DocumentClass overrides the class for a single call.
//
// # Stage Transformers
//
// HTMLToTree, TreeToLatex and LatexToTeX run one stage each. With
// OutputSaveToDisk the stage writes its result next to the source file
// (page.html -> page.hast.json -> page.latex.json -> page.tex) and returns
// the written path:
//
//	res, err := conv.HTMLToTree(ctx, html, html2tex.StageOptions{
//	    Output:         html2tex.OutputSaveToDisk,
//	    SourceFilePath: "page.html",
//	})
//	// res.FilePath == "page.hast.json"
//
// DecodeTree reads a saved element tree back.
//
// # Error Handling
//
// Errors wrap sentinel values; check them with errors.Is:
//
//	if errors.Is(err, html2tex.ErrEmptyInput) { ... }
//	if errors.Is(err, html2tex.ErrSourcePathRequired) { ... }
//
// A Converter holds no per-conversion state and is safe for concurrent use.
package html2tex
