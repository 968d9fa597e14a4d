package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	wiki2pdf "github.com/alnah/go-wiki2pdf"
	"github.com/alnah/go-wiki2pdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput     = errors.New("usage: wiki2pdf [flags] <manifest.yaml | directory | page.md>")
	ErrNoPages          = errors.New("no wiki pages found")
	ErrUnsupportedInput = errors.New("input must be a YAML manifest, a directory, or a markdown file")
)

// run loads configuration and documents, exports them, and writes the
// output file.
func run(flags *cliFlags, args []string, logger zerolog.Logger) error {
	if len(args) == 0 {
		return ErrMissingInput
	}
	inputPath := args[0]

	cfg, err := resolveConfig(flags.config)
	if err != nil {
		return err
	}

	docs, space, err := gatherDocuments(inputPath)
	if err != nil {
		return err
	}
	logger.Debug().Int("documents", len(docs)).Str("input", inputPath).Msg("loaded wiki pages")

	// Flags override config, config overrides manifest metadata.
	spaceName := firstNonEmpty(flags.spaceName, cfg.Space.Name, space.Name)
	route := firstNonEmpty(flags.route, cfg.Space.Route, space.Route)

	opts, err := exporterOptions(flags, cfg)
	if err != nil {
		return err
	}

	exporter := wiki2pdf.NewExporter(opts...)
	defer func() {
		if cerr := exporter.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("closing exporter")
		}
	}()

	input := wiki2pdf.Input{
		Documents: docs,
		SpaceName: spaceName,
		Route:     route,
		Footer:    footerFromConfig(cfg.Footer),
		Page:      pageFromConfig(cfg.Page),
		HTMLOnly:  flags.htmlOnly,
	}

	start := time.Now()
	result, err := exporter.Export(context.Background(), input)
	if err != nil {
		return err
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("export finished")

	outPath := outputPath(flags, cfg, result.Filename)
	content := result.PDF
	if flags.htmlOnly {
		content = result.HTML
	}

	if err := os.WriteFile(outPath, content, 0o644); err != nil { // #nosec G306 -- rendered document, not a secret
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Info().Str("path", outPath).Int("bytes", len(content)).Msg("created")
	return nil
}

// resolveConfig loads the named config, or defaults when none is given.
func resolveConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// gatherDocuments reads documents from a manifest, a directory of
// markdown files, or a single markdown file.
func gatherDocuments(inputPath string) ([]wiki2pdf.Document, ManifestSpace, error) {
	var space ManifestSpace

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, space, fmt.Errorf("%w: %s", ErrNoPages, inputPath)
	}

	switch {
	case info.IsDir():
		docs, err := documentsFromDir(inputPath)
		return docs, space, err

	case isManifestPath(inputPath):
		m, err := loadManifest(inputPath)
		if err != nil {
			return nil, space, err
		}
		docs, err := m.resolveDocuments(filepath.Dir(inputPath))
		return docs, m.Space, err

	case isMarkdownPath(inputPath):
		body, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, space, fmt.Errorf("reading page: %w", err)
		}
		return []wiki2pdf.Document{{Title: titleFromFilename(inputPath), Body: string(body)}}, space, nil

	default:
		return nil, space, fmt.Errorf("%w: %s", ErrUnsupportedInput, inputPath)
	}
}

// documentsFromDir collects the directory's markdown files in name order,
// one document per file, titled from the filename.
func documentsFromDir(dir string) ([]wiki2pdf.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && isMarkdownPath(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no markdown files in %s", ErrNoPages, dir)
	}

	docs := make([]wiki2pdf.Document, 0, len(paths))
	for _, path := range paths {
		body, err := os.ReadFile(path) // #nosec G304 -- paths enumerated from the user's directory
		if err != nil {
			return nil, fmt.Errorf("reading page %q: %w", path, err)
		}
		docs = append(docs, wiki2pdf.Document{
			Title: titleFromFilename(path),
			Body:  string(body),
		})
	}
	return docs, nil
}

// exporterOptions builds library options from flags and config.
// Flags win over config values.
func exporterOptions(flags *cliFlags, cfg *config.Config) ([]wiki2pdf.Option, error) {
	var opts []wiki2pdf.Option

	if flags.timeout > 0 {
		opts = append(opts, wiki2pdf.WithTimeout(flags.timeout))
	}

	rowCeiling := cfg.Pagination.RowCeiling
	if flags.rowCeiling > 0 {
		rowCeiling = flags.rowCeiling
	}
	if rowCeiling > 0 {
		opts = append(opts, wiki2pdf.WithRowCeiling(rowCeiling))
	}

	stylePath := firstNonEmpty(flags.style, cfg.Style.Path)
	if stylePath != "" {
		css, err := os.ReadFile(stylePath) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("reading stylesheet: %w", err)
		}
		opts = append(opts, wiki2pdf.WithStylesheet(string(css)))
	}

	return opts, nil
}

// footerFromConfig maps config footer settings to the library type.
// A disabled footer becomes nil (no footer at all).
func footerFromConfig(fc config.FooterConfig) *wiki2pdf.Footer {
	if !fc.Enabled {
		return nil
	}
	return &wiki2pdf.Footer{
		Position:       fc.Position,
		ShowPageNumber: fc.ShowPageNumber,
		Text:           fc.Text,
	}
}

// pageFromConfig maps config page settings over the library defaults;
// zero values keep the defaults.
func pageFromConfig(pc config.PageConfig) *wiki2pdf.PageSettings {
	page := wiki2pdf.DefaultPageSettings()
	if pc.Size != "" {
		page.Size = pc.Size
	}
	if pc.MarginTopMM > 0 {
		page.MarginTopMM = pc.MarginTopMM
	}
	if pc.MarginBottomMM > 0 {
		page.MarginBottomMM = pc.MarginBottomMM
	}
	if pc.MarginLeftMM > 0 {
		page.MarginLeftMM = pc.MarginLeftMM
	}
	if pc.MarginRightMM > 0 {
		page.MarginRightMM = pc.MarginRightMM
	}
	return page
}

// outputPath resolves the final output file location. An explicit
// --output wins; otherwise the derived filename lands in the configured
// output directory. HTML-only mode swaps the extension.
func outputPath(flags *cliFlags, cfg *config.Config, derived string) string {
	path := flags.output
	if path == "" {
		path = filepath.Join(cfg.Output.Dir, derived)
	}
	if flags.htmlOnly && strings.HasSuffix(strings.ToLower(path), ".pdf") {
		path = path[:len(path)-len(".pdf")] + ".html"
	}
	return path
}

// isMarkdownPath reports whether the path has a markdown extension.
func isMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// titleFromFilename derives a page title from a file name:
// "hr-structure_v2.md" becomes "hr structure v2".
func titleFromFilename(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return strings.Join(strings.Fields(base), " ")
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
