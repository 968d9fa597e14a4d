package wiki2pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-wiki2pdf/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkupRenderer  = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.MediaNormalizer = (*pipeline.PrintMediaNormalizer)(nil)
	_ pipeline.TablePaginator  = (*pipeline.SplitTablePaginator)(nil)
	_ pdfConverter             = (*rodConverter)(nil)
	_ pdfRenderer              = (*rodRenderer)(nil)
)

// Exporter orchestrates the wiki-to-PDF pipeline.
// Create with NewExporter, use Export for conversion, and Close when done.
type Exporter struct {
	cfg          exporterConfig
	composer     *pipeline.Composer
	pdfConverter pdfConverter
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithRowCeiling).
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{
			timeout:    defaultTimeout,
			rowCeiling: pipeline.DefaultRowCeiling,
			stylesheet: DefaultStylesheet,
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	e.composer = pipeline.NewComposer(
		pipeline.NewGoldmarkRenderer(),
		&pipeline.PrintMediaNormalizer{},
		pipeline.NewSplitTablePaginator(e.cfg.rowCeiling),
	)

	// Create PDF converter if not injected (e.g., by tests)
	if e.pdfConverter == nil {
		e.pdfConverter = newRodConverter(e.cfg.timeout)
	}

	return e
}

// Export runs the full pipeline and returns the result containing the
// composed HTML, the PDF, and the derived filename. The context is used
// for cancellation and timeout. If input.HTMLOnly is true, PDF generation
// is skipped (for debugging).
func (e *Exporter) Export(ctx context.Context, input Input) (*ExportResult, error) {
	if err := e.validateInput(input); err != nil {
		return nil, err
	}

	body, err := e.composer.Compose(ctx, toPipelineDocuments(input.Documents))
	if err != nil {
		return nil, fmt.Errorf("composing documents: %w", err)
	}

	// Built-in stylesheet first, user CSS last so it can override
	css := e.cfg.stylesheet
	if input.CSS != "" {
		css += "\n" + input.CSS
	}
	htmlContent := pipeline.WrapDocument(body, css)

	// Rewrite relative paths to file:// URLs (if source directory provided)
	if input.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	res := &ExportResult{
		HTML:     []byte(htmlContent),
		Filename: deriveFilename(input),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfOpts := &pdfOptions{
		Footer: input.Footer,
		Page:   input.Page,
	}

	pdfBytes, err := e.pdfConverter.ToPDF(ctx, htmlContent, pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (e *Exporter) Close() error {
	if e.pdfConverter != nil {
		return e.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input
// manually. CLI users have their input validated earlier at config load
// time; both paths converge here.
func (e *Exporter) validateInput(input Input) error {
	if len(input.Documents) == 0 {
		return ErrNoDocuments
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	return nil
}

// deriveFilename picks the output filename: space name, else route, else
// the first document's title, always with a .pdf extension.
func deriveFilename(input Input) string {
	name := input.SpaceName
	if name == "" {
		name = input.Route
	}
	if name == "" && len(input.Documents) > 0 {
		name = input.Documents[0].Title
	}
	if name == "" {
		name = "wiki"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
