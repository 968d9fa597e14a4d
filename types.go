package wiki2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-wiki2pdf/internal/pipeline"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
)

// Margin bounds in millimeters.
const (
	MinMarginMM = 0.0
	MaxMarginMM = 50.0

	DefaultMarginTopMM    = 15.0
	DefaultMarginBottomMM = 18.0
	DefaultMarginLeftMM   = 18.0
	DefaultMarginRightMM  = 18.0
)

// Document is one unit of wiki content: a title, the raw body, and an
// optional group label. Consecutive documents sharing a group label form
// a group for page-break placement.
type Document struct {
	Title      string
	Body       string // Markdown, or pre-rendered HTML when RawHTML is set
	GroupLabel string
	RawHTML    bool
}

// Input contains export parameters.
type Input struct {
	Documents []Document // Ordered document sequence (required)
	SpaceName string     // Space display name, preferred for the filename (optional)
	Route     string     // Space route identifier, filename fallback (optional)
	CSS       string     // Extra CSS appended after the stylesheet (optional)
	SourceDir string     // Base dir for relative image/link paths (optional)
	Footer    *Footer    // Footer config (optional, nil = no footer)
	Page      *PageSettings
	HTMLOnly  bool // Skip PDF generation (for debugging)
}

// ExportResult holds the composed HTML, the rendered PDF, and the
// derived output filename.
type ExportResult struct {
	HTML     []byte
	PDF      []byte
	Filename string
}

// PageSettings configures PDF page dimensions. Margins are millimeters.
type PageSettings struct {
	Size           string // "a4" (default), "letter"
	MarginTopMM    float64
	MarginBottomMM float64
	MarginLeftMM   float64
	MarginRightMM  float64
}

// DefaultPageSettings returns A4 with the standard wiki export margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:           PageSizeA4,
		MarginTopMM:    DefaultMarginTopMM,
		MarginBottomMM: DefaultMarginBottomMM,
		MarginLeftMM:   DefaultMarginLeftMM,
		MarginRightMM:  DefaultMarginRightMM,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	switch strings.ToLower(p.Size) {
	case "", PageSizeA4, PageSizeLetter:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	for _, m := range []float64{p.MarginTopMM, p.MarginBottomMM, p.MarginLeftMM, p.MarginRightMM} {
		if m < MinMarginMM || m > MaxMarginMM {
			return fmt.Errorf("%w: %.1fmm (must be between %.0f and %.0f)", ErrInvalidMargin, m, MinMarginMM, MaxMarginMM)
		}
	}

	return nil
}

// Footer configures the PDF page footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "center")
	ShowPageNumber bool
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout    time.Duration
	rowCeiling int
	stylesheet string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("wiki2pdf: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithRowCeiling sets the maximum number of body rows per emitted table.
// Panics if n <= 0 (programmer error).
func WithRowCeiling(n int) Option {
	if n <= 0 {
		panic("wiki2pdf: WithRowCeiling must be positive")
	}
	return func(e *Exporter) {
		e.cfg.rowCeiling = n
	}
}

// WithStylesheet replaces the built-in print stylesheet.
func WithStylesheet(css string) Option {
	return func(e *Exporter) {
		e.cfg.stylesheet = css
	}
}

// toPipelineDocuments converts public Documents to internal pipeline ones.
func toPipelineDocuments(docs []Document) []pipeline.Document {
	converted := make([]pipeline.Document, len(docs))
	for i, d := range docs {
		converted[i] = pipeline.Document{
			Title:      d.Title,
			Body:       d.Body,
			GroupLabel: d.GroupLabel,
			RawHTML:    d.RawHTML,
		}
	}
	return converted
}
