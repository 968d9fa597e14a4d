package wiki2pdf

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-wiki2pdf/internal/fileutil"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing
// without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
}

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Footer *Footer
	Page   *PageSettings
}

const mmPerInch = 25.4

// Paper dimensions in inches.
const (
	a4WidthInches      = 210 / mmPerInch
	a4HeightInches     = 297 / mmPerInch
	letterWidthInches  = 8.5
	letterHeightInches = 11
)

// extraFooterMarginMM is added to the bottom margin when a footer is shown.
const extraFooterMarginMM = 6.0

// footerFontFamily matches the document body typeface.
const footerFontFamily = "Georgia, serif"

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it
// to PDF. Unreachable remote subresources (images, fonts) do not abort the
// render: Chrome's print path proceeds with whatever loaded before the
// load event. Scripts are irrelevant here since the composed document
// carries none.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF from page settings and
// the optional footer. Margins are configured in millimeters and converted
// to the inches Chrome expects.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	if opts != nil && opts.Page != nil {
		page = opts.Page
	}

	width, height := a4WidthInches, a4HeightInches
	if strings.ToLower(page.Size) == PageSizeLetter {
		width, height = letterWidthInches, letterHeightInches
	}

	var footer *Footer
	if opts != nil {
		footer = opts.Footer
	}

	marginBottomMM := page.MarginBottomMM
	if footer != nil {
		marginBottomMM += extraFooterMarginMM
	}

	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(page.MarginTopMM / mmPerInch),
		MarginBottom:    floatPtr(marginBottomMM / mmPerInch),
		MarginLeft:      floatPtr(page.MarginLeftMM / mmPerInch),
		MarginRight:     floatPtr(page.MarginRightMM / mmPerInch),
		PrintBackground: true,
	}

	if footer != nil {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>" // Empty header
		pdfOpts.FooterTemplate = buildFooterTemplate(footer)
	}

	return pdfOpts
}

// buildFooterTemplate generates an HTML template for Chrome's native
// footer with pageNumber/totalPages placeholders via CSS classes.
func buildFooterTemplate(footer *Footer) string {
	if footer == nil {
		return "<span></span>"
	}

	var parts []string

	if footer.ShowPageNumber {
		parts = append(parts, `<span class="pageNumber"></span>/<span class="totalPages"></span>`)
	}
	if footer.Text != "" {
		parts = append(parts, html.EscapeString(footer.Text))
	}

	if len(parts) == 0 {
		return "<span></span>"
	}

	content := strings.Join(parts, " - ")

	textAlign := "center"
	switch strings.ToLower(footer.Position) {
	case "left":
		textAlign = "left"
	case "right":
		textAlign = "right"
	}

	return fmt.Sprintf(`<div style="font-size: 10px; font-family: %s; color: #555; width: 100%%; text-align: %s; padding: 0 0.5in;">%s</div>`,
		footerFontFamily, textAlign, content)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer pdfRenderer
	closer   interface{ Close() error }
}

// newRodConverter creates a rodConverter with the production renderer.
func newRodConverter(timeout time.Duration) *rodConverter {
	r := newRodRenderer(timeout)
	return &rodConverter{renderer: r, closer: r}
}

// ToPDF converts HTML content to PDF bytes using headless Chrome.
// The content goes through a temporary file that is removed on every
// exit path.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
