package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates markdown-to-HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// MarkupRenderer converts lightweight wiki markup to an HTML fragment.
type MarkupRenderer interface {
	Render(ctx context.Context, markup string) (string, error)
}

// GoldmarkRenderer converts wiki markdown to HTML using goldmark (pure Go).
//
// The output is a fragment, not a full document: the composer owns the
// surrounding HTML shell and stylesheet.
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer configured for wiki content:
// GFM tables and strikethrough, footnotes, heading anchors, hard line breaks,
// and chroma syntax highlighting for fenced code blocks.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes instead of inline styles
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Heading anchors for in-document links
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat single newlines as <br>
			html.WithXHTML(),     // Self-closing tags
			// Wiki authors embed raw HTML (iframes, details blocks) that the
			// later pipeline stages rewrite for print. Sanitization is the
			// content store's responsibility before content reaches us.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// Render converts markdown content to an HTML fragment.
// Empty or blank input yields empty output without error.
// Supports context cancellation via goroutine + select pattern since
// goldmark doesn't natively support context.
func (r *GoldmarkRenderer) Render(ctx context.Context, markup string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if strings.TrimSpace(markup) == "" {
		return "", nil
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(markup), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.html, res.err
	}
}
