package pipeline

import (
	"context"
	"fmt"
	"html"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Document is one unit of wiki content handed to the composer. Documents
// arrive in final output order; consecutive documents sharing the same
// GroupLabel form a group for page-break placement.
type Document struct {
	Title      string
	Body       string
	GroupLabel string
	RawHTML    bool // Body is pre-rendered HTML; skip the markdown renderer
}

// pageBreak starts a new physical page before the element it wraps.
const pageBreak = `<div style="page-break-before: always;">`

// documentShell wraps the assembled body with the embedded stylesheet.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>%s</style>
</head>
<body>%s</body>
</html>`

const untitledDocument = "Untitled"

// Composer sequences the pipeline stages over an ordered document list
// and assembles the result into a single HTML body.
type Composer struct {
	renderer   MarkupRenderer
	normalizer MediaNormalizer
	paginator  TablePaginator
}

// NewComposer creates a Composer over the given stages.
func NewComposer(renderer MarkupRenderer, normalizer MediaNormalizer, paginator TablePaginator) *Composer {
	return &Composer{
		renderer:   renderer,
		normalizer: normalizer,
		paginator:  paginator,
	}
}

// Compose transforms every document body (render, normalize, paginate) and
// concatenates the fragments with page-break directives between group and
// document boundaries. Transformations run concurrently: each one only
// reads its own input string, and output order is restored by index.
func (c *Composer) Compose(ctx context.Context, docs []Document) (string, error) {
	fragments := make([]string, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			fragment, err := c.transform(gctx, doc)
			if err != nil {
				return fmt.Errorf("transforming %q: %w", doc.Title, err)
			}
			fragments[i] = fragment
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	return c.assemble(docs, fragments), nil
}

// WrapDocument embeds the stylesheet and body in a complete HTML document.
// The stylesheet is escaped against premature </style> termination.
func WrapDocument(body, stylesheet string) string {
	return fmt.Sprintf(documentShell, sanitizeCSS(stylesheet), body)
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// transform runs one document body through the pipeline stages.
func (c *Composer) transform(ctx context.Context, doc Document) (string, error) {
	body := doc.Body
	if !doc.RawHTML {
		rendered, err := c.renderer.Render(ctx, body)
		if err != nil {
			return "", err
		}
		body = rendered
	}
	body = c.normalizer.Normalize(ctx, body)
	body = c.paginator.Paginate(ctx, body)
	return body, nil
}

// assemble builds the output body. A page break precedes every group
// except the first, and every document within a group except that group's
// first, so the first document of a group flows directly beneath the
// group heading.
func (c *Composer) assemble(docs []Document, fragments []string) string {
	var parts []string

	for gi, group := range groupDocuments(docs) {
		var b strings.Builder

		if gi == 0 {
			b.WriteString("<div>")
		} else {
			b.WriteString(pageBreak)
		}

		if group.label != "" {
			b.WriteString(`<h1 class="group-name">` + html.EscapeString(group.label) + "</h1>")
		}

		for di, idx := range group.indexes {
			if di > 0 {
				b.WriteString(pageBreak)
			}
			b.WriteString(`<h1 class="page-title">` + html.EscapeString(documentTitle(docs[idx], fragments[idx])) + "</h1>")
			b.WriteString(fragments[idx])
			if di > 0 {
				b.WriteString("</div>")
			}
		}

		b.WriteString("</div>")
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n")
}

// documentTitle resolves a document's display title, falling back to the
// first heading of the rendered fragment for untitled documents.
func documentTitle(doc Document, fragment string) string {
	if doc.Title != "" {
		return doc.Title
	}
	if heading := FirstHeading(fragment); heading != "" {
		return heading
	}
	return untitledDocument
}

// group is a maximal run of consecutive documents sharing a label.
// Label equality is exact; the empty label is itself a group value.
type group struct {
	label   string
	indexes []int
}

// groupDocuments partitions document indexes into consecutive groups,
// preserving input order.
func groupDocuments(docs []Document) []group {
	var groups []group
	for i, doc := range docs {
		if len(groups) == 0 || groups[len(groups)-1].label != doc.GroupLabel {
			groups = append(groups, group{label: doc.GroupLabel})
		}
		last := len(groups) - 1
		groups[last].indexes = append(groups[last].indexes, i)
	}
	return groups
}
