package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// DefaultRowCeiling is the maximum number of body rows per emitted table.
//
// The ceiling is a heuristic, not a guarantee: row heights are unknown
// before rendering, so unusually tall rows can still overflow a page.
const DefaultRowCeiling = 15

// tableStyle forces fixed-width columns, a smaller font, and page-break
// avoidance at the table level. wkhtmltopdf-style rasterizers ignore
// page-break-inside:avoid on <tr> and <td> but honour it on <table>, so
// the only reliable unit of page-break control is a whole table.
const tableStyle = "width:100%;border-collapse:collapse;table-layout:fixed;font-size:10pt;" +
	"margin:0 0 0 0;page-break-inside:avoid;break-inside:avoid;"

// continuedLabel signals visual continuity on every chunk after the first.
const continuedLabel = `<div style="font-size:9pt;color:#555;text-align:right;margin-top:4pt;">` +
	`(continued from previous page)</div>`

// subTableSpacer keeps consecutive sub-tables from visually fusing when
// they land on the same page.
const subTableSpacer = `<div style="margin:4pt 0;"></div>`

// Structural span matchers. Extraction is deliberately pattern-based, not
// a tree parse: the input is well-formed authoring-tool output, and every
// matcher degrades to an empty result on malformed input instead of
// failing the document. A table nested inside a cell would terminate the
// outer span early; nested tables are a known, accepted limitation.
var (
	tablePattern     = regexp.MustCompile(`(?is)<table[^>]*>.*?</table>`)
	tableOpenPattern = regexp.MustCompile(`(?i)<table([^>]*)>`)
	styleAttrPattern = regexp.MustCompile(`(?i)\s*style\s*=\s*("[^"]*"|'[^']*')`)
	theadPattern     = regexp.MustCompile(`(?is)<thead[^>]*>.*?</thead>`)
	colgroupPattern  = regexp.MustCompile(`(?is)<colgroup[^>]*>.*?</colgroup>`)
	tbodyPattern     = regexp.MustCompile(`(?is)<tbody[^>]*>(.*?)</tbody>`)
	rowPattern       = regexp.MustCompile(`(?is)<tr[^>]*>.*?</tr>`)
)

// TablePaginator rewrites tables so a page-oriented rasterizer lays them
// out without breaking a table across a physical page boundary mid-row.
type TablePaginator interface {
	Paginate(ctx context.Context, htmlContent string) string
}

// SplitTablePaginator splits oversized tables into sub-tables of at most
// rowCeiling body rows each, repeating the header and column group in
// every sub-table. Small tables are kept whole and stamped with the
// page-break-avoidance style.
type SplitTablePaginator struct {
	rowCeiling int
}

// NewSplitTablePaginator creates a paginator with the given row ceiling.
// A ceiling of zero or less falls back to DefaultRowCeiling.
func NewSplitTablePaginator(rowCeiling int) *SplitTablePaginator {
	if rowCeiling <= 0 {
		rowCeiling = DefaultRowCeiling
	}
	return &SplitTablePaginator{rowCeiling: rowCeiling}
}

// Paginate replaces every top-level <table> span independently.
// Non-table content passes through unchanged.
func (p *SplitTablePaginator) Paginate(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return htmlContent
	}
	return tablePattern.ReplaceAllStringFunc(htmlContent, p.splitTable)
}

// splitTable re-emits one matched table span as either a single
// break-safe table or a sequence of bounded sub-tables.
func (p *SplitTablePaginator) splitTable(tableHTML string) string {
	header, synthesized := extractHeader(tableHTML)
	colgroup := extractColgroup(tableHTML)
	rows := extractBodyRows(tableHTML)

	// A synthesized header wraps the first row; drop it from the body so
	// it doesn't appear as both header and data.
	if synthesized && len(rows) > 0 {
		rows = rows[1:]
	}

	if len(rows) <= p.rowCeiling {
		return stampTableStyle(tableHTML)
	}

	attrs := extractTableAttrs(tableHTML)

	var parts []string
	for start := 0; start < len(rows); start += p.rowCeiling {
		end := min(start+p.rowCeiling, len(rows))

		var b strings.Builder
		if start > 0 {
			b.WriteString(continuedLabel)
		}
		b.WriteString(`<table` + attrs + ` style="` + tableStyle + `">`)
		b.WriteString(colgroup)
		b.WriteString(header)
		b.WriteString("<tbody>" + strings.Join(rows[start:end], "\n") + "</tbody>")
		b.WriteString("</table>")
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n"+subTableSpacer+"\n")
}

// extractHeader returns the explicit <thead> span, or synthesizes one
// around the first row so every chunk has a repeatable header. The bool
// reports whether the header was synthesized. Tables with no rows at all
// yield an empty header.
func extractHeader(tableHTML string) (header string, synthesized bool) {
	if thead := theadPattern.FindString(tableHTML); thead != "" {
		return thead, false
	}
	if first := rowPattern.FindString(tableHTML); first != "" {
		return "<thead>" + first + "</thead>", true
	}
	return "", false
}

// extractColgroup returns the explicit <colgroup> span, if any.
// Column groups are optional sizing hints; absent is valid.
func extractColgroup(tableHTML string) string {
	return colgroupPattern.FindString(tableHTML)
}

// extractBodyRows returns the data row spans in document order. Rows come
// from the explicit <tbody> when one exists; otherwise from the whole
// table with any explicit <thead> span removed first, so header rows are
// never extracted as data.
func extractBodyRows(tableHTML string) []string {
	if m := tbodyPattern.FindStringSubmatch(tableHTML); m != nil {
		return rowPattern.FindAllString(m[1], -1)
	}
	flat := theadPattern.ReplaceAllString(tableHTML, "")
	return rowPattern.FindAllString(flat, -1)
}

// extractTableAttrs returns the attribute text of the table's opening tag
// with any author style attribute removed. HTML keeps the first of two
// duplicate attributes, so a surviving author style would shadow the forced
// one appended after it.
func extractTableAttrs(tableHTML string) string {
	if m := tableOpenPattern.FindStringSubmatch(tableHTML); m != nil {
		return styleAttrPattern.ReplaceAllString(m[1], "")
	}
	return ""
}

// stampTableStyle rewrites the table's opening tag to carry the forced
// layout and page-break-avoidance style, leaving the rest intact.
func stampTableStyle(tableHTML string) string {
	stamped := false
	return tableOpenPattern.ReplaceAllStringFunc(tableHTML, func(open string) string {
		if stamped {
			return open
		}
		stamped = true
		attrs := styleAttrPattern.ReplaceAllString(tableOpenPattern.FindStringSubmatch(open)[1], "")
		return `<table` + attrs + ` style="` + tableStyle + `">`
	})
}
