// Package wiki2pdf converts ordered sequences of wiki documents into a
// single print-ready PDF using headless Chrome.
//
// # Quick Start
//
// Create an exporter, export documents, and close when done:
//
//	exp := wiki2pdf.NewExporter()
//	defer exp.Close()
//
//	result, err := exp.Export(ctx, wiki2pdf.Input{
//	    SpaceName: "Employee Handbook",
//	    Documents: []wiki2pdf.Document{
//	        {Title: "Home", Body: "# Welcome\n\n...", GroupLabel: "Introduction"},
//	        {Title: "Roles", Body: "| Role | Level |\n|---|---|\n...", GroupLabel: "HR"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.PDF, 0644)
//
// The result contains the PDF bytes (result.PDF), the intermediate HTML
// (result.HTML) for debugging, and a derived output filename. Use
// Input.HTMLOnly to skip PDF generation.
//
// # Conversion Pipeline
//
// Each document body flows through four stages:
//
//  1. Markdown to HTML conversion via Goldmark (GFM tables, footnotes,
//     hard line breaks, heading anchors, syntax highlighting)
//  2. Media normalization: iframes and videos become static link blocks,
//     details/summary widgets become always-visible blocks
//  3. Table pagination: tables larger than the row ceiling are split into
//     page-sized sub-tables with repeated headers
//  4. Composition: fragments are joined with page breaks at group and
//     document boundaries, wrapped in an HTML shell, and rendered to PDF
//     via headless Chrome (go-rod)
//
// Stage 3 exists because wkhtmltopdf-style rasterizers only honour
// page-break-inside:avoid on whole tables, never on rows or cells. Small
// bounded tables are the only reliable way to keep rows intact across
// physical page boundaries.
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp := wiki2pdf.NewExporter(
//	    wiki2pdf.WithTimeout(2 * time.Minute),
//	    wiki2pdf.WithRowCeiling(20),
//	    wiki2pdf.WithStylesheet(customCSS),
//	)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium instance on first run (~/.cache/rod/browser/). Set
// ROD_BROWSER_BIN to use a pre-installed binary.
package wiki2pdf
