package wiki2pdf

// DefaultStylesheet is the built-in print stylesheet: typography, heading
// scale, bordered fixed-layout tables with repeating headers, callout-card
// blockquotes, and the boxes produced by the media normalizer
// (.pdf-video-link, .pdf-details, .pdf-summary).
const DefaultStylesheet = `
html, body {
    margin: 0; padding: 0;
    font-family: Georgia, serif;
    font-size: 12pt;
    line-height: 1.5;
    color: #111;
}

/* Group heading */
h1.group-name {
    font-size: 20pt;
    font-weight: bold;
    border-bottom: 2px solid #333;
    padding-bottom: 4pt;
    margin: 0 0 14pt 0;
    color: #111;
    page-break-after: avoid;
}

/* Page title */
h1.page-title {
    font-size: 16pt;
    font-weight: bold;
    margin: 0 0 12pt 0;
    color: #1a52a0;
    page-break-after: avoid;
}

/* Content headings */
h1 { font-size: 17pt; font-weight: bold; margin: 12pt 0 6pt 0; color: #111; page-break-after: avoid; }
h2 { font-size: 16pt; font-weight: bold; margin: 10pt 0 5pt 0; color: #111; page-break-after: avoid; }
h3 { font-size: 15pt; font-weight: bold; margin:  8pt 0 4pt 0; color: #111; page-break-after: avoid; }
h4 { font-size: 14pt; font-weight: bold; margin:  6pt 0 3pt 0; color: #111; page-break-after: avoid; }
h5, h6 { font-size: 13pt; font-weight: bold; margin: 5pt 0 2pt 0; color: #111; }

p   { margin: 4pt 0; }
li  { margin-bottom: 2pt; }
ul, ol { padding-left: 18pt; margin: 4pt 0; }

b, strong { font-weight: bold; }
em, i     { font-style: italic; }
s, del    { text-decoration: line-through; }

a { color: #1a6fa8; text-decoration: underline; }

img { max-width: 100%; height: auto; }

hr { border: 0; border-top: 1px solid #bbb; margin: 10pt 0; }

code {
    font-family: "Courier New", monospace;
    font-size: 11pt;
    background: #f4f4f4;
    padding: 1pt 3pt;
}

pre {
    font-family: "Courier New", monospace;
    font-size: 10pt;
    background: #f4f4f4;
    border: 1px solid #ddd;
    padding: 8pt;
    margin: 6pt 0;
    white-space: pre-wrap;
    word-wrap: break-word;
    page-break-inside: avoid;
}

/* Blockquote as callout card */
blockquote {
    border: 1px solid #bbb;
    border-left: 4pt solid #555;
    border-radius: 3pt;
    background: #f7f7f7;
    margin: 8pt 0;
    padding: 8pt 14pt;
    page-break-inside: avoid;
}

/* Tables: fixed layout so columns share width evenly, smaller font so
   rows stay short enough for clean page breaks */
table {
    width: 100%;
    border-collapse: collapse;
    margin: 8pt 0;
    table-layout: fixed;
    font-size: 10pt;
}

/* Repeat header when a table spans multiple pages */
thead {
    display: table-header-group;
}

th {
    background-color: #eee;
    font-weight: bold;
    border: 1px solid #aaa;
    padding: 2pt 5pt;
    text-align: left;
    vertical-align: top;
    word-break: break-word;
    overflow-wrap: break-word;
    line-height: 1.2;
}

td {
    border: 1px solid #aaa;
    padding: 2pt 5pt;
    vertical-align: top;
    word-break: break-word;
    overflow-wrap: break-word;
    line-height: 1.2;
}

/* Video link boxes */
.pdf-video-link {
    border: 1px solid #ccc;
    background: #f9f9f9;
    padding: 6pt 10pt;
    margin: 6pt 0;
    display: block;
}

.pdf-details { display: block; margin: 6pt 0; }
.pdf-summary { font-weight: bold; }
`
