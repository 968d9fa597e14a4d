package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths converts relative image and link paths to absolute
// file:// URLs so the rasterizer can resolve local wiki attachments.
// If sourceDir is empty, the HTML is returned unchanged.
//
// Only img[src] and a[href] are rewritten. URLs, anchors, and absolute
// paths pass through; paths escaping sourceDir are left alone.
func RewriteRelativePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, absSourceDir)

	return renderHTML(doc, isFragment)
}

// parseHTML parses a full document or a fragment. Fragments are parsed in
// body context so rendering them back doesn't grow an <html> wrapper.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	bodyContext := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), bodyContext)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders the tree back to a string. For fragments only the
// children are rendered.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode walks the tree and rewrites relative paths in place.
func rewriteNode(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			rewriteAttr(n, "src", sourceDir)
		case "a":
			rewriteAttr(n, "href", sourceDir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, sourceDir)
	}
}

// rewriteAttr rewrites one attribute when it holds a relative path that
// stays under sourceDir.
func rewriteAttr(n *html.Node, attrName, sourceDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(sourceDir, attr.Val)
		if !isPathUnderDir(absPath, sourceDir) {
			continue // path traversal; leave the original value
		}

		n.Attr[i].Val = pathToFileURL(absPath)
	}
}

// isRelativePath reports whether the value is a rewritable relative path:
// not a URL, not an anchor, not already absolute.
func isRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "#") {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "//"} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return !filepath.IsAbs(path)
}

// isPathUnderDir checks that absPath stays under dir.
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL, handling
// Windows separators.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
