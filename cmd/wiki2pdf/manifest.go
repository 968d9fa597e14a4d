package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wiki2pdf "github.com/alnah/go-wiki2pdf"
	"github.com/alnah/go-wiki2pdf/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestParse  = errors.New("failed to parse manifest")
	ErrManifestEmpty  = errors.New("manifest lists no documents")
	ErrPageFileAbsent = errors.New("wiki page file not found")
)

// Manifest describes an ordered wiki space export: the space identity and
// the document sequence with optional sidebar group labels.
type Manifest struct {
	Space     ManifestSpace      `yaml:"space"`
	Documents []ManifestDocument `yaml:"documents"`
}

// ManifestSpace identifies the exported space.
type ManifestSpace struct {
	Name  string `yaml:"name"`
	Route string `yaml:"route"`
}

// ManifestDocument references one wiki page body on disk.
type ManifestDocument struct {
	Title string `yaml:"title"` // Empty = derived from the page's first heading
	File  string `yaml:"file"`  // Path relative to the manifest file
	Group string `yaml:"group"` // Sidebar group label (empty is a valid group)
	HTML  bool   `yaml:"html"`  // File holds pre-rendered HTML, not markdown
}

// loadManifest reads and strictly parses a YAML manifest.
func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	if len(m.Documents) == 0 {
		return nil, ErrManifestEmpty
	}

	return &m, nil
}

// resolveDocuments reads every referenced page body. File paths are
// resolved relative to baseDir (the manifest's directory). A missing page
// file is a user-facing not-found error; nothing is rendered.
func (m *Manifest) resolveDocuments(baseDir string) ([]wiki2pdf.Document, error) {
	docs := make([]wiki2pdf.Document, 0, len(m.Documents))

	for _, entry := range m.Documents {
		path := entry.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		body, err := os.ReadFile(path) // #nosec G304 -- paths come from the user's manifest
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrPageFileAbsent, entry.File)
			}
			return nil, fmt.Errorf("reading page %q: %w", entry.File, err)
		}

		docs = append(docs, wiki2pdf.Document{
			Title:      entry.Title,
			Body:       string(body),
			GroupLabel: entry.Group,
			RawHTML:    entry.HTML,
		})
	}

	return docs, nil
}

// isManifestPath reports whether the input path looks like a YAML manifest.
func isManifestPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
