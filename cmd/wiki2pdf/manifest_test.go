package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "space.yaml", `
space:
  name: Employee Handbook
  route: employee-handbook
documents:
  - title: Welcome
    file: welcome.md
    group: Intro
  - file: org-chart.md
    group: Company
    html: true
`)

	m, err := loadManifest(path)
	if err != nil {
		t.Fatalf("loadManifest() error = %v", err)
	}

	if m.Space.Name != "Employee Handbook" || m.Space.Route != "employee-handbook" {
		t.Errorf("Space = %+v", m.Space)
	}
	if len(m.Documents) != 2 {
		t.Fatalf("Documents = %d, want 2", len(m.Documents))
	}
	if m.Documents[0].Title != "Welcome" || m.Documents[0].Group != "Intro" {
		t.Errorf("Documents[0] = %+v", m.Documents[0])
	}
	if !m.Documents[1].HTML {
		t.Error("Documents[1].HTML = false, want true")
	}
}

func TestLoadManifestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no documents",
			content: "space:\n  name: Empty\n",
			wantErr: ErrManifestEmpty,
		},
		{
			name:    "unknown field rejected",
			content: "documents:\n  - file: a.md\n    colour: red\n",
			wantErr: ErrManifestParse,
		},
		{
			name:    "malformed yaml",
			content: "documents: [\n",
			wantErr: ErrManifestParse,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), "space.yaml", tt.content)
			_, err := loadManifest(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("loadManifest() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveDocuments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "welcome.md", "# Welcome\n")
	writeFile(t, dir, "chart.html", "<h1>Org Chart</h1>")

	m := &Manifest{
		Documents: []ManifestDocument{
			{Title: "Welcome", File: "welcome.md", Group: "Intro"},
			{File: "chart.html", HTML: true},
		},
	}

	docs, err := m.resolveDocuments(dir)
	if err != nil {
		t.Fatalf("resolveDocuments() error = %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("documents = %d, want 2", len(docs))
	}
	if docs[0].Body != "# Welcome\n" || docs[0].GroupLabel != "Intro" {
		t.Errorf("docs[0] = %+v", docs[0])
	}
	if !docs[1].RawHTML || docs[1].Body != "<h1>Org Chart</h1>" {
		t.Errorf("docs[1] = %+v", docs[1])
	}
}

func TestResolveDocumentsMissingFile(t *testing.T) {
	t.Parallel()

	m := &Manifest{
		Documents: []ManifestDocument{{File: "gone.md"}},
	}

	_, err := m.resolveDocuments(t.TempDir())
	if !errors.Is(err, ErrPageFileAbsent) {
		t.Errorf("resolveDocuments() error = %v, want %v", err, ErrPageFileAbsent)
	}
}

func TestIsManifestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"space.yaml", true},
		{"space.yml", true},
		{"SPACE.YAML", true},
		{"space.md", false},
		{"space", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := isManifestPath(tt.path); got != tt.want {
			t.Errorf("isManifestPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
