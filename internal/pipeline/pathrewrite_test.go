package pipeline

import (
	"strings"
	"testing"
)

func TestRewriteRelativePaths(t *testing.T) {
	t.Parallel()

	const sourceDir = "/data/wiki/attachments"

	tests := []struct {
		name  string
		input string
		want  string // substring expected in the output
	}{
		{
			name:  "relative img src rewritten",
			input: `<img src="diagram.png"/>`,
			want:  `src="file:///data/wiki/attachments/diagram.png"`,
		},
		{
			name:  "relative subdirectory path rewritten",
			input: `<img src="img/photo.jpg"/>`,
			want:  `src="file:///data/wiki/attachments/img/photo.jpg"`,
		},
		{
			name:  "relative link href rewritten",
			input: `<a href="policy.pdf">policy</a>`,
			want:  `href="file:///data/wiki/attachments/policy.pdf"`,
		},
		{
			name:  "http URL untouched",
			input: `<img src="https://example.com/pic.png"/>`,
			want:  `src="https://example.com/pic.png"`,
		},
		{
			name:  "anchor untouched",
			input: `<a href="#section">jump</a>`,
			want:  `href="#section"`,
		},
		{
			name:  "data URL untouched",
			input: `<img src="data:image/png;base64,AAAA"/>`,
			want:  `src="data:image/png;base64,AAAA"`,
		},
		{
			name:  "absolute path untouched",
			input: `<img src="/etc/passwd"/>`,
			want:  `src="/etc/passwd"`,
		},
		{
			name:  "traversal outside source dir left alone",
			input: `<img src="../../secret.png"/>`,
			want:  `src="../../secret.png"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativePaths(tt.input, sourceDir)
			if err != nil {
				t.Fatalf("RewriteRelativePaths() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q missing %q", got, tt.want)
			}
		})
	}
}

func TestRewriteRelativePathsEmptySourceDir(t *testing.T) {
	t.Parallel()

	input := `<img src="pic.png"/>`
	got, err := RewriteRelativePaths(input, "")
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if got != input {
		t.Errorf("RewriteRelativePaths() = %q, want input unchanged", got)
	}
}

func TestRewriteRelativePathsFullDocument(t *testing.T) {
	t.Parallel()

	input := `<!DOCTYPE html><html><head></head><body><img src="a.png"/></body></html>`
	got, err := RewriteRelativePaths(input, "/srv/pages")
	if err != nil {
		t.Fatalf("RewriteRelativePaths() error = %v", err)
	}
	if !strings.Contains(got, `src="file:///srv/pages/a.png"`) {
		t.Errorf("full document img not rewritten: %q", got)
	}
	if strings.Count(got, "<body") != 1 {
		t.Error("document structure duplicated during rewrite")
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"pic.png", true},
		{"img/pic.png", true},
		{"../up.png", true},
		{"", false},
		{"#anchor", false},
		{"http://example.com/p.png", false},
		{"https://example.com/p.png", false},
		{"file:///tmp/p.png", false},
		{"data:image/png;base64,AA", false},
		{"//cdn.example.com/p.png", false},
		{"/abs/p.png", false},
	}

	for _, tt := range tests {
		tt := tt
		if got := isRelativePath(tt.path); got != tt.want {
			t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
