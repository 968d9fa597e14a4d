package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestRenderEmptyInput(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	for _, input := range []string{"", "   ", "\n\n"} {
		got, err := r.Render(context.Background(), input)
		if err != nil {
			t.Errorf("Render(%q) error = %v, want nil", input, err)
		}
		if got != "" {
			t.Errorf("Render(%q) = %q, want empty", input, got)
		}
	}
}

func TestRenderTables(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	markdown := "| Name | Level |\n|------|-------|\n| alice | 3 |\n| bob | 1 |\n"

	got, err := r.Render(context.Background(), markdown)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"<table>", "<thead>", "<tbody>", "<th>Name</th>", "<td>alice</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRenderFencedCodeEscapedVerbatim(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	markdown := "```\n<table><tr></tr></table>\n**not bold**\n```\n"

	got, err := r.Render(context.Background(), markdown)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(got, "<pre") {
		t.Error("fenced code not rendered as <pre>")
	}
	if !strings.Contains(got, "&lt;table&gt;") {
		t.Error("HTML inside fenced code not escaped")
	}
	if strings.Contains(got, "<strong>") {
		t.Error("markup inside fenced code was re-interpreted")
	}
}

func TestRenderInlineFeatures(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "strikethrough",
			markdown: "some ~~deleted~~ text",
			want:     "<del>deleted</del>",
		},
		{
			name:     "single newline becomes line break",
			markdown: "first line\nsecond line",
			want:     "<br",
		},
		{
			name:     "heading anchor",
			markdown: "# Getting Started",
			want:     `id="getting-started"`,
		},
		{
			name:     "footnote reference",
			markdown: "Fact[^1]\n\n[^1]: Source.",
			want:     `href="#fn:1"`,
		},
		{
			name:     "raw html passes through",
			markdown: `<iframe src="https://example.com/v"></iframe>`,
			want:     `<iframe src="https://example.com/v">`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestRenderReturnsFragment(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	got, err := r.Render(context.Background(), "plain paragraph")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// The composer owns the document shell.
	for _, forbidden := range []string{"<!DOCTYPE", "<html", "<body"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("fragment output contains %q", forbidden)
		}
	}
}

func TestRenderCanceledContext(t *testing.T) {
	t.Parallel()

	r := NewGoldmarkRenderer()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Render(ctx, "# Heading"); err == nil {
		t.Error("Render() with canceled context: want error, got nil")
	}
}
