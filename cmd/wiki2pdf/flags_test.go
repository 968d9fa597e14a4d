package main

import (
	"testing"
	"time"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		check   func(t *testing.T, f *cliFlags, rest []string)
		wantErr bool
	}{
		{
			name: "defaults",
			args: []string{"space.yaml"},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.config != "" || f.output != "" || f.htmlOnly || f.quiet || f.verbose {
					t.Errorf("unexpected non-default flags: %+v", f)
				}
				if len(rest) != 1 || rest[0] != "space.yaml" {
					t.Errorf("positional args = %v, want [space.yaml]", rest)
				}
			},
		},
		{
			name: "short flags",
			args: []string{"-c", "prod", "-o", "out.pdf", "-q", "docs/"},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.config != "prod" {
					t.Errorf("config = %q, want prod", f.config)
				}
				if f.output != "out.pdf" {
					t.Errorf("output = %q, want out.pdf", f.output)
				}
				if !f.quiet {
					t.Error("quiet = false, want true")
				}
				if len(rest) != 1 || rest[0] != "docs/" {
					t.Errorf("positional args = %v, want [docs/]", rest)
				}
			},
		},
		{
			name: "long flags",
			args: []string{
				"--space-name", "Handbook",
				"--route", "handbook",
				"--style", "print.css",
				"--timeout", "45s",
				"--row-ceiling", "20",
				"--html-only",
				"manifest.yml",
			},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if f.spaceName != "Handbook" || f.route != "handbook" || f.style != "print.css" {
					t.Errorf("string flags not parsed: %+v", f)
				}
				if f.timeout != 45*time.Second {
					t.Errorf("timeout = %v, want 45s", f.timeout)
				}
				if f.rowCeiling != 20 {
					t.Errorf("rowCeiling = %d, want 20", f.rowCeiling)
				}
				if !f.htmlOnly {
					t.Error("htmlOnly = false, want true")
				}
				if len(rest) != 1 || rest[0] != "manifest.yml" {
					t.Errorf("positional args = %v, want [manifest.yml]", rest)
				}
			},
		},
		{
			name: "version flag",
			args: []string{"--version"},
			check: func(t *testing.T, f *cliFlags, rest []string) {
				if !f.version {
					t.Error("version = false, want true")
				}
				if len(rest) != 0 {
					t.Errorf("positional args = %v, want none", rest)
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--no-such-flag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, rest, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			tt.check(t, f, rest)
		})
	}
}
