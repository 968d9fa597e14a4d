package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the wiki2pdf command.
type cliFlags struct {
	config     string
	output     string
	spaceName  string
	route      string
	style      string
	timeout    time.Duration
	rowCeiling int
	htmlOnly   bool
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line arguments. Returns the flags, the
// positional arguments (input paths), or a parse error.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}

	fs := flag.NewFlagSet("wiki2pdf", flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file path (default: derived filename)")
	fs.StringVar(&f.spaceName, "space-name", "", "space display name (used for the filename)")
	fs.StringVar(&f.route, "route", "", "space route identifier (filename fallback)")
	fs.StringVar(&f.style, "style", "", "CSS file replacing the built-in stylesheet")
	fs.DurationVar(&f.timeout, "timeout", 0, "PDF rendering timeout (default 30s)")
	fs.IntVar(&f.rowCeiling, "row-ceiling", 0, "max table rows per page chunk (default 15)")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the composed HTML instead of a PDF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
