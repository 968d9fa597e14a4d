package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if flags.version {
		fmt.Println("wiki2pdf " + Version)
		return
	}

	logger := newLogger(flags)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
		logger.Debug().Msgf(format, a...)
	}))

	if err := run(flags, args, logger); err != nil {
		logger.Error().Err(err).Msg("export failed")
		os.Exit(1)
	}
}

// newLogger builds the console logger; -q limits it to errors, -v enables
// debug output.
func newLogger(flags *cliFlags) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case flags.quiet:
		level = zerolog.ErrorLevel
	case flags.verbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
