// Command img2ascii renders an image as colored text art in the
// terminal, or saves it as plain text, HTML or PNG.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"github.com/wbrown/img2ascii"
	"github.com/wbrown/img2ascii/internal/log"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli, parser, err := parseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cli.Version {
		fmt.Fprintf(stdout, "img2ascii %s\n", version)
		return 0
	}
	log.SetOutput(stderr)
	if cli.Verbose {
		log.SetLevel(log.LevelDebug)
	}
	if cli.Args.Image == "" {
		fmt.Fprintln(stderr, "Error: an image path is required")
		parser.WriteHelp(stderr)
		return 1
	}

	if err := checkFlags(cli); err != nil {
		reportError(stderr, err)
		return 1
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		reportError(stderr, fmt.Errorf("%w: %v", img2ascii.ErrInvalidConfiguration, err))
		return 1
	}

	opts, err := buildOptions(cli, parser, cfg)
	if err == nil {
		err = opts.Validate()
	}
	if err == nil {
		p := img2ascii.NewProcessor(img2ascii.WithStdout(stdout))
		err = p.Run(ctx, opts)
	}
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	return 0
}

// reportError prints err in the form matching its class.
func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, img2ascii.ErrNotFound),
		errors.Is(err, img2ascii.ErrUnsupportedFormat),
		errors.Is(err, img2ascii.ErrInvalidConfiguration):
		fmt.Fprintf(w, "Error: %v\n", err)
	default:
		fmt.Fprintf(w, "Error processing image: %v\n", err)
	}
}
