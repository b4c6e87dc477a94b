package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	errors2 "github.com/savid/latstats/pkg/errors"
	"github.com/savid/latstats/pkg/reporter"
	"github.com/savid/latstats/pkg/summary"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errors2.ErrUsage) {
			os.Exit(1)
		}

		logrus.WithError(err).Fatal("Failed to summarize samples")
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("latstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: latstats [flags] <file>\n")
		fs.PrintDefaults()
	}

	cfg := reporter.DefaultConfig()

	logLevel := fs.String("log_level", "info", "Log level (debug, info, warn, error)")
	exactMean := fs.Bool("exact_mean", false, "Use direct floating-point summation for the average")
	openAttempts := fs.Uint("open_attempts", cfg.OpenAttempts, "Attempts at opening a sample file that does not exist yet")
	openDelay := fs.Duration("open_delay", cfg.OpenDelay, "Delay between open attempts")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return errors2.NewUsageError(err.Error())
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level %q\n", *logLevel)

		return errors2.NewUsageError(err.Error())
	}
	logrus.SetLevel(level)

	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "enter filename as the first argument")
		fs.Usage()

		return errors2.NewUsageError("missing sample file")
	}

	if *exactMean {
		cfg.MeanMode = summary.MeanExact
	}
	cfg.OpenAttempts = *openAttempts
	cfg.OpenDelay = *openDelay

	return reporter.New(cfg).Run(ctx, fs.Arg(0), stdout)
}
