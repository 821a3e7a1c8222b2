/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main renders a benchmark document from an evaluation results CSV.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"github.com/evalsmith/benchtab/report"
)

type config struct {
	// Format selects the output renderer: latex or markdown.
	Format string `env:"BENCHTAB_FORMAT,default=latex"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	source := flag.String("source", "", "path to the evaluation results CSV")
	sink := flag.String("sink", "", "path to write the rendered document (stdout when empty)")
	flag.Parse()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}
	if *source == "" {
		clog.FatalContextf(ctx, "-source is required")
	}

	document, err := report.Write(
		report.FileSource{Path: *source},
		sinkFor(*sink),
		report.Format(cfg.Format),
	)
	switch {
	case errors.Is(err, report.ErrSinkWriteFailed):
		// The document was generated; emit it before failing so it is not lost.
		fmt.Print(document)
		clog.FatalContextf(ctx, "writing document: %v", err)
	case err != nil:
		clog.FatalContextf(ctx, "generating document: %v", err)
	}

	if *sink != "" {
		clog.InfoContextf(ctx, "wrote %d bytes to %s", len(document), *sink)
	}
}

// stdoutSink writes the document to standard output.
type stdoutSink struct{}

func (stdoutSink) Write(document string) error {
	_, err := fmt.Print(document)
	return err
}

func sinkFor(path string) report.Sink {
	if path == "" {
		return stdoutSink{}
	}
	return report.FileSink{Path: path}
}
