/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report turns a table of raw evaluation results into a formatted
// benchmark document. The pipeline is a pure transformation: filter rows to
// recognized prompts, map configuration identifiers to display labels, sort,
// regroup the per-metric score columns into three clusters, and render with
// fixed-precision formatting. The document is rebuilt from the row table on
// every call; nothing is cached between calls.
package report

import (
	"errors"
	"fmt"
	"os"
)

// ErrSinkWriteFailed is returned when the generated document could not be
// persisted. The document itself is still returned alongside the error.
var ErrSinkWriteFailed = errors.New("document sink write failed")

// Format selects the output renderer.
type Format string

const (
	// FormatLaTeX is the paginated longtable document.
	FormatLaTeX Format = "latex"
	// FormatMarkdown is a summary table of the averaged scores only.
	FormatMarkdown Format = "markdown"
)

// Generate reads the source's rows and builds the document. The only
// propagated external failure is the source's; everything downstream is an
// in-memory transformation. Generating twice from an unchanged source yields
// byte-identical documents.
func Generate(source Source, format Format) (string, error) {
	rows, err := source.Rows()
	if err != nil {
		return "", err
	}

	entries := normalize(rows)
	switch format {
	case FormatLaTeX, "":
		return renderLaTeX(entries), nil
	case FormatMarkdown:
		return renderMarkdown(entries), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// Sink persists a generated document.
type Sink interface {
	Write(document string) error
}

// FileSink writes the document to a file on disk, replacing any previous
// contents.
type FileSink struct {
	Path string
}

// Write implements Sink.
func (s FileSink) Write(document string) error {
	return os.WriteFile(s.Path, []byte(document), 0o644)
}

// Write generates the document and hands it to the sink. There is no retry:
// a sink failure surfaces as ErrSinkWriteFailed, with the generated document
// still returned so the caller does not lose it.
func Write(source Source, sink Sink, format Format) (string, error) {
	document, err := Generate(source, format)
	if err != nil {
		return "", err
	}
	if err := sink.Write(document); err != nil {
		return document, fmt.Errorf("%w: %v", ErrSinkWriteFailed, err)
	}
	return document, nil
}
