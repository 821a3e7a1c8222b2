/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

// sliceSource serves a fixed row slice.
type sliceSource []Row

func (s sliceSource) Rows() ([]Row, error) { return s, nil }

// failingSource always fails.
type failingSource struct{}

func (failingSource) Rows() ([]Row, error) {
	return nil, ErrSourceUnavailable
}

// failingSink always fails.
type failingSink struct{}

func (failingSink) Write(string) error { return errors.New("disk full") }

// memorySink captures the written document.
type memorySink struct {
	document string
}

func (s *memorySink) Write(document string) error {
	s.document = document
	return nil
}

// makeRow builds a Row whose three clusters all carry the given five averaged
// metric values, in table metric order.
func makeRow(configuration, prompt string, temperature float64, avg [5]float64) Row {
	r := Row{
		Configuration: configuration,
		Prompt:        prompt,
		Temperature:   temperature,
		Scores:        make(map[string]float64),
	}
	for mi, m := range metrics {
		for _, cluster := range clusters {
			r.Scores[scoreColumn(m.name, cluster)] = avg[mi]
		}
	}
	return r
}

// dataLines extracts the rendered data rows, which sit between the last
// pagination fragment and the closing of the table.
func dataLines(t *testing.T, document string) []string {
	t.Helper()
	_, rest, ok := strings.Cut(document, "\\endlastfoot\n")
	if !ok {
		t.Fatalf("document has no \\endlastfoot fragment:\n%s", document)
	}
	body, _, ok := strings.Cut(rest, "\\end{longtable}")
	if !ok {
		t.Fatalf("document has no \\end{longtable}:\n%s", document)
	}
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestGenerateIdempotent(t *testing.T) {
	source := sliceSource{
		makeRow("GENAI_SHARED_AZURE_OPENAI_GPT_41", "current_user_template.txt", 0.7, [5]float64{0.9, 0.8, 0.7, 0.6, 0.5}),
		makeRow("GENAI_SHARED_VERTEXAI_GOOGLE_GEMINI_15_PRO", "previous_user_template.txt", 0.0, [5]float64{1, 1, 1, 1, 1}),
	}

	first, err := Generate(source, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := Generate(source, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if first != second {
		t.Error("Generate() is not idempotent: two calls on the same rows differ")
	}
}

func TestPromptFilterAndMapping(t *testing.T) {
	source := sliceSource{
		makeRow("GENAI_SHARED_AZURE_OPENAI_O3", "current_user_template.txt", 0.0, [5]float64{1, 1, 1, 1, 1}),
		makeRow("GENAI_SHARED_AZURE_OPENAI_O3", "experimental_template.txt", 0.0, [5]float64{1, 1, 1, 1, 1}),
	}

	document, err := Generate(source, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := dataLines(t, document)
	if len(lines) != 1 {
		t.Fatalf("got %d data rows, wanted 1 (unrecognized prompt filtered):\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "O3 & P1 & ") {
		t.Errorf("row = %q, wanted prompt mapped to P1", lines[0])
	}
	if strings.Contains(document, "experimental_template") {
		t.Error("unrecognized prompt leaked into the document")
	}
}

func TestSortOrder(t *testing.T) {
	// Raw identifiers A and B have no curated label, so they sort as
	// themselves. Expected order: the two A rows by ascending temperature,
	// then B.
	source := sliceSource{
		makeRow("B", "previous_user_template.txt", 0.5, [5]float64{1, 1, 1, 1, 1}),
		makeRow("A", "current_user_template.txt", 0.0, [5]float64{1, 1, 1, 1, 1}),
		makeRow("A", "current_user_template.txt", 0.7, [5]float64{1, 1, 1, 1, 1}),
	}

	document, err := Generate(source, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := dataLines(t, document)
	want := []string{"A & P1 & 0.0", "A & P1 & 0.7", "B & P2 & 0.5"}
	if len(lines) != len(want) {
		t.Fatalf("got %d data rows, wanted %d", len(lines), len(want))
	}
	for i, prefix := range want {
		if !strings.HasPrefix(lines[i], prefix+" & ") {
			t.Errorf("row %d = %q, wanted prefix %q", i, lines[i], prefix)
		}
	}
}

func TestSortMissingTemperatureLast(t *testing.T) {
	source := sliceSource{
		makeRow("A", "current_user_template.txt", math.NaN(), [5]float64{1, 1, 1, 1, 1}),
		makeRow("A", "current_user_template.txt", 0.9, [5]float64{1, 1, 1, 1, 1}),
	}

	document, err := Generate(source, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := dataLines(t, document)
	if len(lines) != 2 {
		t.Fatalf("got %d data rows, wanted 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "A & P1 & 0.9 & ") {
		t.Errorf("row 0 = %q, wanted the 0.9 row first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "A & P1 & - & ") {
		t.Errorf("row 1 = %q, wanted missing temperature last with a dash", lines[1])
	}
}

func TestTotalDerivation(t *testing.T) {
	source := sliceSource{
		makeRow("A", "current_user_template.txt", 0.0, [5]float64{0.80, 0.70, 0.60, 0.90, 0.50}),
	}

	document, err := Generate(source, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := dataLines(t, document)
	want := `A & P1 & 0.0 & 0.80 & 0.70 & 0.60 & 0.90 & 0.50 & 3.50 & 0.80 & 0.70 & 0.60 & 0.90 & 0.50 & 0.80 & 0.70 & 0.60 & 0.90 & 0.50 \\`
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("row = %q, wanted %q", lines[0], want)
	}
}

func TestLabelFallbackAndEscaping(t *testing.T) {
	source := sliceSource{
		makeRow("MY_CUSTOM_MODEL", "current_user_template.txt", 0.0, [5]float64{1, 1, 1, 1, 1}),
	}

	document, err := Generate(source, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	lines := dataLines(t, document)
	if !strings.HasPrefix(lines[0], `MY\_CUSTOM\_MODEL & P1 & `) {
		t.Errorf("row = %q, wanted raw identifier with escaped underscores", lines[0])
	}
}

func TestPaginationFragments(t *testing.T) {
	document, err := Generate(sliceSource{}, FormatLaTeX)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, fragment := range []string{
		`\endfirsthead`,
		`\endhead`,
		`\endfoot`,
		`\endlastfoot`,
		`\multicolumn{19}{c}{\tablename\ \thetable{} -- continued from previous page} \\`,
		`\multicolumn{19}{r}{Continued on next page} \\`,
		`\begin{longtable}{|l|c|c|ccccc|c|ccccc|ccccc|}`,
		`\textbf{AR} & \textbf{C} & \textbf{F} & \textbf{H} & \textbf{SIA}`,
		`\caption{DeepEval Generation Quality Benchmark Results (Reordered)} \\`,
		`\end{landscape}`,
	} {
		if !strings.Contains(document, fragment) {
			t.Errorf("document missing fragment %q", fragment)
		}
	}
}

func TestGenerateSourceFailure(t *testing.T) {
	if _, err := Generate(failingSource{}, FormatLaTeX); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("Generate() error = %v, wanted ErrSourceUnavailable", err)
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	if _, err := Generate(sliceSource{}, Format("pdf")); err == nil {
		t.Error("Generate() error = nil for unknown format, wanted error")
	}
}

func TestWriteSinkFailure(t *testing.T) {
	source := sliceSource{
		makeRow("A", "current_user_template.txt", 0.0, [5]float64{1, 1, 1, 1, 1}),
	}

	document, err := Write(source, failingSink{}, FormatLaTeX)
	if !errors.Is(err, ErrSinkWriteFailed) {
		t.Errorf("Write() error = %v, wanted ErrSinkWriteFailed", err)
	}
	if document == "" {
		t.Error("Write() dropped the generated document on sink failure, wanted it returned")
	}
}

func TestWriteDeliversDocument(t *testing.T) {
	source := sliceSource{
		makeRow("A", "current_user_template.txt", 0.0, [5]float64{1, 1, 1, 1, 1}),
	}

	sink := &memorySink{}
	document, err := Write(source, sink, FormatLaTeX)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if sink.document != document {
		t.Error("sink received a different document than Write() returned")
	}
}

func TestMarkdownSummary(t *testing.T) {
	source := sliceSource{
		makeRow("GENAI_SHARED_AZURE_OPENAI_O3", "current_user_template.txt", 0.7, [5]float64{0.80, 0.70, 0.60, 0.90, 0.50}),
	}

	document, err := Generate(source, FormatMarkdown)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, want := range []string{"Model", "AR", "SIA", "Total", "O3", "P1", "0.7", "3.50"} {
		if !strings.Contains(document, want) {
			t.Errorf("markdown summary missing %q:\n%s", want, document)
		}
	}
	if strings.Contains(document, "longtable") {
		t.Error("markdown summary contains LaTeX fragments")
	}
}

func TestFileSourceMissing(t *testing.T) {
	source := FileSource{Path: filepath.Join(t.TempDir(), "absent.csv")}
	if _, err := source.Rows(); !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("Rows() error = %v, wanted ErrSourceUnavailable", err)
	}
}
