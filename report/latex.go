/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"math"
	"strings"
)

// headerAbbr is the abbreviated metric header repeated under each cluster.
var headerAbbr = func() string {
	parts := make([]string, len(metrics))
	for i, m := range metrics {
		parts[i] = `\textbf{` + m.abbr + `}`
	}
	return strings.Join(parts, " & ")
}()

// latexPreamble precedes the table. It is identical on every call and is not
// derived from row data.
const latexPreamble = `
% Requires in preamble:
%   \usepackage{lscape,longtable,booktabs,adjustbox}  % adjustbox only if you use method 2
\begin{landscape}
% ==== Method 1: smaller font & tighter columns ====
\small
\setlength{\tabcolsep}{4pt}       % default is ~6pt
\renewcommand{\arraystretch}{0.9}  % tighten row height
\setlength{\LTleft}{0pt}          % left align longtable
\setlength{\LTright}{0pt}         % right align longtable

% ==== Method 2 (optional): force to 90% of width ====
\begin{adjustbox}{width=0.9\textwidth,center}

`

// The longtable pagination contract is four distinct fragments: first-page
// header, continuation header, continuation footer, final footer. LaTeX
// selects among them at its own page breaks; row rendering below is entirely
// independent of pagination. The multicolumn span is 19: three label columns
// plus five averages, the total, and two five-column clusters.

var firstPageHeader = `\begin{longtable}{|l|c|c|ccccc|c|ccccc|ccccc|}
\caption{DeepEval Generation Quality Benchmark Results (Reordered)} \\
\toprule
\textbf{Model} & \textbf{Prompt} & \textbf{Temp} & \multicolumn{5}{c|}{\textbf{Avg. Scores}} & \textbf{Total} & \multicolumn{5}{c|}{\textbf{GPT-4o}} & \multicolumn{5}{c|}{\textbf{Claude 3.5}} \\
 & & & ` + headerAbbr + ` & & ` + headerAbbr + ` & ` + headerAbbr + ` \\
\midrule
\endfirsthead
`

var continuationHeader = `
\multicolumn{19}{c}{\tablename\ \thetable{} -- continued from previous page} \\
\midrule
\textbf{Model} & \textbf{Prompt} & \textbf{Temp} & ` + headerAbbr + ` & & ` + headerAbbr + ` & ` + headerAbbr + ` \\
\midrule
\endhead
`

const continuationFooter = `
\midrule
\multicolumn{19}{r}{Continued on next page} \\
\endfoot
`

const finalFooter = `
\bottomrule
\endlastfoot
`

const latexClosing = `\end{longtable}
\end{adjustbox}      % close Method 2
\end{landscape}
`

// renderLaTeX emits the full document: static preamble, the four pagination
// fragments, one line per entry, and the static closing block.
func renderLaTeX(entries []entry) string {
	var sb strings.Builder
	sb.WriteString(latexPreamble)
	sb.WriteString(firstPageHeader)
	sb.WriteString(continuationHeader)
	sb.WriteString(continuationFooter)
	sb.WriteString(finalFooter)
	for _, e := range entries {
		writeRow(&sb, e)
	}
	sb.WriteString(latexClosing)
	return sb.String()
}

// writeRow emits one data line: label, prompt, temperature, the five averages
// and their total, then the two reference-model clusters. All score cells use
// exactly two decimal places.
func writeRow(sb *strings.Builder, e entry) {
	cells := make([]string, 0, 4+len(clusters)*len(metrics))
	cells = append(cells, escapeLabel(e.label), e.prompt, formatTemperature(e.temperature))
	for ci := range clusters {
		for _, value := range e.scores[ci] {
			cells = append(cells, fmt.Sprintf("%.2f", value))
		}
		if ci == 0 {
			cells = append(cells, fmt.Sprintf("%.2f", e.total))
		}
	}
	sb.WriteString(strings.Join(cells, " & "))
	sb.WriteString(" \\\\\n")
}

// escapeLabel escapes literal underscores for LaTeX. No other character is
// altered.
func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "_", `\_`)
}

// formatTemperature renders one decimal place, or a dash when the source
// value is absent.
func formatTemperature(t float64) string {
	if math.IsNaN(t) {
		return "-"
	}
	return fmt.Sprintf("%.1f", t)
}
