/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseScore extracts the JSON grade from a model response and validates it.
// Models occasionally wrap the JSON in markdown code fences despite being told
// not to, so fences are stripped before unmarshaling.
func parseScore(responseText string) (*Score, error) {
	var score Score
	if err := json.Unmarshal([]byte(extractJSON(responseText)), &score); err != nil {
		return nil, fmt.Errorf("parsing grade from response: %w", err)
	}
	if score.Value < 0 || score.Value > 1 {
		return nil, fmt.Errorf("score %.2f is out of range [0, 1]", score.Value)
	}
	return &score, nil
}

// extractJSON strips markdown code fences from a response, returning the
// trimmed JSON payload.
func extractJSON(responseText string) string {
	text := strings.TrimSpace(responseText)

	// Fenced block on its own lines.
	if start := strings.Index(text, "```json\n"); start != -1 {
		body := text[start+len("```json\n"):]
		if end := strings.Index(body, "```"); end != -1 {
			return strings.TrimSpace(body[:end])
		}
	}

	// Inline fences. These do nothing if the markers aren't there.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
