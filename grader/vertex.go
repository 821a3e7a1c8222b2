/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"fmt"
	"strings"
)

// NewVertex creates a grading backend by delegating to the appropriate
// implementation based on the model name. Claude models use the Anthropic
// SDK, Gemini models use Google's Generative AI SDK.
func NewVertex(ctx context.Context, projectID, region, modelName string) (Interface, error) {
	modelLower := strings.ToLower(modelName)

	if strings.HasPrefix(modelLower, "claude-") {
		return NewClaude(ctx, projectID, region, modelName)
	}
	if strings.HasPrefix(modelLower, "gemini-") {
		return NewGemini(ctx, projectID, region, modelName)
	}

	return nil, fmt.Errorf("unsupported model: %s (expected claude-* or gemini-*)", modelName)
}
