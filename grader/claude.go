/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/vertex"
	"github.com/chainguard-dev/clog"

	"github.com/evalsmith/benchtab/metrics"
)

// meterName is shared across all grading backends; the model name is a
// dimension on the recorded metrics.
const meterName = "evalsmith.benchtab.grader"

// gradeMaxTokens bounds the grading response; a score and a short reason fit
// comfortably.
const gradeMaxTokens = 1024

// claude implements Interface using Claude via Vertex AI.
type claude struct {
	client         anthropic.Client
	model          string
	gradingMetrics *metrics.Grading
}

// NewClaude creates a Claude grading backend authenticated through Vertex AI.
// Construction performs no model calls.
func NewClaude(ctx context.Context, projectID, region, model string) (Interface, error) {
	if model == "" {
		return nil, errors.New("model is required")
	}
	client := anthropic.NewClient(
		vertex.WithGoogleAuth(ctx, region, projectID),
	)
	return &claude{
		client:         client,
		model:          model,
		gradingMetrics: metrics.NewGrading(meterName),
	}, nil
}

// Grade implements Interface.
func (c *claude) Grade(ctx context.Context, request *Request) (*Score, error) {
	log := clog.FromContext(ctx)

	if err := request.validate(); err != nil {
		return nil, err
	}

	boundPrompt, err := request.Bind()
	if err != nil {
		return nil, fmt.Errorf("binding request to prompt: %w", err)
	}
	prompt, err := boundPrompt.Build()
	if err != nil {
		return nil, fmt.Errorf("building prompt: %w", err)
	}

	log.With("model", c.model).
		With("prompt_length", len(prompt)).
		Info("Requesting Claude grade")
	c.gradingMetrics.RecordCall(ctx, c.model)

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   gradeMaxTokens,
		Temperature: anthropic.Float(0.0),
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(prompt),
			},
		}},
	})
	if err != nil {
		c.gradingMetrics.RecordFailure(ctx, c.model)
		return nil, fmt.Errorf("calling Claude: %w", err)
	}

	var text string
	for _, content := range message.Content {
		if content.Type == "text" {
			text = content.Text
		}
	}
	if text == "" {
		c.gradingMetrics.RecordFailure(ctx, c.model)
		return nil, errors.New("no text content in Claude's response")
	}

	score, err := parseScore(text)
	if err != nil {
		c.gradingMetrics.RecordFailure(ctx, c.model)
		return nil, err
	}
	c.gradingMetrics.RecordScore(ctx, c.model, score.Value)

	if !request.IncludeReason {
		score.Reason = ""
	}
	return score, nil
}
