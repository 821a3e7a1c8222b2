/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"google.golang.org/genai"

	"github.com/evalsmith/benchtab/metrics"
)

// scoreSchema forces structured JSON output so grades never need lenient
// parsing on the Gemini path.
var scoreSchema = &genai.Schema{
	Type: "object",
	Properties: map[string]*genai.Schema{
		"score": {
			Type:        "number",
			Description: "The grading score between 0.0 and 1.0",
		},
		"reason": {
			Type:        "string",
			Description: "Explanation of the score",
		},
	},
	Required: []string{"score", "reason"},
}

// gemini implements Interface using Google Gemini via Vertex AI.
type gemini struct {
	client         *genai.Client
	model          string
	gradingMetrics *metrics.Grading
}

// NewGemini creates a Gemini grading backend. Construction performs no model
// calls beyond client credential setup.
func NewGemini(ctx context.Context, projectID, region, model string) (Interface, error) {
	if model == "" {
		return nil, errors.New("model is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Google AI client: %w", err)
	}
	return &gemini{
		client:         client,
		model:          model,
		gradingMetrics: metrics.NewGrading(meterName),
	}, nil
}

// Grade implements Interface.
func (g *gemini) Grade(ctx context.Context, request *Request) (*Score, error) {
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

	log.With("model", g.model).
		With("prompt_length", len(prompt)).
		Info("Requesting Gemini grade")
	g.gradingMetrics.RecordCall(ctx, g.model)

	response, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.0),
		MaxOutputTokens:  gradeMaxTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   scoreSchema,
	})
	if err != nil {
		g.gradingMetrics.RecordFailure(ctx, g.model)
		return nil, fmt.Errorf("calling Gemini: %w", err)
	}

	text := response.Text()
	if text == "" {
		g.gradingMetrics.RecordFailure(ctx, g.model)
		return nil, errors.New("no text content in Gemini's response")
	}

	score, err := parseScore(text)
	if err != nil {
		g.gradingMetrics.RecordFailure(ctx, g.model)
		return nil, err
	}
	g.gradingMetrics.RecordScore(ctx, g.model, score.Value)

	if !request.IncludeReason {
		score.Reason = ""
	}
	return score, nil
}
