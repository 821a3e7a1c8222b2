/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"context"
	"errors"
	"fmt"
)

// Kind identifies a built-in classifier evaluation.
type Kind string

const (
	// KindAnswerRelevancy measures how relevant the actual output is to the input.
	KindAnswerRelevancy Kind = "answer relevancy"
	// KindFaithfulness measures whether the actual output contradicts the context.
	KindFaithfulness Kind = "faithfulness"
	// KindHallucination measures how much of the actual output is unsupported by
	// the context. Scoring is inverted relative to the other kinds: lower raw
	// scores mean better performance. This convention is deliberately preserved;
	// callers wanting pass/fail semantics aligned with the other kinds must
	// invert their cutoff themselves.
	KindHallucination Kind = "hallucination"
)

// Rubric describes a free-text grading rubric with ordered evaluation steps.
type Rubric struct {
	// Name labels the rubric in prompts and logs.
	Name string `json:"name"`
	// Criteria is the overall grading instruction.
	Criteria string `json:"criteria"`
	// Steps are followed in order by the grading model.
	Steps []string `json:"steps"`
}

// Request carries one test case and the criteria to grade it against.
// Exactly one of Rubric or Kind must be set.
type Request struct {
	// Input is the question or task given to the model under test.
	Input string `json:"input"`
	// ActualOutput is the response to grade.
	ActualOutput string `json:"actual_output"`
	// ExpectedOutput is the reference answer, when the criteria use one.
	ExpectedOutput string `json:"expected_output,omitempty"`
	// Context holds the grounding passages available to the model under test.
	Context []string `json:"context,omitempty"`

	// Rubric selects rubric-based grading.
	Rubric *Rubric `json:"rubric,omitempty"`
	// Kind selects a built-in classifier evaluation.
	Kind Kind `json:"kind,omitempty"`

	// IncludeReason requests a textual justification alongside the score.
	IncludeReason bool `json:"include_reason,omitempty"`
}

// Score is the grading outcome.
type Score struct {
	// Value is the score in [0, 1].
	Value float64 `json:"score"`
	// Reason explains the score. Empty unless the request asked for reasons.
	Reason string `json:"reason,omitempty"`
}

// Interface is the contract for grading backend implementations.
type Interface interface {
	// Grade scores a test case against the request's criteria.
	Grade(ctx context.Context, request *Request) (*Score, error)
}

// validate checks that a request is gradable before any model call is made.
func (r *Request) validate() error {
	if r.ActualOutput == "" {
		return errors.New("actual_output is required")
	}
	switch {
	case r.Rubric != nil && r.Kind != "":
		return errors.New("rubric and kind are mutually exclusive")
	case r.Rubric != nil:
		if r.Rubric.Criteria == "" {
			return errors.New("rubric criteria is required")
		}
	case r.Kind != "":
		if _, ok := kindInstructions[r.Kind]; !ok {
			return fmt.Errorf("unknown classifier kind: %q", r.Kind)
		}
	default:
		return errors.New("either rubric or kind is required")
	}
	return nil
}
