/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/evalsmith/benchtab/grader"
)

// CaseField identifies a test case field a check inspects.
type CaseField string

const (
	// FieldInput is the question or task given to the model under test.
	FieldInput CaseField = "input"
	// FieldActualOutput is the response being evaluated.
	FieldActualOutput CaseField = "actual_output"
	// FieldExpectedOutput is the reference answer.
	FieldExpectedOutput CaseField = "expected_output"
	// FieldContext holds the grounding passages available to the model under test.
	FieldContext CaseField = "context"
)

// Case is one test case to run a check against.
type Case struct {
	Input          string
	ActualOutput   string
	ExpectedOutput string
	Context        []string
}

// Check is one configured evaluation rule. Checks are immutable configuration
// objects: constructing them performs no grading calls, and Evaluate is the
// only operation that touches the grading backend.
type Check struct {
	// Name is the check's canonical name, used for threshold lookups.
	Name string
	// Threshold is the pass/fail cutoff in [0, 1]. A case passes when its
	// score is at least the threshold. For the Hallucination check the
	// underlying scores run in the opposite direction (lower is better), and
	// the threshold is compared unflipped; see Build.
	Threshold float64
	// Fields are the test case fields this check inspects.
	Fields []CaseField
	// Rubric is set for rubric-graded checks.
	Rubric *grader.Rubric
	// Kind is set for classifier-based checks.
	Kind grader.Kind
	// IncludeReason requests a textual justification with each result.
	IncludeReason bool

	backend grader.Interface
}

// Result is the outcome of evaluating one case against one check.
type Result struct {
	// Score is the backend's score in [0, 1].
	Score float64
	// Passed reports Score >= Threshold.
	Passed bool
	// Reason explains the score when the check was built with reasons enabled.
	Reason string
}

// Evaluate grades a single case. Only the fields the check declares are
// forwarded to the grading backend.
func (c Check) Evaluate(ctx context.Context, tc Case) (*Result, error) {
	if c.backend == nil {
		return nil, errors.New("check has no grading backend")
	}

	request := &grader.Request{
		ActualOutput:  tc.ActualOutput,
		Rubric:        c.Rubric,
		Kind:          c.Kind,
		IncludeReason: c.IncludeReason,
	}
	if slices.Contains(c.Fields, FieldInput) {
		request.Input = tc.Input
	}
	if slices.Contains(c.Fields, FieldExpectedOutput) {
		request.ExpectedOutput = tc.ExpectedOutput
	}
	if slices.Contains(c.Fields, FieldContext) {
		request.Context = tc.Context
	}

	score, err := c.backend.Grade(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("grading %s: %w", c.Name, err)
	}

	return &Result{
		Score:  score.Value,
		Passed: score.Value >= c.Threshold,
		Reason: score.Reason,
	}, nil
}
