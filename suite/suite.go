/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package suite builds the fixed evaluation suite used to benchmark model
// responses: five checks with per-check configurable pass thresholds, graded
// by an external grading backend.
package suite

import (
	"fmt"

	"github.com/evalsmith/benchtab/grader"
)

// Canonical check names, in suite order. These are the keys a PerCheck
// threshold policy is consulted with.
const (
	CheckCorrectness     = "Correctness"
	CheckSpecificInfo    = "Specific Information Accuracy"
	CheckAnswerRelevancy = "Answer Relevancy"
	CheckFaithfulness    = "Faithfulness"
	CheckHallucination   = "Hallucination"
)

// definition is the static configuration of one check. The per-check default
// threshold is explicit data here rather than a shared fallback: rubric and
// relevancy checks default to 0.9 while hallucination defaults to 0.8.
type definition struct {
	name      string
	threshold float64
	fields    []CaseField
	rubric    *grader.Rubric
	kind      grader.Kind
}

// definitions lists the five checks of the suite in fixed order.
var definitions = []definition{{
	name:      CheckCorrectness,
	threshold: 0.9,
	fields:    []CaseField{FieldInput, FieldActualOutput, FieldExpectedOutput},
	rubric: &grader.Rubric{
		Name:     CheckCorrectness,
		Criteria: "Determine whether the actual output is factually correct based on the expected output.",
		Steps: []string{
			"Check whether the actual output is either empty or explicitly states that the question cannot be answered with the given context. If the expected output also states that the question cannot be answered, assign the maximum score and skip further steps.",
			"If the expected output provides an answer, verify whether the facts in 'actual output' contradict any facts in 'expected output'.",
			"Heavily penalize omission of key details present in the expected output.",
			"Vague language or contradicting OPINIONS are acceptable and should not be penalized.",
			"If the expected output states that the question cannot be answered with the given context but the actual output attempts to provide an answer, apply a heavy penalty.",
		},
	},
}, {
	name:      CheckSpecificInfo,
	threshold: 0.9,
	fields:    []CaseField{FieldInput, FieldActualOutput, FieldExpectedOutput, FieldContext},
	rubric: &grader.Rubric{
		Name: CheckSpecificInfo,
		Criteria: "Evaluate whether the actual output appropriately responds to the input question given the context, " +
			"without introducing specific information (e.g., names, places, numbers) that is not explicitly provided in the context. " +
			"Use the expected output to determine whether the model should answer the question or state that it cannot answer.",
		Steps: []string{
			"Carefully read the context and identify all specific information (such as names, places, numbers) explicitly mentioned.",
			"Review the expected output to understand whether the question is answerable given the context.",
			"Analyze the actual output to see if it includes specific information not present in the context.",
			"If the expected output indicates that the question cannot be answered:",
			"    - If the actual output correctly states that it cannot answer the question with the given context or provides an appropriate non-informative response, assign the highest possible score.",
			"    - If the actual output attempts to answer the question by introducing information not present in the context, assign the lowest possible score.",
			"If the expected output indicates that the question can be answered:",
			"    - If the actual output answers the question using only the information present in the context without adding any inferred or external information, assign a high score based on the answer's accuracy.",
			"    - If the actual output includes any specific information (names, places, numbers) that is not present in the context, assign a lower score accordingly.",
			"Provide a final score based on the above criteria, ensuring that the evaluation is consistent with the expected output.",
		},
	},
}, {
	name:      CheckAnswerRelevancy,
	threshold: 0.9,
	fields:    []CaseField{FieldInput, FieldActualOutput},
	kind:      grader.KindAnswerRelevancy,
}, {
	name:      CheckFaithfulness,
	threshold: 0.9,
	fields:    []CaseField{FieldInput, FieldActualOutput, FieldContext},
	kind:      grader.KindFaithfulness,
}, {
	name:      CheckHallucination,
	threshold: 0.8,
	fields:    []CaseField{FieldInput, FieldActualOutput, FieldContext},
	kind:      grader.KindHallucination,
}}

// Build constructs the five-check evaluation suite in fixed order:
// Correctness, Specific Information Accuracy, Answer Relevancy, Faithfulness,
// Hallucination. Construction is total and side-effect-free; no grading calls
// happen here. The backend may be nil, in which case the checks are pure
// configuration and Evaluate will refuse to run.
//
// NOTE: the Hallucination check's underlying scores are inverted relative to
// the other checks (lower raw scores mean better performance). The suite does
// not flip the score. Callers wanting pass/fail semantics consistent with the
// other four checks must pass an already-inverted threshold, i.e.
// 1 - desired_cutoff: to pass only cases with hallucination below 0.2, set
// the Hallucination threshold to 0.8.
func Build(backend grader.Interface, policy ThresholdPolicy, includeReason bool) ([]Check, error) {
	checks := make([]Check, 0, len(definitions))
	for _, d := range definitions {
		threshold := policy.resolve(d.name, d.threshold)
		if threshold < 0 || threshold > 1 {
			return nil, fmt.Errorf("%w: %s resolved to %v", ErrInvalidThreshold, d.name, threshold)
		}
		checks = append(checks, Check{
			Name:          d.name,
			Threshold:     threshold,
			Fields:        d.fields,
			Rubric:        d.rubric,
			Kind:          d.kind,
			IncludeReason: includeReason,
			backend:       backend,
		})
	}
	return checks, nil
}
