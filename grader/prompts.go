/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package grader

import (
	"encoding/xml"

	"github.com/evalsmith/benchtab/promptbuilder"
)

// rubricPrompt grades a test case by following an explicit list of
// evaluation steps.
var rubricPrompt = promptbuilder.MustNew(`<task>
You are grading a model response against an evaluation rubric.
Score the response by following the evaluation steps exactly, in order.
</task>

{{criteria}}

<evaluation_steps>
{{steps}}
</evaluation_steps>

{{test_case}}

<instructions>
1. Work through the evaluation steps one at a time, in the order given.
2. If a step tells you to assign a score and stop, do so and skip all remaining steps.
3. Base your judgment only on the evaluation steps; do not invent additional criteria.
4. Provide a score from 0.0 (complete failure) to 1.0 (fully satisfies the rubric).
</instructions>

<output_format>
Return your grade as a JSON object with this structure:
{
  "score": 0.0-1.0,
  "reason": "explanation of the score"
}
</output_format>

Respond with only the JSON object, no additional text.`)

// classifierPrompt grades a test case against one of the built-in
// classifier evaluations.
var classifierPrompt = promptbuilder.MustNew(`<task>
You are grading a model response for a single quality dimension.
</task>

{{dimension}}

{{test_case}}

<instructions>
1. Evaluate the response SOLELY for the dimension described above - ignore all other qualities.
2. Provide a score from 0.0 to 1.0 according to the dimension's own scoring direction.
</instructions>

<output_format>
Return your grade as a JSON object with this structure:
{
  "score": 0.0-1.0,
  "reason": "explanation of the score"
}
</output_format>

Respond with only the JSON object, no additional text.`)

// kindInstructions maps each classifier kind to its grading instruction.
var kindInstructions = map[Kind]string{
	KindAnswerRelevancy: "Determine how relevant the actual output is to the input. " +
		"Score 1.0 when every statement in the actual output directly addresses the input, " +
		"and lower the score for each irrelevant or off-topic statement.",
	KindFaithfulness: "Determine whether the claims in the actual output are faithful to the provided context. " +
		"Score 1.0 when no claim contradicts the context, and lower the score for each contradiction.",
	KindHallucination: "Determine how much of the actual output is unsupported by the provided context. " +
		"Score 0.0 when the actual output agrees with all provided context, and raise the score toward 1.0 " +
		"for each contradicted or fabricated statement. Note the inverted direction: lower scores mean " +
		"better performance for this dimension.",
}

// testCase is the XML shape of a test case bound into grading prompts.
type testCase struct {
	XMLName        xml.Name `xml:"test_case"`
	Input          string   `xml:"input,omitempty"`
	ActualOutput   string   `xml:"actual_output"`
	ExpectedOutput string   `xml:"expected_output,omitempty"`
	Context        []string `xml:"context>passage,omitempty"`
}

// Bind binds the request's fields into the matching prompt template and
// returns the fully bound prompt.
func (r *Request) Bind() (*promptbuilder.Prompt, error) {
	tc := testCase{
		Input:          r.Input,
		ActualOutput:   r.ActualOutput,
		ExpectedOutput: r.ExpectedOutput,
		Context:        r.Context,
	}

	if r.Rubric != nil {
		p, err := rubricPrompt.BindXML("criteria", struct {
			XMLName xml.Name `xml:"criteria"`
			Content string   `xml:",chardata"`
		}{Content: r.Rubric.Criteria})
		if err != nil {
			return nil, err
		}
		if p, err = p.BindYAML("steps", r.Rubric.Steps); err != nil {
			return nil, err
		}
		return p.BindXML("test_case", tc)
	}

	p, err := classifierPrompt.BindXML("dimension", struct {
		XMLName xml.Name `xml:"dimension"`
		Name    string   `xml:"name"`
		Content string   `xml:"instruction"`
	}{Name: string(r.Kind), Content: kindInstructions[r.Kind]})
	if err != nil {
		return nil, err
	}
	return p.BindXML("test_case", tc)
}
