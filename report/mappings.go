/*
Copyright 2026 The Benchtab Authors
SPDX-License-Identifier: Apache-2.0
*/

package report

// promptCodes maps raw prompt identifiers to the short codes shown in the
// table. Rows with prompts outside this mapping are excluded from the report.
var promptCodes = map[string]string{
	"current_user_template.txt":  "P1",
	"previous_user_template.txt": "P2",
}

// modelLabels maps raw configuration identifiers to display names. Unmapped
// identifiers render with the raw identifier as the label; no row is ever
// dropped for lacking an entry here.
var modelLabels = map[string]string{
	"GENAI_SHARED_VERTEXAI_GOOGLE_GEMINI_15_FLASH":        "Gemini 1.5 Flash",
	"GENAI_SHARED_VERTEXAI_GOOGLE_GEMINI_15_PRO":          "Gemini 1.5 Pro",
	"GENAI_SHARED_VERTEXAI_GOOGLE_GEMINI_2_FLASH":         "Gemini 2.0 Flash",
	"GENAI_SHARED_VERTEXAI_GOOGLE_GEMINI_2_FLASH_LITE":    "Gemini 2.0 Flash Lite",
	"GENAI_SHARED_VERTEXAI_GOOGLE_GEMINI_25_PRO":          "Gemini 2.5 Pro",
	"GENAI_SHARED_VERTEXAI_GOOGLE_GEMINI_25_FLASH":        "Gemini 2.5 Flash",
	"GENAI_SHARED_VERTEXAI_ANTHROPIC_CLAUDE_35_SONNET":    "Claude 3.5 Sonnet",
	"GENAI_SHARED_VERTEXAI_ANTHROPIC_CLAUDE_35_SONNET_V2": "Claude 3.5 Sonnet v2",
	"GENAI_SHARED_VERTEXAI_ANTHROPIC_CLAUDE_37_SONNET":    "Claude 3.7 Sonnet",
	"GENAI_SHARED_VERTEXAI_ANTHROPIC_CLAUDE_4_SONNET":     "Claude 4.0 Sonnet",
	"GENAI_SHARED_BEDROCK_ANTHROPIC_CLAUDE_3_HAIKU":       "Claude 3 Haiku",
	"GENAI_SHARED_AZURE_OPENAI_GPT_4_OMNI":                "GPT-4 Omni",
	"GENAI_SHARED_AZURE_OPENAI_GPT_4_OMNI_2024_20_11":     "GPT-4 Omni (2024-11-20)",
	"GENAI_SHARED_AZURE_OPENAI_GPT_4_OMNI_MINI":           "GPT-4 Omni Mini",
	"GENAI_SHARED_AZURE_OPENAI_GPT_41_NANO":               "GPT-4.1 Nano",
	"GENAI_SHARED_AZURE_OPENAI_GPT_41":                    "GPT-4.1",
	"GENAI_SHARED_AZURE_OPENAI_O1_MINI":                   "O1 Mini",
	"GENAI_SHARED_AZURE_OPENAI_O1":                        "O1",
	"GENAI_SHARED_AZURE_OPENAI_O3":                        "O3",
	"GENAI_SHARED_AZURE_OPENAI_O3_MINI":                   "O3 Mini",
	"GENAI_SHARED_AZURE_OPENAI_O4_MINI":                   "O4 Mini",
	"GENAI_SHARED_AZURE_OPENAI_TEXT_ADA_002":              "Ada-002",
	"GENAI_SHARED_AZURE_OPENAI_TEXT_EMBEDDING_003_LARGE":  "Embedding-003 Large",
	"GENAI_SHARED_BEDROCK_AMAZON_TITAN_EMBED_TEXT_V1":     "Titan Embed v1",
	"GENAI_SHARED_VERTEXAI_GOOGLE_TEXTEMBEDDING_GECKO":    "Gecko",
}

// metrics lists the five metrics in table column order with the abbreviation
// shown in the per-cluster header row.
var metrics = []struct {
	name string
	abbr string
}{
	{"Answer Relevancy", "AR"},
	{"Correctness", "C"},
	{"Faithfulness", "F"},
	{"Hallucination", "H"},
	{"Specific Information Accuracy", "SIA"},
}

// clusters names the three score scopes each metric is reported under, in
// the order their columns appear in the source and in the rendered table.
var clusters = []string{"Avg", "GPT-4o", "Sonnet3.5"}
