package judge

import "github.com/abhisek/daepyo/internal/llm"

var scenarioVerdictLevels = map[string]Level{
	"correct":           LevelHigh,
	"partially-correct": LevelPartial,
	"incorrect":         LevelLow,
}

var exampleVerdictLevels = map[string]Level{
	"appropriate":           LevelHigh,
	"partially-appropriate": LevelPartial,
	"inappropriate":         LevelLow,
}

// ScenarioSchema defines the structured reply for scenario grading.
var ScenarioSchema = verdictSchema("scenario-verdict",
	"Grade of a student's chosen measure of central tendency and reason",
	[]any{"correct", "partially-correct", "incorrect"})

// ExampleSchema defines the structured reply for example grading.
var ExampleSchema = verdictSchema("example-verdict",
	"Grade of a student's example of when a measure of central tendency fits",
	[]any{"appropriate", "partially-appropriate", "inappropriate"})

func verdictSchema(name, description string, verdicts []any) *llm.Schema {
	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"verdict": map[string]any{
					"type":        "string",
					"enum":        verdicts,
					"description": "The grade",
				},
				"feedback": map[string]any{
					"type":        "string",
					"description": "One to three friendly sentences in Korean addressed to the student",
				},
			},
			"required":             []any{"verdict", "feedback"},
			"additionalProperties": false,
		},
	}
}
