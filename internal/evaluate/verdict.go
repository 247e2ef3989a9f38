// Package evaluate grades scenario answers and statistic examples, asking
// the remote judge when one is configured and falling back to the local
// keyword rules otherwise.
package evaluate

import (
	"github.com/abhisek/daepyo/internal/judge"
	"github.com/abhisek/daepyo/internal/keyword"
	"github.com/abhisek/daepyo/internal/lesson"
)

// Verdict is the outcome of one evaluation.
type Verdict string

// Scenario verdicts.
const (
	VerdictCorrect          Verdict = "correct"
	VerdictPartiallyCorrect Verdict = "partially-correct"
	VerdictIncorrect        Verdict = "incorrect"
)

// Example verdicts.
const (
	VerdictAppropriate          Verdict = "appropriate"
	VerdictPartiallyAppropriate Verdict = "partially-appropriate"
	VerdictInappropriate        Verdict = "inappropriate"
)

// Source records who produced a Result.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Result is a graded answer.
type Result struct {
	Verdict Verdict `json:"verdict"`

	// Headline and Message carry the judge's marker and feedback text.
	// Both are empty for local results; callers render canned text.
	Headline string `json:"headline,omitempty"`
	Message  string `json:"message,omitempty"`

	Source Source `json:"source"`

	// Notice is a soft, user-facing note set when the remote judge failed
	// and the local rule was used instead.
	Notice string `json:"notice,omitempty"`

	// Unrecognized is set when the judge replied without any known marker.
	Unrecognized bool `json:"unrecognized,omitempty"`
}

// ScenarioLocal grades a scenario answer with the keyword rule: the label
// must be in the answer key, and the reason must mention a key term for
// full marks.
func ScenarioLocal(sc lesson.Scenario, label lesson.Stat, reason string) Verdict {
	if !sc.AnswerKey.Accepts(label) {
		return VerdictIncorrect
	}
	if keyword.ContainsAny(reason, sc.AnswerKey.Keywords) {
		return VerdictCorrect
	}
	return VerdictPartiallyCorrect
}

// ExampleLocal grades an example with the statistic's good/bad keyword
// sets. Without a good keyword the example is inappropriate whatever else
// it says.
func ExampleLocal(rule lesson.ExampleRule, text string) Verdict {
	if !keyword.ContainsAny(text, rule.Good) {
		return VerdictInappropriate
	}
	if keyword.ContainsAny(text, rule.Bad) {
		return VerdictPartiallyAppropriate
	}
	return VerdictAppropriate
}

func scenarioVerdict(l judge.Level) Verdict {
	switch l {
	case judge.LevelHigh:
		return VerdictCorrect
	case judge.LevelPartial:
		return VerdictPartiallyCorrect
	default:
		return VerdictIncorrect
	}
}

func exampleVerdict(l judge.Level) Verdict {
	switch l {
	case judge.LevelHigh:
		return VerdictAppropriate
	case judge.LevelPartial:
		return VerdictPartiallyAppropriate
	default:
		return VerdictInappropriate
	}
}
