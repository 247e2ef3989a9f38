// Package judge asks a hosted chat model to grade a student's answer and
// turns its free-text reply into a grade level.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/llm"
)

// Level is the grade carried by a judge reply, independent of whether the
// reply was about a scenario or an example.
type Level string

const (
	LevelHigh    Level = "high"
	LevelPartial Level = "partial"
	LevelLow     Level = "low"
)

// Config holds the generation settings sent with every judge request.
type Config struct {
	ScenarioMaxTokens int
	ExampleMaxTokens  int
	Temperature       float64

	// Structured asks for a JSON verdict validated against a schema
	// instead of marker-prefixed prose.
	Structured bool
}

// DefaultConfig returns the classroom defaults.
func DefaultConfig() Config {
	return Config{
		ScenarioMaxTokens: 200,
		ExampleMaxTokens:  150,
		Temperature:       0.7,
	}
}

// Judgement is a parsed judge reply.
type Judgement struct {
	Level Level

	// Marker is the recognised leading phrase, e.g. "✅ 훌륭합니다!".
	// Empty when Unrecognized.
	Marker string

	// Body is the feedback after the marker.
	Body string

	// Text is the full reply as received.
	Text string

	// Unrecognized is set when no marker could be found and Level was
	// forced to LevelLow.
	Unrecognized bool
}

// Judge grades answers through an llm.Provider.
type Judge struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Judge.
func New(provider llm.Provider, cfg Config) *Judge {
	return &Judge{provider: provider, cfg: cfg}
}

// ModelID reports the model behind the judge.
func (j *Judge) ModelID() string {
	return j.provider.ModelID()
}

// JudgeScenario grades the statistic a student picked for a scenario and
// the reason they gave.
func (j *Judge) JudgeScenario(ctx context.Context, sc lesson.Scenario, label lesson.Stat, reason string) (*Judgement, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeScenarioJudge)

	msg, err := buildScenarioMessage(scenarioPromptData{
		Context: sc.Context,
		Label:   label.Name(),
		Reason:  reason,
		Markers: scenarioMarkers,
	}, j.cfg.Structured)
	if err != nil {
		return nil, fmt.Errorf("build scenario prompt: %w", err)
	}

	req := j.request(msg, j.cfg.ScenarioMaxTokens)
	if j.cfg.Structured {
		req.Schema = ScenarioSchema
	}

	resp, err := j.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("scenario judge: %w", err)
	}

	if j.cfg.Structured {
		return parseStructured(resp.Content, scenarioMarkers, scenarioVerdictLevels)
	}
	return parseMarked(resp.Text, scenarioMarkers), nil
}

// JudgeExample grades a student's example of when a statistic fits.
func (j *Judge) JudgeExample(ctx context.Context, stat lesson.Stat, example string) (*Judgement, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExampleJudge)

	msg, err := buildExampleMessage(examplePromptData{
		Stat:    stat.Name(),
		Example: example,
		Rules:   lesson.Rules(),
		Markers: exampleMarkers,
	}, j.cfg.Structured)
	if err != nil {
		return nil, fmt.Errorf("build example prompt: %w", err)
	}

	req := j.request(msg, j.cfg.ExampleMaxTokens)
	if j.cfg.Structured {
		req.Schema = ExampleSchema
	}

	resp, err := j.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("example judge: %w", err)
	}

	if j.cfg.Structured {
		return parseStructured(resp.Content, exampleMarkers, exampleVerdictLevels)
	}
	return parseMarked(resp.Text, exampleMarkers), nil
}

func (j *Judge) request(userMsg string, maxTokens int) llm.Request {
	return llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   maxTokens,
		Temperature: j.cfg.Temperature,
	}
}

// marker is a phrase the model is told to open its reply with.
type marker struct {
	Text  string
	Level Level
	Usage string // shown in the prompt next to the phrase
}

var scenarioMarkers = []marker{
	{Text: "✅ 훌륭합니다!", Level: LevelHigh, Usage: "정답인 경우"},
	{Text: "💭 좋은 시도입니다!", Level: LevelPartial, Usage: "부분정답인 경우"},
	{Text: "🤔 다시 생각해보세요!", Level: LevelLow, Usage: "오답인 경우"},
}

var exampleMarkers = []marker{
	{Text: "✅ 훌륭합니다!", Level: LevelHigh, Usage: "적절한 경우"},
	{Text: "👍 좋습니다!", Level: LevelPartial, Usage: "부분적절한 경우"},
	{Text: "💡 다시 생각해보세요!", Level: LevelLow, Usage: "부적절한 경우"},
}

// parseMarked finds the outcome marker in a prose reply. A reply that opens
// with a marker uses it; otherwise the earliest marker anywhere in the text
// wins. With no marker at all the reply is graded LevelLow and flagged.
func parseMarked(text string, markers []marker) *Judgement {
	trimmed := strings.TrimSpace(text)
	j := &Judgement{Text: text}

	for _, m := range markers {
		if strings.HasPrefix(trimmed, m.Text) {
			j.Level = m.Level
			j.Marker = m.Text
			j.Body = strings.TrimSpace(strings.TrimPrefix(trimmed, m.Text))
			return j
		}
	}

	best := -1
	for _, m := range markers {
		if i := strings.Index(trimmed, m.Text); i >= 0 && (best < 0 || i < best) {
			best = i
			j.Level = m.Level
			j.Marker = m.Text
		}
	}
	if best >= 0 {
		rest := trimmed[:best] + trimmed[best+len(j.Marker):]
		j.Body = strings.TrimSpace(rest)
		return j
	}

	j.Level = LevelLow
	j.Body = trimmed
	j.Unrecognized = true
	return j
}

type structuredReply struct {
	Verdict  string `json:"verdict"`
	Feedback string `json:"feedback"`
}

func parseStructured(raw json.RawMessage, markers []marker, levels map[string]Level) (*Judgement, error) {
	var reply structuredReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, fmt.Errorf("parse structured verdict: %w", err)
	}

	level, ok := levels[reply.Verdict]
	j := &Judgement{
		Level: level,
		Body:  strings.TrimSpace(reply.Feedback),
		Text:  string(raw),
	}
	if !ok {
		j.Level = LevelLow
		j.Unrecognized = true
		return j, nil
	}
	for _, m := range markers {
		if m.Level == level {
			j.Marker = m.Text
			break
		}
	}
	return j, nil
}
