package evaluate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/daepyo/internal/judge"
	"github.com/abhisek/daepyo/internal/lesson"
)

// FallbackNotice is shown when the remote judge could not be used for a
// call and the local rule graded it instead.
const FallbackNotice = "AI 피드백을 가져오지 못해 기본 채점으로 확인했어요."

// Service grades answers. A nil judge means fully local operation.
type Service struct {
	judge *judge.Judge
}

// NewService creates an evaluation service. If j is nil, only the local
// keyword rules are used.
func NewService(j *judge.Judge) *Service {
	return &Service{judge: j}
}

// Remote reports whether a remote judge is configured.
func (s *Service) Remote() bool {
	return s.judge != nil
}

// Scenario grades a scenario answer. A judge failure affects this call only:
// the local rule is applied and a notice attached.
func (s *Service) Scenario(ctx context.Context, sc lesson.Scenario, label lesson.Stat, reason string) Result {
	local := Result{Verdict: ScenarioLocal(sc, label, reason), Source: SourceLocal}
	if s.judge == nil {
		return local
	}

	j, err := s.judge.JudgeScenario(ctx, sc, label, reason)
	if err != nil {
		slog.Warn("evaluate: remote judge failed, using local rule",
			"interaction", sc.InteractionID(), "error", err)
		local.Notice = FallbackNotice
		return local
	}
	if j.Unrecognized {
		slog.Info("evaluate: judge reply had no marker", "interaction", sc.InteractionID())
	}

	return Result{
		Verdict:      scenarioVerdict(j.Level),
		Headline:     j.Marker,
		Message:      j.Body,
		Source:       SourceRemote,
		Unrecognized: j.Unrecognized,
	}
}

// Example grades an example of when stat is the right measure.
func (s *Service) Example(ctx context.Context, stat lesson.Stat, text string) (Result, error) {
	rule, err := lesson.RuleFor(stat)
	if err != nil {
		return Result{}, fmt.Errorf("example rule: %w", err)
	}

	local := Result{Verdict: ExampleLocal(rule, text), Source: SourceLocal}
	if s.judge == nil {
		return local, nil
	}

	j, err := s.judge.JudgeExample(ctx, stat, text)
	if err != nil {
		slog.Warn("evaluate: remote judge failed, using local rule",
			"interaction", lesson.ExampleInteractionID(stat), "error", err)
		local.Notice = FallbackNotice
		return local, nil
	}
	if j.Unrecognized {
		slog.Info("evaluate: judge reply had no marker", "interaction", lesson.ExampleInteractionID(stat))
	}

	return Result{
		Verdict:      exampleVerdict(j.Level),
		Headline:     j.Marker,
		Message:      j.Body,
		Source:       SourceRemote,
		Unrecognized: j.Unrecognized,
	}, nil
}
