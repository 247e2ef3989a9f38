package activity

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/measures"
	"github.com/abhisek/daepyo/internal/screen"
	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/ui/components"
	"github.com/abhisek/daepyo/internal/ui/layout"
)

type scenarioFocus int

const (
	focusLabel scenarioFocus = iota
	focusReason
	focusSubmit
	scenarioFocusCount
)

// ScenarioScreen shows one dataset and asks which statistic fits best.
type ScenarioScreen struct {
	form
	sc       lesson.Scenario
	measures measures.Summary
	// measuresErr is set when the dataset has no summary to show.
	measuresErr error
	picker      components.StatPicker
	reason      components.TextArea
	focus       scenarioFocus
}

var _ screen.Screen = (*ScenarioScreen)(nil)
var _ screen.KeyHintProvider = (*ScenarioScreen)(nil)
var _ screen.InputCapturer = (*ScenarioScreen)(nil)

// NewScenario creates the screen for sc.
func NewScenario(svc *session.Service, sess *session.Session, sc lesson.Scenario) *ScenarioScreen {
	m, err := measures.Compute(sc.Data)
	if err != nil {
		slog.Error("tui: cannot summarize scenario data", "scenario", sc.ID, "error", err)
	}
	s := &ScenarioScreen{
		form:        newForm(svc, sess),
		sc:          sc,
		measures:    m,
		measuresErr: err,
		picker:      components.NewStatPicker(),
		reason:      components.NewTextArea("왜 이 대푯값이 가장 적절한지 설명해보세요...", 60, 4),
	}
	s.picker.Focused = true
	return s
}

func (s *ScenarioScreen) Init() tea.Cmd {
	return nil
}

func (s *ScenarioScreen) Title() string {
	return s.sc.Title
}

func (s *ScenarioScreen) CapturingInput() bool {
	return s.judging
}

func (s *ScenarioScreen) KeyHints() []layout.KeyHint {
	if s.judging {
		return []layout.KeyHint{{Key: "", Description: "채점 중..."}}
	}
	hints := []layout.KeyHint{{Key: "Tab", Description: "다음 칸"}}
	if s.focus == focusLabel {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "대푯값 선택"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "답변 제출"},
		layout.KeyHint{Key: "Esc", Description: "홈"},
	)
}

func (s *ScenarioScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case judgedMsg:
		s.finish(msg)
		return s, nil

	case spinner.TickMsg:
		return s, s.tick(msg)

	case tea.KeyMsg:
		if s.judging {
			return s, nil
		}
		return s.handleKey(msg)
	}

	if s.focus == focusReason {
		var cmd tea.Cmd
		s.reason, cmd = s.reason.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ScenarioScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % scenarioFocusCount)
	case "shift+tab":
		return s, s.setFocus((s.focus + scenarioFocusCount - 1) % scenarioFocusCount)
	case "ctrl+s":
		return s, s.submit()
	case "enter":
		switch s.focus {
		case focusLabel:
			return s, s.setFocus(focusReason)
		case focusSubmit:
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusLabel:
		s.picker, cmd = s.picker.Update(msg)
	case focusReason:
		s.reason, cmd = s.reason.Update(msg)
	}
	return s, cmd
}

func (s *ScenarioScreen) setFocus(f scenarioFocus) tea.Cmd {
	s.focus = f
	s.picker.Focused = f == focusLabel
	if f == focusReason {
		return s.reason.Focus()
	}
	s.reason.Blur()
	return nil
}

func (s *ScenarioScreen) submit() tea.Cmd {
	sub := session.ScenarioSubmission{
		ScenarioID: s.sc.ID,
		Label:      s.picker.Value(),
		Reason:     s.reason.Value(),
	}
	return s.start(func(ctx context.Context) (*session.Outcome, error) {
		return s.svc.SubmitScenario(ctx, s.sess, sub)
	})
}
