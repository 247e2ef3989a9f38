package activity

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/screen"
	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/ui/components"
	"github.com/abhisek/daepyo/internal/ui/layout"
)

type exampleFocus int

const (
	focusText exampleFocus = iota
	focusCheck
	exampleFocusCount
)

// ExampleScreen asks for a situation where a statistic is the right choice.
type ExampleScreen struct {
	form
	stat  lesson.Stat
	text  components.TextArea
	focus exampleFocus
}

var _ screen.Screen = (*ExampleScreen)(nil)
var _ screen.KeyHintProvider = (*ExampleScreen)(nil)
var _ screen.InputCapturer = (*ExampleScreen)(nil)

// NewExample creates the screen for stat.
func NewExample(svc *session.Service, sess *session.Session, stat lesson.Stat) *ExampleScreen {
	return &ExampleScreen{
		form: newForm(svc, sess),
		stat: stat,
		text: components.NewTextArea(
			fmt.Sprintf("예: %s을 사용하면 좋은 상황을 설명해보세요...", stat.Name()), 60, 5),
	}
}

func (s *ExampleScreen) Init() tea.Cmd {
	return s.text.Focus()
}

func (s *ExampleScreen) Title() string {
	return fmt.Sprintf("%s %s 예시", s.stat.Emoji(), s.stat.Name())
}

func (s *ExampleScreen) CapturingInput() bool {
	return s.judging
}

func (s *ExampleScreen) KeyHints() []layout.KeyHint {
	if s.judging {
		return []layout.KeyHint{{Key: "", Description: "확인 중..."}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "다음 칸"},
		{Key: "Ctrl+S", Description: "확인하기"},
		{Key: "Esc", Description: "홈"},
	}
}

func (s *ExampleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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

	if s.focus == focusText {
		var cmd tea.Cmd
		s.text, cmd = s.text.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExampleScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		return s, s.setFocus((s.focus + 1) % exampleFocusCount)
	case "ctrl+s":
		return s, s.submit()
	case "enter":
		if s.focus == focusCheck {
			return s, s.submit()
		}
	}

	if s.focus == focusText {
		var cmd tea.Cmd
		s.text, cmd = s.text.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExampleScreen) setFocus(f exampleFocus) tea.Cmd {
	s.focus = f
	if f == focusText {
		return s.text.Focus()
	}
	s.text.Blur()
	return nil
}

func (s *ExampleScreen) submit() tea.Cmd {
	sub := session.ExampleSubmission{
		Stat: string(s.stat),
		Text: s.text.Value(),
	}
	return s.start(func(ctx context.Context) (*session.Outcome, error) {
		return s.svc.CheckExample(ctx, s.sess, sub)
	})
}
