// Package app wires the terminal lesson: the root Bubble Tea model, the
// screen router and the session it reports on.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daepyo/internal/router"
	"github.com/abhisek/daepyo/internal/screen"
	"github.com/abhisek/daepyo/internal/screens/home"
	"github.com/abhisek/daepyo/internal/screens/welcome"
	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    *session.Service
	sess   *session.Session
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the splash screen.
func newAppModel(svc *session.Service, sess *session.Session) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(svc, sess)
	})
	return AppModel{
		router: router.New(splash),
		svc:    svc,
		sess:   sess,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.capturing() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen is busy with input.
func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "종료"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "뒤로"},
			{Key: "Ctrl+C", Description: "종료"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "선택"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.Header{
		Screen:   title,
		Progress: m.sess.Progress.Display(),
		Remote:   m.svc.Remote(),
	}.Render(m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	content := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts a session, runs the terminal lesson until the student quits
// and records the end of the session.
func Run(ctx context.Context, svc *session.Service) error {
	sess := svc.Start(ctx)
	defer svc.End(context.WithoutCancel(ctx), sess)

	p := tea.NewProgram(newAppModel(svc, sess), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running lesson: %w", err)
	}
	return nil
}
