package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/router"
	"github.com/abhisek/daepyo/internal/screen"
	"github.com/abhisek/daepyo/internal/screens/activity"
	"github.com/abhisek/daepyo/internal/screens/summary"
	"github.com/abhisek/daepyo/internal/session"
	"github.com/abhisek/daepyo/internal/ui/components"
	"github.com/abhisek/daepyo/internal/ui/layout"
)

// HomeScreen lists the lesson activities and shows overall progress. It
// pushes the summary screen the first time every activity is complete.
type HomeScreen struct {
	svc        *session.Service
	sess       *session.Session
	menu       components.Menu
	ids        []string // interaction id per activity menu item
	celebrated bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen for sess.
func New(svc *session.Service, sess *session.Session) *HomeScreen {
	h := &HomeScreen{svc: svc, sess: sess}

	var items []components.MenuItem
	for _, sc := range lesson.Scenarios() {
		h.ids = append(h.ids, sc.InteractionID())
		items = append(items, components.MenuItem{
			Label:  "📊 " + sc.Title,
			Action: push(func() screen.Screen { return activity.NewScenario(svc, sess, sc) }),
		})
	}
	for _, st := range lesson.AllStats() {
		h.ids = append(h.ids, lesson.ExampleInteractionID(st))
		items = append(items, components.MenuItem{
			Label:  lesson.InteractionLabel(lesson.ExampleInteractionID(st)),
			Action: push(func() screen.Screen { return activity.NewExample(svc, sess, st) }),
		})
	}
	items = append(items,
		components.MenuItem{Label: "🔄 처음부터 다시", Action: h.reset},
		components.MenuItem{Label: "👋 끝내기", Action: func() tea.Cmd { return tea.Quit }},
	)

	h.menu = components.NewMenu(items)
	h.refresh()
	return h
}

func push(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: build()}
		}
	}
}

func (h *HomeScreen) reset() tea.Cmd {
	h.svc.Reset(context.Background(), h.sess)
	h.celebrated = false
	h.refresh()
	return nil
}

// refresh syncs the completion marks with the session.
func (h *HomeScreen) refresh() {
	for i, id := range h.ids {
		h.menu.Items[i].Done = h.sess.Progress.IsDone(id)
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.PoppedMsg); ok {
		h.refresh()
		if h.sess.Progress.Finished() && !h.celebrated {
			h.celebrated = true
			sum := session.BuildSummary(h.sess)
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: summary.New(sum)}
			}
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)

	cw := components.ContentWidth(width)
	p := h.sess.Progress

	var sections []string
	sections = append(sections, renderTitle(cw))
	if !compact {
		sections = append(sections, renderMascotBox(variantFor(p.Completed(), p.Total()), cw))
	}
	sections = append(sections, renderProgressBox(p.Ratio(), p.Display(), cw))
	if p.Finished() {
		sections = append(sections, renderFinished(cw))
	}
	sections = append(sections, h.menu.View(cw, compact))
	sections = append(sections, renderModeLine(h.svc.Remote(), cw))
	if !compact {
		sections = append(sections, renderKeyPoint(cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "홈"
}
