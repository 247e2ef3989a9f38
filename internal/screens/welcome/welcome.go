// Package welcome is the splash screen: a bar chart grows column by column,
// then the banner appears and any key moves on to the home screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daepyo/internal/router"
	"github.com/abhisek/daepyo/internal/screen"
	"github.com/abhisek/daepyo/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// chartHeights are the bar heights of the splash chart; the middle bar is
// the median and the tallest the outlier.
var chartHeights = []int{2, 3, 3, 4, 3, 6}

type tickMsg time.Time

// WelcomeScreen shows a short splash animation before the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will replace itself with the screen
// produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// visibleBars is how many chart columns have grown so far.
func (w *WelcomeScreen) visibleBars() int {
	n := int(w.elapsed / (bannerAt / time.Duration(len(chartHeights))))
	return min(n, len(chartHeights))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{renderChart(w.visibleBars())}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("아무 키나 눌러 시작하세요"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}

// renderChart draws the first n bars of the splash chart, tallest row first.
func renderChart(n int) string {
	top := 0
	for _, h := range chartHeights {
		top = max(top, h)
	}

	median := len(chartHeights) / 2
	outlier := len(chartHeights) - 1

	var rows []string
	for level := top; level > 0; level-- {
		var row strings.Builder
		for i, h := range chartHeights {
			cell := "   "
			if i < n && h >= level {
				style := lipgloss.NewStyle().Foreground(theme.Primary)
				switch i {
				case median:
					style = style.Foreground(theme.Secondary)
				case outlier:
					style = style.Foreground(theme.Error)
				}
				cell = style.Render("██") + " "
			}
			row.WriteString(cell)
		}
		rows = append(rows, row.String())
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("▔▔▔", len(chartHeights))))
	return strings.Join(rows, "\n")
}
