package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daepyo/internal/lesson"
	"github.com/abhisek/daepyo/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		SessionID: "s-1",
		StartedAt: time.Now().Add(-7 * time.Minute),
		Duration:  7*time.Minute + 5*time.Second,
		Progress: session.ProgressUpdate{
			Completed: 5, Total: 5, Percent: 100, Display: "5/5 (100%)",
		},
		Completed: lesson.InteractionIDs(),
		Remaining: []string{},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "학습 완료" {
		t.Errorf("Title = %q, want %q", s.Title(), "학습 완료")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary()).View(100, 30)
	for _, want := range []string{"모든 활동을 완료했습니다", "7:05", "5/5 (100%)", "예제 1: 제기차기 횟수", "🎯 최빈값 예시"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
