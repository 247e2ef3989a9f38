package layout

import (
	"strings"
	"testing"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestIsCompact(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{120, 40, false},
		{89, 40, true},
		{120, 31, true},
		{90, 32, false},
	}
	for _, tt := range tests {
		if got := IsCompact(tt.w, tt.h); got != tt.want {
			t.Errorf("IsCompact(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestHeader_Render(t *testing.T) {
	h := Header{Screen: "예제 1", Progress: "1/5 (20%)"}

	wide := h.Render(100)
	for _, want := range []string{"예제 1", "1/5 (20%)", "기본 채점"} {
		if !strings.Contains(wide, want) {
			t.Errorf("header missing %q: %q", want, wide)
		}
	}

	h.Remote = true
	narrow := h.Render(80)
	if strings.Contains(narrow, "예제 1") {
		t.Errorf("narrow header should drop the screen title: %q", narrow)
	}
	if !strings.Contains(narrow, "AI 채점") || !strings.Contains(narrow, "1/5 (20%)") {
		t.Errorf("narrow header lost mode or progress: %q", narrow)
	}
}

func TestRenderFooter_DropsOverflowingHints(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "다음 칸"},
		{Key: "Ctrl+S", Description: "제출"},
		{Key: "Esc", Description: "뒤로"},
		{Key: "Ctrl+C", Description: "종료"},
	}
	f := RenderFooter(hints, 30)
	if !strings.Contains(f, "Tab") {
		t.Errorf("footer should keep the first hint: %q", f)
	}
	if strings.Contains(f, "Ctrl+C") {
		t.Errorf("footer should drop hints past the width: %q", f)
	}
}

func TestBodyHeight(t *testing.T) {
	header := Header{Progress: "0/5 (0%)"}.Render(100)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "종료"}}, 100)
	if got := BodyHeight(header, footer, 30); got != 24 {
		t.Errorf("BodyHeight = %d, want 24", got)
	}
	if got := BodyHeight(header, footer, 4); got != 0 {
		t.Errorf("BodyHeight = %d, want 0", got)
	}
}

func TestRenderFooterHints(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Tab", Description: "다음 칸"}, {Key: "Ctrl+S", Description: "제출"}}, 100)
	for _, want := range []string{"Tab", "다음 칸", "Ctrl+S", "제출"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}
