package lesson

import (
	"fmt"
	"strings"
)

// Stat is a measure of central tendency.
type Stat string

const (
	StatMean   Stat = "mean"
	StatMedian Stat = "median"
	StatMode   Stat = "mode"
)

// Placeholder is the label shown by an unselected statistic picker.
const Placeholder = "선택하세요"

// AllStats returns all statistics in display order.
func AllStats() []Stat {
	return []Stat{StatMean, StatMedian, StatMode}
}

// Name returns the Korean classroom name of the statistic.
func (s Stat) Name() string {
	switch s {
	case StatMean:
		return "평균"
	case StatMedian:
		return "중앙값"
	case StatMode:
		return "최빈값"
	default:
		return string(s)
	}
}

// Emoji returns the icon used next to the statistic in the UI.
func (s Stat) Emoji() string {
	switch s {
	case StatMean:
		return "📏"
	case StatMedian:
		return "📐"
	case StatMode:
		return "🎯"
	default:
		return "•"
	}
}

// Color returns the accent color of the statistic's section.
func (s Stat) Color() string {
	switch s {
	case StatMean:
		return "#667eea"
	case StatMedian:
		return "#38b2ac"
	case StatMode:
		return "#f6ad55"
	default:
		return "#94A3B8"
	}
}

// Valid reports whether s is one of the three known statistics.
func (s Stat) Valid() bool {
	switch s {
	case StatMean, StatMedian, StatMode:
		return true
	}
	return false
}

// ParseStat accepts either the English key ("median") or the Korean name
// ("중앙값"). The picker placeholder and blank input are rejected.
func ParseStat(v string) (Stat, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == Placeholder {
		return "", fmt.Errorf("no statistic selected")
	}
	for _, s := range AllStats() {
		if strings.EqualFold(v, string(s)) || v == s.Name() {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown statistic %q", v)
}
