package lesson

import (
	"fmt"
	"slices"
)

// ExampleRule holds the keyword sets used to judge a student's example of
// when a statistic should be used. Good and Bad are disjoint.
type ExampleRule struct {
	Stat Stat
	Good []string
	Bad  []string

	// Criteria is the one-line description of when the statistic fits,
	// shown to the remote judge.
	Criteria string
}

var rules = map[Stat]ExampleRule{
	StatMean: {
		Stat:     StatMean,
		Good:     []string{"고르게", "균등", "일정", "비슷", "평균적", "고루", "분포"},
		Bad:      []string{"극단", "이상치", "튀는", "치우쳐", "빈도"},
		Criteria: "자료가 고르게 분포, 극단값 없음, 전체적 수준 파악",
	},
	StatMedian: {
		Stat:     StatMedian,
		Good:     []string{"극단", "이상치", "튀는", "치우쳐", "왜곡", "한쪽으로"},
		Bad:      []string{"고르게", "균등", "평균적", "빈도"},
		Criteria: "극단값 존재, 치우친 분포, 중간값이 중요",
	},
	StatMode: {
		Stat:     StatMode,
		Good:     []string{"많이", "자주", "흔한", "인기", "빈도", "판매량", "최다"},
		Bad:      []string{"평균", "중간", "균등", "고르게"},
		Criteria: "빈도가 중요, 가장 흔한 값, 범주형 자료",
	},
}

// RuleFor returns the example rule for a statistic.
func RuleFor(s Stat) (ExampleRule, error) {
	r, ok := rules[s]
	if !ok {
		return ExampleRule{}, fmt.Errorf("no example rule for statistic %q", s)
	}
	return r.clone(), nil
}

func (r ExampleRule) clone() ExampleRule {
	r.Good = slices.Clone(r.Good)
	r.Bad = slices.Clone(r.Bad)
	return r
}

// Rules returns every example rule in display order.
func Rules() []ExampleRule {
	out := make([]ExampleRule, 0, len(rules))
	for _, s := range AllStats() {
		out = append(out, rules[s].clone())
	}
	return out
}

// ExampleInteractionID returns the progress slot for a statistic's example check.
func ExampleInteractionID(s Stat) string {
	return "example-" + string(s)
}

// TotalInteractions is the number of progress slots in the lesson:
// every scenario plus one example check per statistic.
func TotalInteractions() int {
	return len(scenarios) + len(AllStats())
}

// InteractionIDs lists every progress slot in display order.
func InteractionIDs() []string {
	ids := make([]string, 0, TotalInteractions())
	for _, s := range scenarios {
		ids = append(ids, s.InteractionID())
	}
	for _, s := range AllStats() {
		ids = append(ids, ExampleInteractionID(s))
	}
	return ids
}

// InteractionLabel is the display name of a progress slot. Unknown IDs are
// returned unchanged.
func InteractionLabel(id string) string {
	for _, s := range scenarios {
		if s.InteractionID() == id {
			return s.Title
		}
	}
	for _, s := range AllStats() {
		if ExampleInteractionID(s) == id {
			return fmt.Sprintf("%s %s 예시", s.Emoji(), s.Name())
		}
	}
	return id
}
