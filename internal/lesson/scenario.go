package lesson

import (
	"fmt"
	"slices"
)

// HighlightKind marks why some data points are drawn differently.
type HighlightKind string

const (
	HighlightNone    HighlightKind = ""
	HighlightOutlier HighlightKind = "outlier"
	HighlightMode    HighlightKind = "mode"
)

// Highlight selects the data indices to emphasise when rendering a dataset.
type Highlight struct {
	Kind    HighlightKind
	Indices []int
}

// Has reports whether index i is highlighted.
func (h Highlight) Has(i int) bool {
	return slices.Contains(h.Indices, i)
}

// AnswerKey lists the acceptable statistics and justification keywords.
type AnswerKey struct {
	Stats    []Stat
	Keywords []string
}

// Accepts reports whether s is an acceptable statistic for the scenario.
func (k AnswerKey) Accepts(s Stat) bool {
	return slices.Contains(k.Stats, s)
}

// Scenario is a fixed dataset with a question about which statistic fits best.
type Scenario struct {
	ID        int
	Title     string
	Data      []float64
	Question  string
	Context   string // one-line description handed to the remote judge
	Highlight Highlight
	AnswerKey AnswerKey
}

// InteractionID is the progress slot this scenario fills.
func (s Scenario) InteractionID() string {
	return ScenarioInteractionID(s.ID)
}

// ScenarioInteractionID returns the progress slot for a scenario ID.
func ScenarioInteractionID(id int) string {
	return fmt.Sprintf("scenario-%d", id)
}

var scenarios = []Scenario{
	{
		ID:       1,
		Title:    "예제 1: 제기차기 횟수",
		Data:     []float64{4, 5, 6, 6, 6, 7, 7, 23},
		Question: "23처럼 극단적으로 큰 값이 끼어 있다면 평균, 중앙값, 최빈값 중 어떤 값이 더 적절할까요?",
		Context:  "제기차기 횟수 데이터: [4, 5, 6, 6, 6, 7, 7, 23]. 여기서 23은 극단값입니다.",
		Highlight: Highlight{
			Kind:    HighlightOutlier,
			Indices: []int{7},
		},
		AnswerKey: AnswerKey{
			Stats:    []Stat{StatMedian, StatMode},
			Keywords: []string{"극단값", "이상치", "왜곡", "영향", "극단"},
		},
	},
	{
		ID:       2,
		Title:    "예제 2: 신발 판매 사이즈",
		Data:     []float64{250, 250, 250, 260, 260, 270, 280},
		Question: "가장 많이 팔린 사이즈를 알고 싶다면 평균, 중앙값, 최빈값 중 어떤 값이 가장 유용할까요?",
		Context:  "신발 판매 사이즈 데이터: [250, 250, 250, 260, 260, 270, 280]. 250이 가장 많이 팔렸습니다.",
		Highlight: Highlight{
			Kind:    HighlightMode,
			Indices: []int{0, 1, 2},
		},
		AnswerKey: AnswerKey{
			Stats:    []Stat{StatMode},
			Keywords: []string{"많이 팔린", "빈도", "자주", "흔한"},
		},
	},
}

// clone copies s including every slice it holds.
func (s Scenario) clone() Scenario {
	s.Data = slices.Clone(s.Data)
	s.Highlight.Indices = slices.Clone(s.Highlight.Indices)
	s.AnswerKey.Stats = slices.Clone(s.AnswerKey.Stats)
	s.AnswerKey.Keywords = slices.Clone(s.AnswerKey.Keywords)
	return s
}

// Scenarios returns the lesson scenarios in display order. Each one is a
// deep copy, so callers may mutate them freely.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.clone()
	}
	return out
}

// ScenarioByID looks up a scenario and returns a deep copy of it.
func ScenarioByID(id int) (Scenario, error) {
	for _, s := range scenarios {
		if s.ID == id {
			return s.clone(), nil
		}
	}
	return Scenario{}, fmt.Errorf("scenario %d not found", id)
}
