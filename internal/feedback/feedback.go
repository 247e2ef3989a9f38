// Package feedback turns graded results into the Korean messages shown to
// the student.
package feedback

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/abhisek/daepyo/internal/evaluate"
	"github.com/abhisek/daepyo/internal/lesson"
)

// Tone selects the visual style of a feedback card.
type Tone string

const (
	TonePositive    Tone = "positive"
	ToneEncouraging Tone = "encouraging"
	ToneNegative    Tone = "negative"
)

// Feedback is a rendered feedback card.
type Feedback struct {
	Tone     Tone   `json:"tone"`
	Headline string `json:"headline"`
	Body     string `json:"body"`
	Notice   string `json:"notice,omitempty"`
}

// ForScenario renders the card for a scenario result. A partially correct
// answer shares the negative style with an incorrect one.
func ForScenario(r evaluate.Result) Feedback {
	var f Feedback
	switch r.Verdict {
	case evaluate.VerdictCorrect:
		f = Feedback{
			Tone:     TonePositive,
			Headline: "✅ 훌륭합니다!",
			Body:     "상황에 가장 적절한 대푯값을 선택하고 타당한 이유를 제시했습니다.",
		}
	case evaluate.VerdictPartiallyCorrect:
		f = Feedback{
			Tone:     ToneNegative,
			Headline: "💭 대푯값 선택은 맞지만",
			Body:     "이유를 더 구체적으로 설명해보세요. 자료의 특성을 고려해보세요!",
		}
	default:
		f = Feedback{
			Tone:     ToneNegative,
			Headline: "🤔 다시 생각해보세요!",
			Body:     "자료의 분포와 특성을 고려하여 가장 적절한 대푯값을 선택해보세요.",
		}
	}
	return withRemote(f, r)
}

// ForExample renders the card for an example result.
func ForExample(stat lesson.Stat, r evaluate.Result) Feedback {
	name := stat.Name()
	var f Feedback
	switch r.Verdict {
	case evaluate.VerdictAppropriate:
		f = Feedback{
			Tone:     TonePositive,
			Headline: "✅ 훌륭합니다!",
			Body:     fmt.Sprintf("%s이 적절한 상황을 잘 파악했습니다.", name),
		}
	case evaluate.VerdictPartiallyAppropriate:
		f = Feedback{
			Tone:     ToneEncouraging,
			Headline: "👍 좋습니다!",
			Body:     fmt.Sprintf("%s의 특성을 잘 이해하고 있어요.", name),
		}
	default:
		f = Feedback{
			Tone:     ToneNegative,
			Headline: "💡 다시 생각해보세요!",
			Body:     fmt.Sprintf("%s이 왜 적절한지 더 구체적으로 설명해보세요!", name),
		}
	}
	return withRemote(f, r)
}

// withRemote overlays the judge's own words on the canned card. An
// unrecognized reply keeps the canned headline so the tone still matches.
func withRemote(f Feedback, r evaluate.Result) Feedback {
	f.Notice = r.Notice
	if r.Source != evaluate.SourceRemote {
		return f
	}
	if r.Headline != "" {
		f.Headline = r.Headline
	}
	if strings.TrimSpace(r.Message) != "" {
		f.Body = r.Message
	}
	return f
}

// Text is the card as plain text.
func (f Feedback) Text() string {
	var b strings.Builder
	b.WriteString(f.Headline)
	if f.Body != "" {
		b.WriteString("\n")
		b.WriteString(f.Body)
	}
	if f.Notice != "" {
		b.WriteString("\n\n")
		b.WriteString(f.Notice)
	}
	return b.String()
}

// Markdown is the card as markdown, headline in bold.
func (f Feedback) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n%s\n", f.Headline, f.Body)
	if f.Notice != "" {
		fmt.Fprintf(&b, "\n> %s\n", f.Notice)
	}
	return b.String()
}

// HTML renders the card's markdown. Raw HTML inside judge text is dropped.
func (f Feedback) HTML() string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return string(markdown.ToHTML([]byte(f.Markdown()), p, r))
}
