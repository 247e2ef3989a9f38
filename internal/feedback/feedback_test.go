package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/daepyo/internal/evaluate"
	"github.com/abhisek/daepyo/internal/lesson"
)

func TestForScenario_Local(t *testing.T) {
	tests := []struct {
		verdict  evaluate.Verdict
		tone     Tone
		headline string
	}{
		{evaluate.VerdictCorrect, TonePositive, "✅ 훌륭합니다!"},
		{evaluate.VerdictPartiallyCorrect, ToneNegative, "💭 대푯값 선택은 맞지만"},
		{evaluate.VerdictIncorrect, ToneNegative, "🤔 다시 생각해보세요!"},
	}
	for _, tt := range tests {
		f := ForScenario(evaluate.Result{Verdict: tt.verdict, Source: evaluate.SourceLocal})
		assert.Equal(t, tt.tone, f.Tone, tt.verdict)
		assert.Equal(t, tt.headline, f.Headline, tt.verdict)
		assert.NotEmpty(t, f.Body, tt.verdict)
	}
}

func TestForExample_Local(t *testing.T) {
	f := ForExample(lesson.StatMedian, evaluate.Result{Verdict: evaluate.VerdictAppropriate, Source: evaluate.SourceLocal})
	assert.Equal(t, TonePositive, f.Tone)
	assert.Equal(t, "중앙값이 적절한 상황을 잘 파악했습니다.", f.Body)

	f = ForExample(lesson.StatMean, evaluate.Result{Verdict: evaluate.VerdictPartiallyAppropriate, Source: evaluate.SourceLocal})
	assert.Equal(t, ToneEncouraging, f.Tone)
	assert.Equal(t, "평균의 특성을 잘 이해하고 있어요.", f.Body)

	f = ForExample(lesson.StatMode, evaluate.Result{Verdict: evaluate.VerdictInappropriate, Source: evaluate.SourceLocal})
	assert.Equal(t, ToneNegative, f.Tone)
	assert.Equal(t, "최빈값이 왜 적절한지 더 구체적으로 설명해보세요!", f.Body)
}

func TestRemoteTextOverridesCanned(t *testing.T) {
	f := ForScenario(evaluate.Result{
		Verdict:  evaluate.VerdictPartiallyCorrect,
		Headline: "💭 좋은 시도입니다!",
		Message:  "최빈값도 생각해 보세요.",
		Source:   evaluate.SourceRemote,
	})
	assert.Equal(t, ToneNegative, f.Tone)
	assert.Equal(t, "💭 좋은 시도입니다!", f.Headline)
	assert.Equal(t, "최빈값도 생각해 보세요.", f.Body)
}

func TestUnrecognizedKeepsCannedHeadline(t *testing.T) {
	f := ForExample(lesson.StatMean, evaluate.Result{
		Verdict:      evaluate.VerdictInappropriate,
		Message:      "흥미롭네요.",
		Source:       evaluate.SourceRemote,
		Unrecognized: true,
	})
	assert.Equal(t, "💡 다시 생각해보세요!", f.Headline)
	assert.Equal(t, "흥미롭네요.", f.Body)
}

func TestNoticeCarried(t *testing.T) {
	f := ForScenario(evaluate.Result{
		Verdict: evaluate.VerdictCorrect,
		Source:  evaluate.SourceLocal,
		Notice:  evaluate.FallbackNotice,
	})
	assert.Equal(t, evaluate.FallbackNotice, f.Notice)
	assert.True(t, strings.HasSuffix(f.Text(), evaluate.FallbackNotice))
}

func TestHTML(t *testing.T) {
	f := Feedback{Headline: "✅ 훌륭합니다!", Body: "좋아요 <script>alert(1)</script>", Notice: "참고"}
	out := f.HTML()
	assert.Contains(t, out, "<strong>✅ 훌륭합니다!</strong>")
	assert.Contains(t, out, "<blockquote>")
	assert.NotContains(t, out, "<script>")
}
