package judge

import (
	"bytes"
	"text/template"

	"github.com/abhisek/daepyo/internal/lesson"
)

const systemPrompt = `당신은 중학교 통계 선생님입니다. 학생의 답변을 평가하고 간단하고 친근한 한국어로 피드백합니다.`

type scenarioPromptData struct {
	Context    string
	Label      string
	Reason     string
	Markers    []marker
	Structured bool
}

type examplePromptData struct {
	Stat       string
	Example    string
	Rules      []lesson.ExampleRule
	Markers    []marker
	Structured bool
}

var scenarioTemplate = template.Must(template.New("scenario").Parse(`학생이 대푯값 문제에 대해 답변했습니다.

상황: {{.Context}}
학생이 선택한 대푯값: {{.Label}}
학생의 이유: {{.Reason}}

학생의 답변을 평가하고 피드백해주세요:
1. 선택한 대푯값이 적절한지 판단
2. 이유가 타당한지 분석
3. 간단하고 친근한 피드백 제공 (2-3문장)
4. 칭찬 또는 개선점 제시
{{if .Structured}}
verdict는 correct(정답), partially-correct(부분정답), incorrect(오답) 중 하나로 답하고 feedback에 피드백을 적어주세요.
{{else}}
응답은 다음 중 하나로 시작해주세요:
{{range .Markers}}- "{{.Text}}" ({{.Usage}})
{{end}}{{end}}`))

var exampleTemplate = template.Must(template.New("example").Parse(`학생이 {{.Stat}}을 사용하는 상황 예시를 제시했습니다.

학생의 예시: {{.Example}}

이 예시가 {{.Stat}}을 사용하기에 적절한 상황인지 평가해주세요.

대푯값별로 적절한 경우:
{{range .Rules}}- {{.Stat.Name}}: {{.Criteria}}
{{end}}{{if .Structured}}
verdict는 appropriate(적절), partially-appropriate(부분적절), inappropriate(부적절) 중 하나로 답하고 feedback에 1-2문장으로 친근하게 피드백해주세요.
{{else}}
응답은 다음 중 하나로 시작해주세요:
{{range .Markers}}- "{{.Text}}" ({{.Usage}})
{{end}}
그 다음 1-2문장으로 친근하게 피드백해주세요.
{{end}}`))

func buildScenarioMessage(data scenarioPromptData, structured bool) (string, error) {
	data.Structured = structured
	var buf bytes.Buffer
	if err := scenarioTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildExampleMessage(data examplePromptData, structured bool) (string, error) {
	data.Structured = structured
	var buf bytes.Buffer
	if err := exampleTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
