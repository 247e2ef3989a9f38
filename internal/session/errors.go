package session

import "fmt"

// Validation messages shown inline next to the input.
const (
	MsgScenarioIncomplete = "❌ 대푯값과 이유를 모두 입력해주세요!"
	MsgExampleEmpty       = "❌ 예시를 입력해주세요!"
)

// ValidationError means a submission was rejected before grading. No
// session state changes when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
