package llm

import (
	"context"
	"fmt"
)

// Purpose labels a judge call in the request log.
type Purpose string

const (
	PurposeScenarioJudge Purpose = "scenario-judge"
	PurposeExampleJudge  Purpose = "example-judge"

	// PurposeUnknown marks calls made without WithPurpose.
	PurposeUnknown Purpose = "unknown"
)

// Purposes lists the labels the judges attach, in menu order.
var Purposes = []Purpose{PurposeScenarioJudge, PurposeExampleJudge}

// ParsePurpose accepts one of Purposes. The empty string means no filter and
// parses to "".
func ParsePurpose(s string) (Purpose, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Purposes {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown purpose %q (want %s or %s)", s, PurposeScenarioJudge, PurposeExampleJudge)
}

type purposeKey struct{}

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) Purpose {
	if v, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return v
	}
	return PurposeUnknown
}
