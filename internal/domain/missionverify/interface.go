package missionverify

import (
	"context"
	"fmt"
)

// Result is the outcome of evaluating evidence against mission parameters.
type Result interface {
	Name() string

	// Reason is a machine-readable rejection code, Detail a human-readable
	// explanation. Both are empty unless the result is Rejected.
	Reason() string
	Detail() string

	Is(Result) bool
	WithReason(reason, detail string, a ...any) Result
}

type result struct {
	name   string
	reason string
	detail string
}

func (r result) Name() string {
	return r.name
}

func (r result) Reason() string {
	return r.reason
}

func (r result) Detail() string {
	return r.detail
}

func (r result) Is(another Result) bool {
	return r.Name() == another.Name()
}

func (r result) WithReason(reason, detail string, a ...any) Result {
	r.reason = reason
	r.detail = fmt.Sprintf(detail, a...)
	return r
}

var (
	// Accepted completes the mission immediately.
	Accepted = result{name: "accepted"}

	// Rejected leaves the mission assigned; the subject may retry before the
	// deadline.
	Rejected = result{name: "rejected"}

	// Deferred means this modality cannot be decided at submission time; the
	// consensus engine resolves it later.
	Deferred = result{name: "deferred"}
)

// Validator evaluates caller evidence for one modality. Implementations are
// pure: the only inputs are the mission parameters they were built with and
// the submitted evidence.
type Validator interface {
	Validate(ctx context.Context, evidence map[string]any) (Result, error)
}
