// Package llm selects and runs the plan generation strategy: a locally
// running Ollama server when one is reachable, the deterministic rule-based
// engine otherwise. The rule-based path is always available and is the
// terminal fallback for every LLM failure.
package llm

import (
	"context"
	"errors"
	"time"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// Generation method tags, persisted alongside each stored plan.
const (
	MethodOllama   = "ollama"
	MethodFallback = "fallback"

	// MethodHuggingFace is reserved for a transformers-backed generator
	// that was never promoted past evaluation; no selector returns it.
	MethodHuggingFace = "huggingface"
)

// ErrUnavailable signals that the remote generator could not produce a
// valid plan (unreachable server, non-200 response, malformed output).
// Callers recover by invoking the rule-based path; the error never
// reaches the end caller.
var ErrUnavailable = errors.New("llm unavailable")

// ErrEmptyGoal rejects empty or whitespace-only input before any
// generation is attempted.
var ErrEmptyGoal = errors.New("goal is required")

// Generator produces a plan for a goal. now anchors the plan timeline.
type Generator interface {
	Name() string
	Generate(ctx context.Context, goal string, now time.Time) (plan.Plan, error)
}
