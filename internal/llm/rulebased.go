package llm

import (
	"context"
	"time"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/generate"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// RuleBased is the deterministic, offline generator. It never fails for
// non-empty input and serves as the terminal strategy when no LLM server
// is reachable.
type RuleBased struct{}

func (g *RuleBased) Name() string {
	return MethodFallback
}

func (g *RuleBased) Generate(ctx context.Context, goal string, now time.Time) (plan.Plan, error) {
	if err := ctx.Err(); err != nil {
		return plan.Plan{}, err
	}
	return generate.Generate(goal, now)
}
