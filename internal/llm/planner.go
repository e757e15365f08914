package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/audit"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/config"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/logging"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// Planner is the generation service. The strategy is selected once at
// construction via a capability probe and held for the planner's lifetime;
// the rule-based generator is always on hand as the fallback.
type Planner struct {
	generator Generator
	fallback  *RuleBased
	ollama    *Ollama
	log       *logging.Logger
	auditLog  *audit.Logger
	now       func() time.Time
}

// NewPlanner probes the configured Ollama server and selects the
// generation strategy for this process.
func NewPlanner(ctx context.Context, cfg config.Config, log *logging.Logger, auditLog *audit.Logger) *Planner {
	p := &Planner{
		fallback: &RuleBased{},
		ollama:   NewOllama(cfg.OllamaURL, cfg.OllamaModel, cfg.ProbeTimeout, cfg.GenerateTimeout),
		log:      log,
		auditLog: auditLog,
		now:      time.Now,
	}
	if p.ollama.Probe(ctx) {
		p.generator = p.ollama
		log.Info("llm_selected", map[string]any{"method": MethodOllama, "url": cfg.OllamaURL})
	} else {
		p.generator = p.fallback
		log.Info("llm_selected", map[string]any{"method": MethodFallback})
	}
	return p
}

// NewPlannerWithGenerator builds a planner around an explicit strategy.
// Used by tests and by CLI commands that force the rule-based path.
func NewPlannerWithGenerator(gen Generator, log *logging.Logger, auditLog *audit.Logger) *Planner {
	return &Planner{
		generator: gen,
		fallback:  &RuleBased{},
		log:       log,
		auditLog:  auditLog,
		now:       time.Now,
	}
}

// Method returns the tag of the selected strategy.
func (p *Planner) Method() string {
	return p.generator.Name()
}

// ProbeOllama re-checks server liveness. Reports false when the planner
// was built without an Ollama client.
func (p *Planner) ProbeOllama(ctx context.Context) bool {
	if p.ollama == nil {
		return false
	}
	return p.ollama.Probe(ctx)
}

// SetClock overrides the timeline anchor. Used by tests.
func (p *Planner) SetClock(now func() time.Time) {
	p.now = now
}

// GeneratePlan produces a plan for the goal, falling back to the
// rule-based path when the selected strategy is unavailable. It returns
// the plan together with the method tag that actually produced it, and
// never fails for well-formed non-empty input.
func (p *Planner) GeneratePlan(ctx context.Context, goal string) (plan.Plan, string, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return plan.Plan{}, "", ErrEmptyGoal
	}

	start := time.Now()
	now := p.now()

	result, err := p.generator.Generate(ctx, goal, now)
	method := p.generator.Name()
	if err != nil {
		if !errors.Is(err, ErrUnavailable) {
			return plan.Plan{}, "", err
		}
		p.log.Warn("llm_fallback", map[string]any{"from": method}, err)
		if p.auditLog != nil {
			_ = p.auditLog.LogEvent("planner", audit.EventLLMFallback, map[string]any{
				"from":  method,
				"error": err.Error(),
			})
		}
		result, err = p.fallback.Generate(ctx, goal, now)
		if err != nil {
			return plan.Plan{}, "", err
		}
		method = p.fallback.Name()
	}

	p.log.WithMethod(method).TimedEvent("plan_generated", start, map[string]any{
		"tasks":      len(result.Tasks),
		"total_days": result.EstimatedDuration,
	})
	if p.auditLog != nil {
		_ = p.auditLog.LogEvent("planner", audit.EventPlanGenerated, map[string]any{
			"method": method,
			"tasks":  len(result.Tasks),
		})
	}
	return result, method, nil
}
