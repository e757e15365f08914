// Package generate implements the deterministic, rule-based plan engine.
// It classifies a free-text goal into a template family, sizes the timeline
// from duration hints in the text, and expands the family's task template
// into a full validated plan.
package generate

import (
	"fmt"
	"time"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// Generate builds a complete plan for the goal. now anchors the timeline
// start date; callers pass time.Now() outside of tests.
func Generate(goal string, now time.Time) (plan.Plan, error) {
	totalDays := ExtractTimeframe(goal)
	start := plan.DateOf(now)
	end := start.AddDays(totalDays)

	family := Classify(goal)
	subject := ""
	if family == FamilyLearning {
		subject = ExtractSubject(goal)
	}

	tasks := Synthesize(family, goal, subject, totalDays, start)
	milestones := SynthesizeMilestones(tasks, start, end, totalDays)

	p := plan.Plan{
		Goal:              goal,
		EstimatedDuration: fmt.Sprintf("%d days", totalDays),
		Tasks:             tasks,
		Timeline: plan.Timeline{
			StartDate:  start,
			EndDate:    end,
			Milestones: milestones,
		},
	}
	if err := plan.ValidatePlan(p); err != nil {
		return plan.Plan{}, fmt.Errorf("generated plan invalid: %w", err)
	}
	return p, nil
}
