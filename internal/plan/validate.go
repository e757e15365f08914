package plan

import (
	"fmt"
	"strings"
)

// ValidatePlan checks the structural invariants every plan must hold,
// whether it came from the rule-based engine or from an LLM response.
func ValidatePlan(p Plan) error {
	if strings.TrimSpace(p.Goal) == "" {
		return fmt.Errorf("plan goal is required")
	}
	if strings.TrimSpace(p.EstimatedDuration) == "" {
		return fmt.Errorf("plan estimated_duration is required")
	}
	if len(p.Tasks) == 0 {
		return fmt.Errorf("plan must include at least one task")
	}
	if p.Timeline.StartDate.IsZero() || p.Timeline.EndDate.IsZero() {
		return fmt.Errorf("plan timeline dates are required")
	}
	if p.Timeline.EndDate.Before(p.Timeline.StartDate) {
		return fmt.Errorf("plan end_date %s precedes start_date %s", p.Timeline.EndDate, p.Timeline.StartDate)
	}
	for idx, task := range p.Tasks {
		if err := validateTask(task, idx+1, p.Timeline); err != nil {
			return fmt.Errorf("task %d: %w", idx+1, err)
		}
	}
	if err := validateMilestones(p.Timeline, p.Tasks); err != nil {
		return err
	}
	return nil
}

func validateTask(task Task, wantID int, tl Timeline) error {
	if task.ID != wantID {
		return fmt.Errorf("id %d out of sequence, want %d", task.ID, wantID)
	}
	if strings.TrimSpace(task.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if task.EstimatedHours <= 0 {
		return fmt.Errorf("estimated_hours must be positive, got %d", task.EstimatedHours)
	}
	switch task.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("priority must be High, Medium or Low, got %q", task.Priority)
	}
	for _, dep := range task.Dependencies {
		if dep <= 0 || dep >= task.ID {
			return fmt.Errorf("dependency %d must reference an earlier task", dep)
		}
	}
	if task.Deadline.Before(tl.StartDate) || task.Deadline.After(tl.EndDate) {
		return fmt.Errorf("deadline %s outside timeline [%s, %s]", task.Deadline, tl.StartDate, tl.EndDate)
	}
	return nil
}

func validateMilestones(tl Timeline, tasks []Task) error {
	if len(tl.Milestones) == 0 {
		return fmt.Errorf("timeline must include milestones")
	}
	prevDate := tl.StartDate
	prevSet := map[int]struct{}{}
	for idx, ms := range tl.Milestones {
		if strings.TrimSpace(ms.Name) == "" {
			return fmt.Errorf("milestone %d: name is required", idx+1)
		}
		if ms.Date.Before(prevDate) {
			return fmt.Errorf("milestone %d: date %s precedes %s", idx+1, ms.Date, prevDate)
		}
		set := make(map[int]struct{}, len(ms.TasksCompleted))
		for _, id := range ms.TasksCompleted {
			if id <= 0 || id > len(tasks) {
				return fmt.Errorf("milestone %d: unknown task id %d", idx+1, id)
			}
			set[id] = struct{}{}
		}
		for id := range prevSet {
			if _, ok := set[id]; !ok {
				return fmt.Errorf("milestone %d: completed set dropped task %d", idx+1, id)
			}
		}
		prevDate = ms.Date
		prevSet = set
	}

	final := tl.Milestones[len(tl.Milestones)-1]
	if final.Date != tl.EndDate {
		return fmt.Errorf("final milestone date %s must equal end_date %s", final.Date, tl.EndDate)
	}
	if len(prevSet) != len(tasks) {
		return fmt.Errorf("final milestone must complete all %d tasks, got %d", len(tasks), len(prevSet))
	}
	return nil
}
