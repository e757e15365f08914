package generate

import (
	"strings"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// Synthesize produces the ordered task list for a classified goal.
// subject is only consulted for the learning family; goal text is only
// interpolated by the generic family.
func Synthesize(family Family, goal, subject string, totalDays int, start plan.Date) []plan.Task {
	if family == FamilyGeneric {
		return synthesizeGeneric(goal, totalDays, start)
	}
	return synthesizeFamily(family, subject, totalDays, start)
}

func synthesizeFamily(family Family, subject string, totalDays int, start plan.Date) []plan.Task {
	templates := familyTemplates[family]
	tasks := make([]plan.Task, 0, len(templates))
	for i, tpl := range templates {
		deps := make([]int, len(tpl.deps))
		copy(deps, tpl.deps)
		tasks = append(tasks, plan.Task{
			ID:             i + 1,
			Title:          interpolateSubject(tpl.title, subject),
			Description:    interpolateSubject(tpl.description, subject),
			EstimatedHours: tpl.hours,
			Dependencies:   deps,
			Deadline:       start.AddDays(tpl.deadline.offset(totalDays)),
			Priority:       tpl.priority,
			Category:       tpl.category,
		})
	}
	return tasks
}

func synthesizeGeneric(goal string, totalDays int, start plan.Date) []plan.Task {
	numTasks := totalDays / 3
	if numTasks < 4 {
		numTasks = 4
	}
	if numTasks > 7 {
		numTasks = 7
	}
	taskDuration := float64(totalDays) / float64(numTasks)

	tasks := make([]plan.Task, 0, numTasks)
	for i := 0; i < numTasks; i++ {
		idx := i
		if idx > len(genericPhases)-1 {
			idx = len(genericPhases) - 1
		}
		tpl := genericPhases[idx]

		deps := []int{}
		if i > 0 {
			deps = []int{i}
		}

		deadline := start.AddDays(int(float64(i) * taskDuration))
		if i == numTasks-1 {
			// The plan always closes on the end date.
			deadline = start.AddDays(totalDays)
		}

		tasks = append(tasks, plan.Task{
			ID:             i + 1,
			Title:          tpl.name,
			Description:    strings.ReplaceAll(tpl.description, "{goal}", goal),
			EstimatedHours: 10 + (i%3)*6,
			Dependencies:   deps,
			Deadline:       deadline,
			Priority:       genericPriorities[idx],
			Category:       tpl.category,
		})
	}
	return tasks
}

func interpolateSubject(s, subject string) string {
	return strings.ReplaceAll(s, "{subject}", subject)
}
