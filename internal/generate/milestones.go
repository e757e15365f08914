package generate

import "github.com/ibudubuduu/Smart-Task-Planner/internal/plan"

// SynthesizeMilestones derives checkpoint records from the task list:
// a kickoff at the start date, two intermediate checkpoints when the plan
// has more than three tasks, and completion on the end date. Completed-task
// sets grow by task position, never shrink.
func SynthesizeMilestones(tasks []plan.Task, start, end plan.Date, totalDays int) []plan.Milestone {
	milestones := []plan.Milestone{
		{
			Name:           "Project Kickoff & Planning Complete",
			Date:           start,
			TasksCompleted: []int{},
		},
	}

	if len(tasks) > 3 {
		thirdPoint := len(tasks) / 3
		twoThirdPoint := (len(tasks) * 2) / 3

		milestones = append(milestones, plan.Milestone{
			Name:           "Initial Phase Complete",
			Date:           start.AddDays(totalDays / 3),
			TasksCompleted: taskIDs(tasks[:thirdPoint]),
		})
		milestones = append(milestones, plan.Milestone{
			Name:           "Development Phase Complete",
			Date:           start.AddDays(totalDays * 2 / 3),
			TasksCompleted: taskIDs(tasks[:twoThirdPoint]),
		})
	}

	milestones = append(milestones, plan.Milestone{
		Name:           "Project Completion & Delivery",
		Date:           end,
		TasksCompleted: taskIDs(tasks),
	})
	return milestones
}

func taskIDs(tasks []plan.Task) []int {
	ids := make([]int, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
