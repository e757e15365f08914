package llm

import (
	"fmt"
	"strings"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// buildPrompt renders the fixed generation prompt. The embedded schema
// mirrors the plan JSON contract exactly; the response is expected to
// contain one JSON object matching it.
func buildPrompt(goal string, today plan.Date) string {
	var b strings.Builder
	b.WriteString("You are a professional project manager. Break down this goal into actionable tasks with realistic timelines and dependencies.\n\n")
	fmt.Fprintf(&b, "Goal: %q\n\n", goal)
	b.WriteString("Please respond with a JSON object in this exact format:\n")
	fmt.Fprintf(&b, `{
    "goal": %q,
    "estimated_duration": "X days/weeks",
    "tasks": [
        {
            "id": 1,
            "title": "Task name",
            "description": "Detailed description",
            "estimated_hours": X,
            "dependencies": [],
            "deadline": "YYYY-MM-DD",
            "priority": "High/Medium/Low",
            "category": "Planning/Development/Testing/Marketing/etc"
        }
    ],
    "timeline": {
        "start_date": "YYYY-MM-DD",
        "end_date": "YYYY-MM-DD",
        "milestones": [
            {
                "name": "Milestone name",
                "date": "YYYY-MM-DD",
                "tasks_completed": [1, 2, 3]
            }
        ]
    }
}`, goal)
	fmt.Fprintf(&b, "\n\nMake tasks specific, actionable, and properly sequenced. Use today's date as reference: %s", today)
	return b.String()
}
