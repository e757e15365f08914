// Package plan defines the task plan data model and its JSON wire contract.
package plan

// Task priorities, in decreasing order of urgency.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Plan is a structured breakdown of one goal into tasks and a timeline.
type Plan struct {
	Goal              string   `json:"goal"`
	EstimatedDuration string   `json:"estimated_duration"`
	Tasks             []Task   `json:"tasks"`
	Timeline          Timeline `json:"timeline"`
}

// Task is one unit of work within a plan. IDs are assigned sequentially
// starting at 1 in generation order; dependencies may only reference
// tasks with strictly smaller IDs.
type Task struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	EstimatedHours int    `json:"estimated_hours"`
	Dependencies   []int  `json:"dependencies"`
	Deadline       Date   `json:"deadline"`
	Priority       string `json:"priority"`
	Category       string `json:"category"`
}

// Timeline bounds the plan and carries its milestone checkpoints.
type Timeline struct {
	StartDate  Date        `json:"start_date"`
	EndDate    Date        `json:"end_date"`
	Milestones []Milestone `json:"milestones"`
}

// Milestone is a dated checkpoint listing the task IDs expected complete
// by that date.
type Milestone struct {
	Name           string `json:"name"`
	Date           Date   `json:"date"`
	TasksCompleted []int  `json:"tasks_completed"`
}

// Normalize replaces nil slices with empty ones so that serialized plans
// always carry JSON arrays, never null. Plans parsed from external sources
// (the LLM path) go through this before validation.
func (p *Plan) Normalize() {
	if p.Tasks == nil {
		p.Tasks = []Task{}
	}
	for i := range p.Tasks {
		if p.Tasks[i].Dependencies == nil {
			p.Tasks[i].Dependencies = []int{}
		}
	}
	if p.Timeline.Milestones == nil {
		p.Timeline.Milestones = []Milestone{}
	}
	for i := range p.Timeline.Milestones {
		if p.Timeline.Milestones[i].TasksCompleted == nil {
			p.Timeline.Milestones[i].TasksCompleted = []int{}
		}
	}
}
