package plan

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

const wireGolden = `{
  "goal": "Write the quarterly report in 5 days",
  "estimated_duration": "5 days",
  "tasks": [
    {
      "id": 1,
      "title": "Draft outline",
      "description": "Sketch the report structure.",
      "estimated_hours": 4,
      "dependencies": [],
      "deadline": "2026-07-02",
      "priority": "High",
      "category": "Planning"
    },
    {
      "id": 2,
      "title": "Write and polish",
      "description": "Fill in the sections and edit.",
      "estimated_hours": 10,
      "dependencies": [
        1
      ],
      "deadline": "2026-07-06",
      "priority": "Medium",
      "category": "Execution"
    }
  ],
  "timeline": {
    "start_date": "2026-07-01",
    "end_date": "2026-07-06",
    "milestones": [
      {
        "name": "Kickoff",
        "date": "2026-07-01",
        "tasks_completed": []
      },
      {
        "name": "Delivered",
        "date": "2026-07-06",
        "tasks_completed": [
          1,
          2
        ]
      }
    ]
  }
}`

func wireGoldenPlan(t *testing.T) Plan {
	t.Helper()
	return Plan{
		Goal:              "Write the quarterly report in 5 days",
		EstimatedDuration: "5 days",
		Tasks: []Task{
			{ID: 1, Title: "Draft outline", Description: "Sketch the report structure.", EstimatedHours: 4, Dependencies: []int{}, Deadline: mustDate(t, "2026-07-02"), Priority: PriorityHigh, Category: "Planning"},
			{ID: 2, Title: "Write and polish", Description: "Fill in the sections and edit.", EstimatedHours: 10, Dependencies: []int{1}, Deadline: mustDate(t, "2026-07-06"), Priority: PriorityMedium, Category: "Execution"},
		},
		Timeline: Timeline{
			StartDate: mustDate(t, "2026-07-01"),
			EndDate:   mustDate(t, "2026-07-06"),
			Milestones: []Milestone{
				{Name: "Kickoff", Date: mustDate(t, "2026-07-01"), TasksCompleted: []int{}},
				{Name: "Delivered", Date: mustDate(t, "2026-07-06"), TasksCompleted: []int{1, 2}},
			},
		},
	}
}

func TestPlanWireFormat(t *testing.T) {
	data, err := json.MarshalIndent(wireGoldenPlan(t), "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	if string(data) != wireGolden {
		diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(wireGolden),
			B:        difflib.SplitLines(string(data)),
			FromFile: "want",
			ToFile:   "got",
			Context:  3,
		})
		t.Fatalf("wire format drifted:\n%s", diff)
	}
}

func TestPlanWireRoundTrip(t *testing.T) {
	want := wireGoldenPlan(t)
	var got Plan
	if err := json.Unmarshal([]byte(wireGolden), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}
