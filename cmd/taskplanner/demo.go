package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/generate"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

var demoGoals = []string{
	"Launch a mobile app in 3 weeks",
	"Learn Python programming in 1 month",
	"Organize a team offsite in 10 days",
	"Research competitors for our product",
}

// runDemo walks sample goals through the rule-based planner. It never
// touches Ollama or the database, so it is safe to run anywhere.
func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Println("Task planner demo")
	fmt.Println()

	now := time.Now()
	for _, goal := range demoGoals {
		p, err := generate.Generate(goal, now)
		if err != nil {
			return fmt.Errorf("demo goal %q: %w", goal, err)
		}
		printPlan(p, 0, "demo")
		fmt.Println()
	}
	return nil
}

func printPlan(p plan.Plan, id int64, method string) {
	title := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)

	title.Printf("Plan: %s\n", p.Goal)
	if id > 0 {
		dim.Printf("  id %d, via %s\n", id, method)
	} else {
		dim.Printf("  via %s\n", method)
	}
	fmt.Printf("  %s (%s to %s)\n", p.EstimatedDuration, p.Timeline.StartDate, p.Timeline.EndDate)

	fmt.Println("  Tasks:")
	for _, t := range p.Tasks {
		pri := color.New(color.FgYellow)
		switch t.Priority {
		case plan.PriorityHigh:
			pri = color.New(color.FgRed)
		case plan.PriorityLow:
			pri = color.New(color.FgBlue)
		}
		fmt.Printf("    %2d. %-55s %s  %s  %dh",
			t.ID, t.Title, t.Deadline, pri.Sprint(t.Priority), t.EstimatedHours)
		if len(t.Dependencies) > 0 {
			fmt.Printf("  after %v", t.Dependencies)
		}
		fmt.Println()
	}

	if len(p.Timeline.Milestones) > 0 {
		fmt.Println("  Milestones:")
		for _, m := range p.Timeline.Milestones {
			fmt.Printf("    %s  %s (%d tasks done)\n", m.Date, m.Name, len(m.TasksCompleted))
		}
	}
}
