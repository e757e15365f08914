package audit

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
)

func readEvents(t *testing.T, dbPath string) []struct {
	Actor   string
	Type    string
	Payload string
} {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open audit db: %v", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT actor, type, payload_json FROM events ORDER BY id")
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	defer rows.Close()

	var events []struct {
		Actor   string
		Type    string
		Payload string
	}
	for rows.Next() {
		var e struct {
			Actor   string
			Type    string
			Payload string
		}
		if err := rows.Scan(&e.Actor, &e.Type, &e.Payload); err != nil {
			t.Fatalf("scan event: %v", err)
		}
		events = append(events, e)
	}
	return events
}

func TestLogEvent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "audit", "events.db")
	logger := NewLogger(dbPath)

	payload := map[string]any{"method": "fallback", "tasks": 8}
	if err := logger.LogEvent("planner", EventPlanGenerated, payload); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}
	if err := logger.LogEvent("cli", EventPlanSaved, map[string]any{"plan_id": 1}); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}

	events := readEvents(t, dbPath)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Actor != "planner" || events[0].Type != EventPlanGenerated {
		t.Fatalf("first event = %+v", events[0])
	}
	if events[1].Actor != "cli" || events[1].Type != EventPlanSaved {
		t.Fatalf("second event = %+v", events[1])
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(events[0].Payload), &decoded); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if decoded["method"] != "fallback" {
		t.Fatalf("payload = %v, want method fallback", decoded)
	}
}

func TestLogEventEnvPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "events.db")
	t.Setenv("TASKPLANNER_AUDIT_DB", dbPath)

	logger := NewLogger("")
	if err := logger.LogEvent("planner", EventLLMFallback, nil); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}

	events := readEvents(t, dbPath)
	if len(events) != 1 || events[0].Type != EventLLMFallback {
		t.Fatalf("events = %+v, want one llm_fallback", events)
	}
}
