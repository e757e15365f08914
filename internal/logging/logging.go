// Package logging provides structured JSON line logging for planner components.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Event is a single structured log line.
type Event struct {
	Timestamp string         `json:"ts"`
	Level     Level          `json:"level"`
	Component string         `json:"component"`
	Event     string         `json:"event"`
	Method    string         `json:"method,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Duration  int64          `json:"duration_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// Logger emits structured events for one component.
type Logger struct {
	component string
	method    string
	requestID string
	out       io.Writer
}

// New creates a logger for a component, writing to stderr.
func New(component string) *Logger {
	return &Logger{component: component, out: os.Stderr}
}

// NewWithOutput creates a logger writing to the given sink. Used by tests.
func NewWithOutput(component string, out io.Writer) *Logger {
	return &Logger{component: component, out: out}
}

// WithMethod sets the generation method context (ollama/fallback).
func (l *Logger) WithMethod(method string) *Logger {
	c := *l
	c.method = method
	return &c
}

// WithRequestID sets the request context.
func (l *Logger) WithRequestID(id string) *Logger {
	c := *l
	c.requestID = id
	return &c
}

func (l *Logger) log(level Level, event string, extra map[string]any, err error) {
	e := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     level,
		Component: l.component,
		Event:     event,
		Method:    l.method,
		RequestID: l.requestID,
		Extra:     extra,
	}
	if err != nil {
		e.Error = err.Error()
	}
	data, _ := json.Marshal(e)
	fmt.Fprintln(l.out, string(data))
}

// Debug logs a debug event.
func (l *Logger) Debug(event string, extra map[string]any) {
	l.log(LevelDebug, event, extra, nil)
}

// Info logs an info event.
func (l *Logger) Info(event string, extra map[string]any) {
	l.log(LevelInfo, event, extra, nil)
}

// Warn logs a warning event.
func (l *Logger) Warn(event string, extra map[string]any, err error) {
	l.log(LevelWarn, event, extra, err)
}

// Error logs an error event.
func (l *Logger) Error(event string, extra map[string]any, err error) {
	l.log(LevelError, event, extra, err)
}

// TimedEvent logs an info event carrying the elapsed time since start.
func (l *Logger) TimedEvent(event string, start time.Time, extra map[string]any) {
	e := Event{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     LevelInfo,
		Component: l.component,
		Event:     event,
		Method:    l.method,
		RequestID: l.requestID,
		Duration:  time.Since(start).Milliseconds(),
		Extra:     extra,
	}
	data, _ := json.Marshal(e)
	fmt.Fprintln(l.out, string(data))
}
