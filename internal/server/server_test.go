package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/llm"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/logging"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	log := logging.NewWithOutput("server", io.Discard)
	planner := llm.NewPlannerWithGenerator(&llm.RuleBased{}, log, nil)
	planner.SetClock(func() time.Time {
		return time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	})
	return New(":0", planner, st, log)
}

func doJSON(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload), "body: %s", rr.Body.String())
	return rr, payload
}

func TestCreatePlan(t *testing.T) {
	s := testServer(t)

	rr, payload := doJSON(t, s.Handler(), http.MethodPost, "/api/plan",
		`{"goal": "Launch a mobile app in 3 weeks"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	assert.Equal(t, true, payload["success"])
	assert.Equal(t, llm.MethodFallback, payload["llm_method"])

	planObj, ok := payload["plan"].(map[string]any)
	require.True(t, ok, "plan missing from %v", payload)
	assert.Equal(t, "Launch a mobile app in 3 weeks", planObj["goal"])
	assert.Equal(t, "21 days", planObj["estimated_duration"])
	assert.Equal(t, float64(1), planObj["id"])
	assert.Equal(t, llm.MethodFallback, planObj["llm_method"])
	tasks, ok := planObj["tasks"].([]any)
	require.True(t, ok)
	assert.Len(t, tasks, 8)
}

func TestCreatePlanEmptyGoal(t *testing.T) {
	s := testServer(t)

	for _, body := range []string{`{"goal": ""}`, `{"goal": "   "}`, `{}`} {
		rr, payload := doJSON(t, s.Handler(), http.MethodPost, "/api/plan", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %s", body)
		assert.Equal(t, false, payload["success"])
		assert.Equal(t, "Goal is required", payload["error"])
	}
}

func TestCreatePlanBadBody(t *testing.T) {
	s := testServer(t)

	rr, payload := doJSON(t, s.Handler(), http.MethodPost, "/api/plan", "not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, false, payload["success"])
}

func TestGetPlanRoundTrip(t *testing.T) {
	s := testServer(t)

	rr, created := doJSON(t, s.Handler(), http.MethodPost, "/api/plan",
		`{"goal": "Learn Python programming in 1 month"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	id := int64(created["plan"].(map[string]any)["id"].(float64))

	rr2 := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr2, httptest.NewRequest(http.MethodGet, "/api/plan/1", nil))
	require.Equal(t, http.StatusOK, rr2.Code)

	var resp struct {
		Success bool          `json:"success"`
		Plan    *store.Record `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rr2.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, id, resp.Plan.ID)
	assert.Equal(t, "Learn Python programming in 1 month", resp.Plan.Goal)
	assert.Equal(t, llm.MethodFallback, resp.Plan.LLMMethod)
	assert.Len(t, resp.Plan.Plan.Tasks, 4)
	assert.NoError(t, plan.ValidatePlan(resp.Plan.Plan))
}

func TestGetPlanNotFound(t *testing.T) {
	s := testServer(t)

	rr, payload := doJSON(t, s.Handler(), http.MethodGet, "/api/plan/42", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Plan not found", payload["error"])
}

func TestGetPlanBadID(t *testing.T) {
	s := testServer(t)

	for _, id := range []string{"abc", "0", "-3"} {
		rr, payload := doJSON(t, s.Handler(), http.MethodGet, "/api/plan/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, "id %s", id)
		assert.Equal(t, "invalid plan id", payload["error"])
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	rr, payload := doJSON(t, s.Handler(), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, llm.MethodFallback, payload["llm_method"])

	ts, ok := payload["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}

func TestLLMStatus(t *testing.T) {
	s := testServer(t)

	rr, payload := doJSON(t, s.Handler(), http.MethodGet, "/api/llm-status", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, llm.MethodFallback, payload["current_method"])

	methods, ok := payload["available_methods"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, methods[llm.MethodOllama])
	assert.Equal(t, false, methods[llm.MethodHuggingFace])
	assert.Equal(t, true, methods[llm.MethodFallback])
}
