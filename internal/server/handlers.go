package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/llm"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/store"
)

type createPlanRequest struct {
	Goal string `json:"goal"`
}

// createdPlan is the plan object returned from creation: the plan itself
// plus the store-assigned id and the method that generated it.
type createdPlan struct {
	plan.Plan
	ID        int64  `json:"id"`
	LLMMethod string `json:"llm_method"`
}

type createPlanResponse struct {
	Success   bool        `json:"success"`
	Plan      createdPlan `json:"plan"`
	LLMMethod string      `json:"llm_method"`
}

type getPlanResponse struct {
	Success bool          `json:"success"`
	Plan    *store.Record `json:"plan"`
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	p, method, err := s.planner.GeneratePlan(r.Context(), req.Goal)
	if err != nil {
		if errors.Is(err, llm.ErrEmptyGoal) {
			writeError(w, http.StatusBadRequest, "Goal is required")
			return
		}
		s.log.Error("generate_failed", map[string]any{"path": r.URL.Path}, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	id, err := s.store.Save(r.Context(), p.Goal, p, method)
	if err != nil {
		s.log.Error("save_failed", map[string]any{"path": r.URL.Path}, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, createPlanResponse{
		Success:   true,
		Plan:      createdPlan{Plan: p, ID: id, LLMMethod: method},
		LLMMethod: method,
	})
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}

	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "Plan not found")
			return
		}
		s.log.Error("get_failed", map[string]any{"id": id}, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, getPlanResponse{Success: true, Plan: rec})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"llm_method": s.planner.Method(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleLLMStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"current_method": s.planner.Method(),
		"available_methods": map[string]bool{
			llm.MethodOllama:      s.planner.ProbeOllama(r.Context()),
			llm.MethodHuggingFace: false,
			llm.MethodFallback:    true,
		},
		"recommendations": map[string]string{
			llm.MethodOllama:      "Install Ollama and run: ollama pull llama2",
			llm.MethodHuggingFace: "The rule-based fallback provides better results for most use cases",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}
