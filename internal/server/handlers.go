package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mkaplan/careercompass/internal/db"
	"github.com/mkaplan/careercompass/internal/placement"
	"github.com/mkaplan/careercompass/internal/ranking"
	"github.com/mkaplan/careercompass/internal/roadmap"
	"github.com/mkaplan/careercompass/internal/types"
)

// narrativeTimeout bounds one enrichment call; the structured result is
// returned regardless of whether prose generation succeeds.
const narrativeTimeout = 10 * time.Second

// RecommendationsRequest is the request body for POST /recommendations.
type RecommendationsRequest struct {
	Profile types.UserProfile `json:"profile"`
	TopN    int               `json:"top_n,omitempty"`
}

// RecommendationsResponse is the response body for POST /recommendations.
type RecommendationsResponse struct {
	Matches []types.CareerMatch `json:"matches"`
	Summary string              `json:"summary,omitempty"`
}

// PlacementRequest is the request body for POST /placement.
type PlacementRequest struct {
	Profile  types.UserProfile `json:"profile"`
	CareerID string            `json:"career_id,omitempty"`
}

// RoadmapRequest is the request body for POST /roadmap.
type RoadmapRequest struct {
	Profile  types.UserProfile `json:"profile"`
	CareerID string            `json:"career_id"`
}

// AnalysisRequest is the request body for POST /analysis.
type AnalysisRequest struct {
	Profile  types.UserProfile `json:"profile"`
	CareerID string            `json:"career_id,omitempty"`
	TopN     int               `json:"top_n,omitempty"`
}

// AnalysisResponse bundles the full engine output for one profile. The
// narrative fields are present only when enrichment is configured.
type AnalysisResponse struct {
	Matches    []types.CareerMatch        `json:"matches"`
	Prediction *types.PlacementPrediction `json:"prediction"`
	Roadmap    *types.Roadmap             `json:"roadmap"`

	Summary               string `json:"summary,omitempty"`
	RoadmapNarrative      string `json:"roadmap_narrative,omitempty"`
	PredictionExplanation string `json:"prediction_explanation,omitempty"`
}

// PlanRequest is the request body for POST /plans.
type PlanRequest struct {
	Profile  types.UserProfile `json:"profile"`
	CareerID string            `json:"career_id"`
}

// handleRecommendations ranks the catalog against a profile
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	topN := s.topN
	if req.TopN > 0 {
		topN = req.TopN
	}

	matches, err := ranking.Rank(&req.Profile, s.snapshot.Careers, s.snapshot.Cohort, ranking.Options{
		TopN:       topN,
		Weights:    s.weights,
		Normalizer: s.normalizer,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := RecommendationsResponse{Matches: matches}
	if s.narrator.Enabled() {
		ctx, cancel := context.WithTimeout(r.Context(), narrativeTimeout)
		defer cancel()
		if summary, err := s.narrator.SummarizeMatches(ctx, &req.Profile, matches); err == nil {
			resp.Summary = summary
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handlePlacement predicts placement probability. With no career_id the
// prediction uses neutral signals for the career-specific contributions.
func (s *Server) handlePlacement(w http.ResponseWriter, r *http.Request) {
	var req PlacementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var target *types.CareerDefinition
	if req.CareerID != "" {
		career, ok := s.snapshot.CareerByID(req.CareerID)
		if !ok {
			err := &ErrCareerNotFound{CareerID: req.CareerID}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		target = career
	}

	prediction, err := placement.Predict(s.normalizer, &req.Profile, target)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, prediction)
}

// handleRoadmap generates a learning roadmap for a target career
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CareerID == "" {
		s.errorResponse(w, http.StatusBadRequest, "career_id is required")
		return
	}

	career, ok := s.snapshot.CareerByID(req.CareerID)
	if !ok {
		err := &ErrCareerNotFound{CareerID: req.CareerID}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := roadmap.Generate(&req.Profile, career, roadmap.Options{
		BucketSize: s.bucketSize,
		Normalizer: s.normalizer,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalysis runs ranking, placement prediction and roadmap generation
// in one request. The target career is career_id when given, otherwise the
// top-ranked match. Prediction and roadmap run concurrently once the target
// is known.
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	topN := s.topN
	if req.TopN > 0 {
		topN = req.TopN
	}

	matches, err := ranking.Rank(&req.Profile, s.snapshot.Careers, s.snapshot.Cohort, ranking.Options{
		TopN:       topN,
		Weights:    s.weights,
		Normalizer: s.normalizer,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var target *types.CareerDefinition
	switch {
	case req.CareerID != "":
		career, ok := s.snapshot.CareerByID(req.CareerID)
		if !ok {
			notFound := &ErrCareerNotFound{CareerID: req.CareerID}
			s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
			return
		}
		target = career
	case len(matches) > 0:
		target = &matches[0].Career
	}

	resp := AnalysisResponse{Matches: matches}

	g, _ := errgroup.WithContext(r.Context())
	g.Go(func() error {
		prediction, err := placement.Predict(s.normalizer, &req.Profile, target)
		if err != nil {
			return err
		}
		resp.Prediction = prediction
		return nil
	})
	if target != nil {
		g.Go(func() error {
			result, err := roadmap.Generate(&req.Profile, target, roadmap.Options{
				BucketSize: s.bucketSize,
				Normalizer: s.normalizer,
			})
			if err != nil {
				return err
			}
			resp.Roadmap = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	// Narrative enrichment is best-effort; failures leave the fields empty
	if s.narrator.Enabled() {
		ctx, cancel := context.WithTimeout(r.Context(), narrativeTimeout)
		defer cancel()
		if summary, err := s.narrator.SummarizeMatches(ctx, &req.Profile, matches); err == nil {
			resp.Summary = summary
		}
		if narrative, err := s.narrator.DescribeRoadmap(ctx, resp.Roadmap); err == nil {
			resp.RoadmapNarrative = narrative
		}
		if explanation, err := s.narrator.ExplainPrediction(ctx, resp.Prediction); err == nil {
			resp.PredictionExplanation = explanation
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListCareers lists the career catalog
func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	careers := s.snapshot.Careers
	if category != "" {
		filtered := make([]types.CareerDefinition, 0, len(careers))
		for _, c := range careers {
			if c.Category == category {
				filtered = append(filtered, c)
			}
		}
		careers = filtered
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"careers": careers,
		"total":   len(careers),
	})
}

// handleGetCareer retrieves a career by ID
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	career, ok := s.snapshot.CareerByID(id)
	if !ok {
		err := &ErrCareerNotFound{CareerID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, career)
}

// handleCreatePlan generates and persists a roadmap plus placement
// prediction for a target career
func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrPlansDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CareerID == "" {
		s.errorResponse(w, http.StatusBadRequest, "career_id is required")
		return
	}

	career, ok := s.snapshot.CareerByID(req.CareerID)
	if !ok {
		notFound := &ErrCareerNotFound{CareerID: req.CareerID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	result, err := roadmap.Generate(&req.Profile, career, roadmap.Options{
		BucketSize: s.bucketSize,
		Normalizer: s.normalizer,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	prediction, err := placement.Predict(s.normalizer, &req.Profile, career)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.SavePlan(r.Context(), career.ID, result, prediction)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":         id,
		"roadmap":    result,
		"prediction": prediction,
	})
}

// handleGetPlan retrieves a saved plan by ID
func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrPlansDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid plan ID")
		return
	}

	plan, err := s.db.GetPlan(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if plan == nil {
		notFound := &ErrPlanNotFound{PlanID: idStr}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, plan)
}

// handleListPlans lists recently saved plans
func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrPlansDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := parseQueryInt(r, "limit", 20, 100)

	plans, err := s.db.ListPlans(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if plans == nil {
		plans = []db.SavedPlan{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"plans": plans,
		"total": len(plans),
	})
}

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
