package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mkaplan/careercompass/internal/types"
)

// SavedPlan is a persisted snapshot of one user's chosen career path: the
// roadmap plus the prediction that accompanied it. The engine produces these
// values; this store only records them.
type SavedPlan struct {
	ID         uuid.UUID                  `json:"id"`
	CareerID   string                     `json:"career_id"`
	CareerPath string                     `json:"career_path"`
	Roadmap    types.Roadmap              `json:"roadmap"`
	Prediction *types.PlacementPrediction `json:"prediction,omitempty"`
	CreatedAt  time.Time                  `json:"created_at"`
}

// SavePlan persists an engine output snapshot and returns its id.
func (db *DB) SavePlan(ctx context.Context, careerID string, roadmap *types.Roadmap, prediction *types.PlacementPrediction) (uuid.UUID, error) {
	roadmapJSON, err := json.Marshal(roadmap)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}

	var predictionJSON []byte
	if prediction != nil {
		predictionJSON, err = json.Marshal(prediction)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal prediction: %w", err)
		}
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO saved_plans (career_id, career_path, roadmap, prediction)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		careerID, roadmap.CareerPath, roadmapJSON, predictionJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save plan: %w", err)
	}
	return id, nil
}

// GetPlan loads a saved plan by id. Returns nil when not found.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*SavedPlan, error) {
	var plan SavedPlan
	var roadmapJSON, predictionJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, career_id, career_path, roadmap, prediction, created_at
		 FROM saved_plans WHERE id = $1`,
		id,
	).Scan(&plan.ID, &plan.CareerID, &plan.CareerPath, &roadmapJSON, &predictionJSON, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan %s: %w", id, err)
	}

	if err := json.Unmarshal(roadmapJSON, &plan.Roadmap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roadmap for plan %s: %w", id, err)
	}
	if len(predictionJSON) > 0 {
		plan.Prediction = &types.PlacementPrediction{}
		if err := json.Unmarshal(predictionJSON, plan.Prediction); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prediction for plan %s: %w", id, err)
		}
	}

	return &plan, nil
}

// ListPlans returns saved plans, newest first.
func (db *DB) ListPlans(ctx context.Context, limit int) ([]SavedPlan, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, career_id, career_path, roadmap, prediction, created_at
		 FROM saved_plans ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []SavedPlan
	for rows.Next() {
		var plan SavedPlan
		var roadmapJSON, predictionJSON []byte
		if err := rows.Scan(&plan.ID, &plan.CareerID, &plan.CareerPath, &roadmapJSON, &predictionJSON, &plan.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		if err := json.Unmarshal(roadmapJSON, &plan.Roadmap); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roadmap for plan %s: %w", plan.ID, err)
		}
		if len(predictionJSON) > 0 {
			plan.Prediction = &types.PlacementPrediction{}
			if err := json.Unmarshal(predictionJSON, plan.Prediction); err != nil {
				return nil, fmt.Errorf("failed to unmarshal prediction for plan %s: %w", plan.ID, err)
			}
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plans: %w", err)
	}

	return plans, nil
}
