package db

import (
	"context"
	"fmt"

	"github.com/mkaplan/careercompass/internal/catalog"
	"github.com/mkaplan/careercompass/internal/types"
)

// ListCareers loads the full career catalog. Ordered by id for a stable
// snapshot across refreshes.
func (db *DB) ListCareers(ctx context.Context) ([]types.CareerDefinition, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, category, description, difficulty_level,
		        required_skills, related_interests, growth_score, salary,
		        learning_duration_months, demand, experience_min, experience_max,
		        industries, top_companies, trending
		 FROM careers
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	var careers []types.CareerDefinition
	for rows.Next() {
		var career types.CareerDefinition
		var difficulty, demand string
		var experienceMin, experienceMax *int
		err := rows.Scan(
			&career.ID, &career.Title, &career.Category, &career.Description, &difficulty,
			&career.RequiredSkills, &career.RelatedInterests, &career.GrowthScore, &career.Salary,
			&career.LearningDurationMonths, &demand, &experienceMin, &experienceMax,
			&career.Industries, &career.TopCompanies, &career.Trending,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}

		career.DifficultyLevel = types.ExperienceLevel(difficulty)
		career.Demand = types.DemandLevel(demand)
		if experienceMin != nil && experienceMax != nil {
			career.ExperienceRange = &types.ExperienceRange{Min: *experienceMin, Max: *experienceMax}
		}
		catalog.ApplyDefaults(&career)

		careers = append(careers, career)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read careers: %w", err)
	}

	return careers, nil
}

// GetCareer loads a single career by id. Returns nil when not found.
func (db *DB) GetCareer(ctx context.Context, id string) (*types.CareerDefinition, error) {
	careers, err := db.ListCareers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range careers {
		if careers[i].ID == id {
			return &careers[i], nil
		}
	}
	return nil, nil
}

// LoadSnapshot assembles a catalog snapshot from the database, pairing the
// career list with the cohort aggregates.
func (db *DB) LoadSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	careers, err := db.ListCareers(ctx)
	if err != nil {
		return nil, err
	}

	cohort, err := db.LoadCohortStats(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &catalog.Snapshot{Careers: careers, Cohort: cohort}
	return snapshot, nil
}

// UpsertCareer writes a catalog entry. Used by the admin import path, not by
// the scoring pipeline.
func (db *DB) UpsertCareer(ctx context.Context, career *types.CareerDefinition) error {
	if err := career.Validate(); err != nil {
		return fmt.Errorf("invalid career: %w", err)
	}

	var experienceMin, experienceMax *int
	if career.ExperienceRange != nil {
		experienceMin = &career.ExperienceRange.Min
		experienceMax = &career.ExperienceRange.Max
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO careers (id, title, category, description, difficulty_level,
		        required_skills, related_interests, growth_score, salary,
		        learning_duration_months, demand, experience_min, experience_max,
		        industries, top_companies, trending, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		        title = $2, category = $3, description = $4, difficulty_level = $5,
		        required_skills = $6, related_interests = $7, growth_score = $8, salary = $9,
		        learning_duration_months = $10, demand = $11, experience_min = $12,
		        experience_max = $13, industries = $14, top_companies = $15,
		        trending = $16, updated_at = NOW()`,
		career.ID, career.Title, career.Category, career.Description, string(career.DifficultyLevel),
		career.RequiredSkills, career.RelatedInterests, career.GrowthScore, career.Salary,
		career.LearningDurationMonths, string(career.Demand), experienceMin, experienceMax,
		career.Industries, career.TopCompanies, career.Trending,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert career %s: %w", career.ID, err)
	}
	return nil
}

// LoadCohortStats loads the precomputed cohort aggregates.
func (db *DB) LoadCohortStats(ctx context.Context) (*types.CohortStats, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT category, min_years, max_years, selection_share, success_rate, sample_size
		 FROM cohort_buckets
		 ORDER BY category, min_years`)
	if err != nil {
		return nil, fmt.Errorf("failed to load cohort stats: %w", err)
	}
	defer rows.Close()

	stats := &types.CohortStats{}
	for rows.Next() {
		var bucket types.CohortBucket
		if err := rows.Scan(&bucket.Category, &bucket.MinYears, &bucket.MaxYears,
			&bucket.SelectionShare, &bucket.SuccessRate, &bucket.SampleSize); err != nil {
			return nil, fmt.Errorf("failed to scan cohort bucket: %w", err)
		}
		stats.Buckets = append(stats.Buckets, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cohort stats: %w", err)
	}

	return stats, nil
}
