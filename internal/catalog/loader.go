package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mkaplan/careercompass/internal/types"
)

// Snapshot is an immutable view of the reference data taken once and shared
// read-only across requests. The engine never mutates it.
type Snapshot struct {
	Careers  []types.CareerDefinition
	Cohort   *types.CohortStats
	LoadedAt time.Time
}

// CareerByID finds a career in the snapshot.
func (s *Snapshot) CareerByID(id string) (*types.CareerDefinition, bool) {
	for i := range s.Careers {
		if s.Careers[i].ID == id {
			return &s.Careers[i], true
		}
	}
	return nil, false
}

// LoadCareers reads and validates a career catalog JSON file, applying
// inference defaults for optional reference fields.
func LoadCareers(path string) ([]types.CareerDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read career catalog %s: %w", path, err)
	}

	if err := validateAgainstSchema(careerSchemaFile, path, data); err != nil {
		return nil, err
	}

	var careers []types.CareerDefinition
	if err := json.Unmarshal(data, &careers); err != nil {
		return nil, fmt.Errorf("failed to parse career catalog %s: %w", path, err)
	}

	for i := range careers {
		ApplyDefaults(&careers[i])
		if err := careers[i].Validate(); err != nil {
			return nil, fmt.Errorf("career catalog %s entry %d: %w", path, i, err)
		}
	}

	return careers, nil
}

// LoadCohortStats reads and validates a cohort statistics JSON file. A
// missing file is not an error: the scorers degrade to their documented
// proxy when no cohort data exists.
func LoadCohortStats(path string) (*types.CohortStats, error) {
	if path == "" {
		return &types.CohortStats{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.CohortStats{}, nil
		}
		return nil, fmt.Errorf("failed to read cohort stats %s: %w", path, err)
	}

	if err := validateAgainstSchema(cohortSchemaFile, path, data); err != nil {
		return nil, err
	}

	var stats types.CohortStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to parse cohort stats %s: %w", path, err)
	}

	return &stats, nil
}

// LoadSnapshot loads careers and cohort stats into one immutable snapshot.
func LoadSnapshot(careersPath, cohortPath string) (*Snapshot, error) {
	careers, err := LoadCareers(careersPath)
	if err != nil {
		return nil, err
	}

	cohort, err := LoadCohortStats(cohortPath)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Careers:  careers,
		Cohort:   cohort,
		LoadedAt: time.Now(),
	}, nil
}
