package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mkaplan/careercompass/internal/types"
)

func TestSavedPlanType(t *testing.T) {
	id := uuid.New()
	plan := SavedPlan{
		ID:         id,
		CareerID:   "backend-developer",
		CareerPath: "Backend Developer",
		Roadmap: types.Roadmap{
			CareerPath:    "Backend Developer",
			TotalDuration: "24 weeks",
		},
		CreatedAt: time.Now(),
	}

	assert.Equal(t, id, plan.ID)
	assert.Equal(t, "backend-developer", plan.CareerID)
	assert.Equal(t, "Backend Developer", plan.Roadmap.CareerPath)
	assert.Nil(t, plan.Prediction)
}
