// Package server provides the HTTP REST API for the career compass engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mkaplan/careercompass/internal/types"
)

// ErrCareerNotFound indicates the requested career is not in the catalog
type ErrCareerNotFound struct {
	CareerID string
}

func (e *ErrCareerNotFound) Error() string {
	return fmt.Sprintf("career not found: %s", e.CareerID)
}

// ErrPlanNotFound indicates a saved plan was not found
type ErrPlanNotFound struct {
	PlanID string
}

func (e *ErrPlanNotFound) Error() string {
	return fmt.Sprintf("plan not found: %s", e.PlanID)
}

// ErrPlansDisabled indicates plan persistence is not configured
type ErrPlansDisabled struct{}

func (e *ErrPlansDisabled) Error() string {
	return "plan persistence is not configured (no database)"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *types.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ErrCareerNotFound, *ErrPlanNotFound:
		return http.StatusNotFound
	case *ErrPlansDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
