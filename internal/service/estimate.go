package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/ports"
)

// EstimateService resolves driving distances through the configured
// estimator. The result is plain data the UI writes back onto activities
// and day plans — the timeline engine never sees the estimator.
type EstimateService struct {
	estimator ports.DistanceEstimator
}

// NewEstimateService constructs an EstimateService over the given estimator.
func NewEstimateService(estimator ports.DistanceEstimator) *EstimateService {
	return &EstimateService{estimator: estimator}
}

// Distance returns the estimated driving distance between two locations.
// Returns domain.ErrValidation when either location is blank.
func (s *EstimateService) Distance(ctx context.Context, origin, destination string) (ports.DistanceEstimate, error) {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return ports.DistanceEstimate{}, fmt.Errorf("%w: origin and destination are required", domain.ErrValidation)
	}
	est, err := s.estimator.Estimate(ctx, origin, destination)
	if err != nil {
		return ports.DistanceEstimate{}, fmt.Errorf("service.EstimateService.Distance: %w", err)
	}
	return est, nil
}
