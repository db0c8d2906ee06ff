// Package ports defines the contracts for external collaborators the
// application depends on. The timeline engine never calls these itself —
// estimated values are fed back into the engine as plain data.
package ports

import (
	"context"
	"time"
)

// DistanceEstimate is the resolved driving distance and duration between
// two free-text locations.
type DistanceEstimate struct {
	DistanceKm float64
	Duration   time.Duration
}

// DistanceEstimator resolves a driving distance between two locations.
// Implementations own their retry, timeout, and fallback behavior; callers
// only ever see a final estimate or an error.
type DistanceEstimator interface {
	Estimate(ctx context.Context, origin, destination string) (DistanceEstimate, error)
}
