// Package distance contains adapters implementing ports.DistanceEstimator.
package distance

import (
	"context"
	"fmt"
	"time"

	"github.com/csaszi/trip-planner/internal/ports"
)

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}

// StaticPair seeds a StaticEstimator with one known origin→destination pair.
type StaticPair struct {
	From, To string
	Km       float64
	Minutes  int
}

// StaticEstimator serves distances from a fixed table. It backs tests and
// local development where no routing service is configured.
type StaticEstimator struct {
	m map[string]ports.DistanceEstimate
}

// NewStaticEstimator builds an estimator answering only the given pairs.
func NewStaticEstimator(pairs []StaticPair) *StaticEstimator {
	m := make(map[string]ports.DistanceEstimate, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = ports.DistanceEstimate{
			DistanceKm: p.Km,
			Duration:   minutes(p.Minutes),
		}
	}
	return &StaticEstimator{m: m}
}

// Estimate returns the seeded estimate, or an error for unknown pairs.
func (e *StaticEstimator) Estimate(_ context.Context, origin, destination string) (ports.DistanceEstimate, error) {
	r, ok := e.m[origin+"|"+destination]
	if !ok {
		return ports.DistanceEstimate{}, fmt.Errorf("distance.StaticEstimator: unknown pair %q -> %q", origin, destination)
	}
	return r, nil
}
