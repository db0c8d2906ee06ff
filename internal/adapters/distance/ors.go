package distance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/csaszi/trip-planner/internal/ports"
)

// DefaultORSBaseURL is the public OpenRouteService API endpoint.
const DefaultORSBaseURL = "https://api.openrouteservice.org"

// ORSEstimator resolves distances through an OpenRouteService-compatible
// API: each location is geocoded to coordinates, then a driving-car matrix
// request returns distance and duration.
type ORSEstimator struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewORSEstimator builds an estimator against the given base URL and API key.
func NewORSEstimator(baseURL, apiKey string) *ORSEstimator {
	return &ORSEstimator{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Estimate geocodes origin and destination, then asks the matrix endpoint
// for the single origin→destination cell. Transient failures (429, 5xx)
// are retried with exponential backoff; the caller's context bounds the
// whole exchange.
func (e *ORSEstimator) Estimate(ctx context.Context, origin, destination string) (ports.DistanceEstimate, error) {
	from, err := e.geocode(ctx, origin)
	if err != nil {
		return ports.DistanceEstimate{}, fmt.Errorf("distance.ORSEstimator.Estimate: geocode %q: %w", origin, err)
	}
	to, err := e.geocode(ctx, destination)
	if err != nil {
		return ports.DistanceEstimate{}, fmt.Errorf("distance.ORSEstimator.Estimate: geocode %q: %w", destination, err)
	}

	reqBody := map[string]any{
		"locations":    [][2]float64{from, to},
		"sources":      []int{0},
		"destinations": []int{1},
		"metrics":      []string{"distance", "duration"},
		"units":        "km",
	}
	var resp struct {
		Distances [][]float64 `json:"distances"`
		Durations [][]float64 `json:"durations"`
	}
	err = e.postJSON(ctx, "/v2/matrix/driving-car", reqBody, &resp)
	if err != nil {
		return ports.DistanceEstimate{}, fmt.Errorf("distance.ORSEstimator.Estimate: matrix: %w", err)
	}
	if len(resp.Distances) == 0 || len(resp.Distances[0]) == 0 {
		return ports.DistanceEstimate{}, fmt.Errorf("distance.ORSEstimator.Estimate: empty matrix for %q -> %q", origin, destination)
	}

	est := ports.DistanceEstimate{DistanceKm: resp.Distances[0][0]}
	if len(resp.Durations) > 0 && len(resp.Durations[0]) > 0 {
		est.Duration = time.Duration(resp.Durations[0][0] * float64(time.Second))
	}
	return est, nil
}

// geocode resolves a free-text location to [lon, lat].
func (e *ORSEstimator) geocode(ctx context.Context, location string) ([2]float64, error) {
	q := url.Values{"text": {location}, "size": {"1"}}
	var resp struct {
		Features []struct {
			Geometry struct {
				Coordinates [2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := e.getJSON(ctx, "/geocode/search?"+q.Encode(), &resp); err != nil {
		return [2]float64{}, err
	}
	if len(resp.Features) == 0 {
		return [2]float64{}, fmt.Errorf("no geocode result")
	}
	return resp.Features[0].Geometry.Coordinates, nil
}

func (e *ORSEstimator) getJSON(ctx context.Context, path string, out any) error {
	return e.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (e *ORSEstimator) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	return e.doJSON(ctx, http.MethodPost, path, payload, out)
}

// doJSON performs one API call with backoff on 429/5xx responses.
func (e *ORSEstimator) doJSON(ctx context.Context, method, path string, body []byte, out any) error {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", e.apiKey)
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := e.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			b, _ := io.ReadAll(resp.Body)
			return retry.RetryableError(fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(b)))
		}
		if resp.StatusCode >= 400 {
			b, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(b))
		}
		return json.NewDecoder(resp.Body).Decode(out)
	})
}
