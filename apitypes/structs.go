// Package apitypes defines the request and response payloads of the DuoPad
// control API.
package apitypes

import "fmt"

// ApiError represents an RFC 7807 (problem+json) error response.
type ApiError struct {
	// Status is the HTTP-style status code (e.g., 400, 404, 500)
	Status int `json:"status"`
	// Title is a short, human-readable summary of the problem type
	Title string `json:"title"`
	// Detail is a human-readable explanation specific to this occurrence
	Detail string `json:"detail"`
}

func (e ApiError) Error() string {
	if e.Status == 0 && e.Title == "" {
		return "unknown error"
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
}

// --

type PingResponse struct {
	Server  string `json:"server"`
	Version string `json:"version"`
}

// StatusResponse describes the lifecycle state of the merger.
type StatusResponse struct {
	Initialized     bool `json:"initialized"`
	Running         bool `json:"running"`
	Player1Assigned bool `json:"player1Assigned"`
	Player2Assigned bool `json:"player2Assigned"`
}

// OutputResponse is returned by output/start and output/stop.
type OutputResponse struct {
	Running bool `json:"running"`
}

// StateResponse is a read-only view of one snapshot (player1, player2 or
// merged), keyed by canonical button and axis names.
type StateResponse struct {
	Buttons map[string]bool    `json:"buttons"`
	Axes    map[string]float64 `json:"axes"`
}
