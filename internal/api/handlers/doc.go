// Package handlers implements the HTTP surface of emag-catalog: the catalog
// operations as a Huma API and the liveness and readiness probes.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
