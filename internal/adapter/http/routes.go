// Package http provides the HTTP handler layer for the reward flight API.
package http

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all reward flight API routes.
// The airline segment of the path is the configured carrier code lowercased,
// so a service configured for VS serves /api/v1/airline/vs/reward-flights/...
func RegisterRoutes(e *echo.Echo, h *RewardFlightHandler, carrierCode string) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Reward flights group, scoped to the configured carrier
	flights := api.Group("/airline/" + strings.ToLower(carrierCode) + "/reward-flights")
	flights.GET("/origin/:origin/destination/:destination/from/:from/to/:to", h.RangeSearch)
	flights.GET("/origin/:origin/destination/:destination/cabin/:cabinType/cheapest", h.CheapestSearch)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *RewardFlightHandler, carrierCode string, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/airline/" + strings.ToLower(carrierCode) + "/reward-flights")
	flights.GET("/origin/:origin/destination/:destination/from/:from/to/:to", h.RangeSearch)
	flights.GET("/origin/:origin/destination/:destination/cabin/:cabinType/cheapest", h.CheapestSearch)
}
