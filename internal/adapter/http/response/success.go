// Package response provides standardized HTTP response builders for the reward flight API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// PageResults writes a 200 OK response with a page of search results.
func PageResults(c echo.Context, page interface{}) error {
	return c.JSON(http.StatusOK, page)
}
