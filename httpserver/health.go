package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/health-check", s.healthCheck)
	s.Router.GET("/about", s.about)
	// "/ab?cd": the "b" is optional
	s.Router.GET("/abcd", s.abcd)
	s.Router.GET("/acd", s.abcd)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health-check [get]
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "Server is working!",
	})
}

func (s *Server) about(c echo.Context) error {
	return c.String(http.StatusOK, "about")
}

func (s *Server) abcd(c echo.Context) error {
	return c.String(http.StatusOK, "ab?cd")
}
