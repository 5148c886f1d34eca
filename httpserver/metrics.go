package httpserver

import "github.com/labstack/echo/v4"

func (s *Server) RegisterMetricsRoutes() {
	if s.Metrics == nil {
		return
	}
	s.Router.GET("/metrics", echo.WrapHandler(s.Metrics.Handler()))
}
