package httpserver

import (
	"movielib/genre"
	"movielib/movie"
	"movielib/pkg/config"
	"movielib/pkg/metrics"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		s.Config = cfg
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		s.Logger = l
		return nil
	}
}

func WithMetrics(m *metrics.Metrics) Options {
	return func(s *Server) error {
		s.Metrics = m
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithGenreService(svc genre.Service) Options {
	return func(s *Server) error {
		s.GenreService = svc
		return nil
	}
}
