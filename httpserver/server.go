package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"movielib/errs"
	"movielib/genre"
	"movielib/movie"
	"movielib/pkg/config"
	"movielib/pkg/logger"
	"movielib/pkg/metrics"
	"movielib/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultAddr      = ":3000"
	defaultRateLimit = 20
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	Config  *config.Config
	Logger  *zap.SugaredLogger
	Metrics *metrics.Metrics

	MovieService movie.Service
	GenreService genre.Service
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router: echo.New(),
		Addr:   defaultAddr,
		Config: config.Empty,
		Logger: logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	if s.Config.Port > 0 {
		s.Addr = fmt.Sprintf(":%d", s.Config.Port)
	}
	s.AllowOrigins = []string{"*"}
	if s.Config.AllowOrigins != "" {
		s.AllowOrigins = strings.Split(s.Config.AllowOrigins, ",")
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterMetricsRoutes()
	s.RegisterMovieRoutes(s.Router.Group("/movies"))
	s.RegisterGenreRoutes(s.Router.Group("/genres"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	// metrics wraps everything else so it observes the final status
	if s.Metrics != nil {
		s.Router.Use(s.Metrics.Middleware())
	}
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	limit := s.Config.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}
	s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(limit))))

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}

	if s.Config.RequestTimeout > 0 {
		s.Router.Use(middleware.ContextTimeout(s.Config.RequestTimeout))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// handleError is the router's HTTPErrorHandler. Application errors are
// mapped to their status, unmatched routes get the plain not-found body,
// and anything unexpected is logged, reported and hidden behind a generic
// message.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := s.errorResponse(err, c)
	if err := c.JSON(status, body); err != nil {
		s.Logger.Errorw("write error response", "error", err, "request_id", s.requestID(c))
	}
}

func (s *Server) errorResponse(err error, c echo.Context) (int, interface{}) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, notFoundResponse()
		}
		if he.Code >= http.StatusInternalServerError {
			s.reportError(c, err)
		}
		return he.Code, newErrorResponse(fmt.Sprint(he.Message))
	}

	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return http.StatusBadRequest, appErrorResponse(err)
	case errs.ENOTFOUND:
		return http.StatusNotFound, appErrorResponse(err)
	case errs.ECONFLICT:
		return http.StatusConflict, appErrorResponse(err)
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized, appErrorResponse(err)
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented, appErrorResponse(err)
	}

	s.reportError(c, err)
	return http.StatusInternalServerError, newErrorResponse(unexpectedErrorMessage)
}

func (s *Server) reportError(c echo.Context, err error) {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
	)
	sentry.WithContext(c).
		WithTags(map[string]string{"request_id": s.requestID(c)}).
		Error(err)
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
