// Package sentry reports request errors to Sentry. Nothing is sent when
// APP_ENV is "local" or SENTRY_DSN is empty.
package sentry

import (
	"os"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// FlushTime bounds how long shutdown waits for buffered events.
var FlushTime = 2 * time.Second

// Report collects the scope of a single event.
type Report struct {
	context echo.Context
	tags    map[string]string
}

func WithContext(c echo.Context) *Report {
	return &Report{context: c}
}

func (r *Report) WithTags(tags map[string]string) *Report {
	r.tags = tags
	return r
}

// Error captures err as an exception at error level. A nil err is ignored.
func (r *Report) Error(err error) {
	if !enabled() || err == nil {
		return
	}
	hub := r.hub()
	hub.WithScope(func(scope *sentrygo.Scope) {
		scope.SetLevel(sentrygo.LevelError)
		for k, v := range r.tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}

// hub prefers the request-scoped hub installed by the sentryecho middleware.
func (r *Report) hub() *sentrygo.Hub {
	if r.context != nil {
		if hub := sentryecho.GetHubFromContext(r.context); hub != nil {
			return hub
		}
	}
	return sentrygo.CurrentHub()
}

func enabled() bool {
	return os.Getenv("APP_ENV") != "local" && os.Getenv("SENTRY_DSN") != ""
}
