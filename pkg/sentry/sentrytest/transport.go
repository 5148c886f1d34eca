// Package sentrytest records Sentry events in memory for tests.
package sentrytest

import (
	"sync"
	"testing"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/require"
)

// DSN is a well-formed DSN that is never contacted.
const DSN = "https://public@example.com/1"

// Transport is a sentry-go transport that keeps every event it is given.
type Transport struct {
	mu     sync.Mutex
	events []*sentrygo.Event
}

func (t *Transport) Configure(sentrygo.ClientOptions) {}

func (t *Transport) SendEvent(event *sentrygo.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func (t *Transport) Flush(time.Duration) bool { return true }

func (t *Transport) Events() []*sentrygo.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*sentrygo.Event(nil), t.events...)
}

// Bind points the current hub at a client backed by a fresh Transport and
// restores the previous client when the test ends.
func Bind(t testing.TB) *Transport {
	t.Helper()

	transport := &Transport{}
	client, err := sentrygo.NewClient(sentrygo.ClientOptions{
		Dsn:       DSN,
		Transport: transport,
	})
	require.NoError(t, err)

	hub := sentrygo.CurrentHub()
	prev := hub.Client()
	hub.BindClient(client)
	t.Cleanup(func() { hub.BindClient(prev) })

	return transport
}
