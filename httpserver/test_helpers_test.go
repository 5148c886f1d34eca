package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"movielib/genre"
	"movielib/httpserver"
	"movielib/movie"
	"movielib/pkg/config"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{RateLimit: 1000}
}

func mustCreateServer(t testing.TB, options ...httpserver.Options) *httpserver.Server {
	t.Helper()
	opts := append([]httpserver.Options{httpserver.WithConfig(testConfig())}, options...)
	server, err := httpserver.New(opts...)
	require.NoError(t, err)
	return server
}

func doJSON(server *httpserver.Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func doRaw(server *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t testing.TB, rec *httptest.ResponseRecorder) httpserver.ErrorResponse {
	t.Helper()
	var resp httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func decodeBody[T any](t testing.TB, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]movie.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) ListMoviesByGenre(ctx context.Context, name string) ([]movie.Movie, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, title string) (movie.Movie, error) {
	args := m.Called(ctx, title)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) ([]movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, title string) ([]movie.Movie, error) {
	args := m.Called(ctx, title)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id string) ([]movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

type MockGenreService struct {
	mock.Mock
}

func (m *MockGenreService) ListGenres(ctx context.Context) ([]genre.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]genre.Genre), args.Error(1)
}

func (m *MockGenreService) GetGenre(ctx context.Context, name string) (genre.Genre, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreService) AddGenre(ctx context.Context, g genre.Genre) ([]genre.Genre, error) {
	args := m.Called(ctx, g)
	return args.Get(0).([]genre.Genre), args.Error(1)
}

func (m *MockGenreService) UpdateGenre(ctx context.Context, name string) ([]genre.Genre, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]genre.Genre), args.Error(1)
}

func (m *MockGenreService) DeleteGenre(ctx context.Context, id string) ([]genre.Genre, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]genre.Genre), args.Error(1)
}
