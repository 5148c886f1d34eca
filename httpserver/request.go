package httpserver

import (
	"net/url"
	"strings"

	"movielib/errs"
	"movielib/genre"
	"movielib/movie"

	"github.com/labstack/echo/v4"
)

var errMalformedBody = errs.Errorf(errs.EINVALID, "Request body must be valid JSON.")

type AddMovieRequest struct {
	Title       string   `json:"title" validate:"required,notblank"`
	Genre       []string `json:"genre" validate:"required,min=1,dive,required,notblank"`
	ReleaseDate string   `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Description string   `json:"description" validate:"required,notblank"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	genres := make([]string, 0, len(r.Genre))
	for _, g := range r.Genre {
		genres = append(genres, strings.TrimSpace(g))
	}
	return movie.Movie{
		Title:       strings.TrimSpace(r.Title),
		Genre:       genres,
		ReleaseDate: r.ReleaseDate,
		Description: r.Description,
	}
}

type AddGenreRequest struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=30"`
}

func (r AddGenreRequest) ToGenre() genre.Genre {
	return genre.Genre{Name: r.Name}
}

// bindAndValidate decodes the JSON body into req and runs the router's
// validator on it. Decoding failures are reported as invalid input.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errMalformedBody
	}
	return c.Validate(req)
}

// pathParam returns the decoded value of a path parameter. The router
// matches on the raw path only when the request carries one, so the
// parameter is still escaped in that case and already decoded otherwise.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
