package movie

import (
	"strings"
	"time"

	"movielib/errs"
)

// ReleaseDateLayout is the wire format of Movie.ReleaseDate.
const ReleaseDateLayout = "2006-01-02"

var (
	ErrInvalidTitle       = errs.Errorf(errs.EINVALID, "Title was not provided.")
	ErrInvalidGenre       = errs.Errorf(errs.EINVALID, "Genre was not provided.")
	ErrInvalidReleaseDate = errs.Errorf(errs.EINVALID, "Release date must be a date in YYYY-MM-DD format.")
	ErrInvalidDescription = errs.Errorf(errs.EINVALID, "Description was not provided.")
	ErrIDRequired         = errs.Errorf(errs.EINVALID, "No id provided.")
	ErrNotFound           = errs.Errorf(errs.ENOTFOUND, "No movies were found.")
	ErrDuplicateTitle     = errs.Errorf(errs.ECONFLICT, "A movie with this title already exists.")
)

type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       []string `json:"genre"`
	ReleaseDate string   `json:"releaseDate"`
	Description string   `json:"description"`
}

func (m Movie) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}

	if len(m.Genre) == 0 {
		return ErrInvalidGenre
	}
	for _, g := range m.Genre {
		if strings.TrimSpace(g) == "" {
			return ErrInvalidGenre
		}
	}

	if _, err := time.Parse(ReleaseDateLayout, m.ReleaseDate); err != nil {
		return ErrInvalidReleaseDate
	}

	if strings.TrimSpace(m.Description) == "" {
		return ErrInvalidDescription
	}

	return nil
}

// HasGenre reports whether name is one of the movie's genres.
func (m Movie) HasGenre(name string) bool {
	for _, g := range m.Genre {
		if g == name {
			return true
		}
	}
	return false
}

// Retitled is the title an update assigns to a movie currently titled title.
func Retitled(title string) string {
	return title + "1"
}
