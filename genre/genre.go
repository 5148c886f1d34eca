package genre

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"movielib/errs"
)

const (
	MinNameLength = 3
	MaxNameLength = 30
)

var (
	ErrInvalidName   = errs.Errorf(errs.EINVALID, "Genre name was not provided.")
	ErrNameLength    = errs.Errorf(errs.EINVALID, "Genre name must be between %d and %d characters.", MinNameLength, MaxNameLength)
	ErrIDRequired    = errs.Errorf(errs.EINVALID, "Id not provided.")
	ErrNotFound      = errs.Errorf(errs.ENOTFOUND, "No genres were found.")
	ErrDuplicateName = errs.Errorf(errs.ECONFLICT, "A genre with this name already exists.")
)

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (g Genre) Validate() error {
	name := strings.TrimSpace(g.Name)
	if name == "" {
		return ErrInvalidName
	}

	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return ErrNameLength
	}

	return nil
}

// Renamed is the name an update assigns to a genre currently named name.
func Renamed(name string, suffix int) string {
	return fmt.Sprintf("%s %d", name, suffix)
}
