package errs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"movielib/errs"
	"movielib/genre"
	"movielib/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	tests := []struct {
		err     *errs.Error
		code    string
		message string
	}{
		{err: movie.ErrInvalidTitle, code: errs.EINVALID, message: "Title was not provided."},
		{err: movie.ErrNotFound, code: errs.ENOTFOUND, message: "No movies were found."},
		{err: movie.ErrDuplicateTitle, code: errs.ECONFLICT, message: "A movie with this title already exists."},
		{err: genre.ErrNameLength, code: errs.EINVALID, message: "Genre name must be between 3 and 30 characters."},
		{err: genre.ErrNotFound, code: errs.ENOTFOUND, message: "No genres were found."},
		{err: genre.ErrDuplicateName, code: errs.ECONFLICT, message: "A genre with this name already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.code, errs.ErrorCode(tt.err))
			assert.Equal(t, tt.message, errs.ErrorMessage(tt.err))
			assert.Equal(t, fmt.Sprintf("application error: code=%s message=%s", tt.code, tt.message), tt.err.Error())
		})
	}
}

func TestErrorCode_Wrapped(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrapped movie not found", err: fmt.Errorf("delete 42: %w", movie.ErrNotFound), want: errs.ENOTFOUND},
		{name: "doubly wrapped duplicate name", err: fmt.Errorf("add: %w", fmt.Errorf("insert: %w", genre.ErrDuplicateName)), want: errs.ECONFLICT},
		{name: "storage failure", err: errors.New("pq: connection refused"), want: errs.EINTERNAL},
		{name: "deadline", err: context.DeadlineExceeded, want: errs.EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage_HidesNonApplicationErrors(t *testing.T) {
	assert.Empty(t, errs.ErrorMessage(nil))
	assert.Equal(t, "Internal error.", errs.ErrorMessage(errors.New("mongo: no reachable servers")))
	assert.Equal(t, "No genres were found.", errs.ErrorMessage(fmt.Errorf("get: %w", genre.ErrNotFound)))
}

func TestWithFields(t *testing.T) {
	t.Run("returns a copy and leaves the sentinel untouched", func(t *testing.T) {
		err := movie.ErrInvalidTitle.WithFields(errs.FieldError{Field: "title", Message: "title was not provided."})

		assert.NotSame(t, movie.ErrInvalidTitle, err)
		assert.Empty(t, movie.ErrInvalidTitle.Fields)
		assert.Equal(t, movie.ErrInvalidTitle.Code, err.Code)
		assert.Equal(t, movie.ErrInvalidTitle.Message, err.Message)
		assert.Equal(t, []errs.FieldError{{Field: "title", Message: "title was not provided."}}, err.Fields)
	})

	t.Run("errors.Is no longer matches the sentinel", func(t *testing.T) {
		err := genre.ErrNameLength.WithFields(errs.FieldError{Field: "name", Message: "name is too short."})

		assert.False(t, errors.Is(err, genre.ErrNameLength))
		assert.Equal(t, errs.EINVALID, errs.ErrorCode(err))
	})

	t.Run("field slice is not shared with the caller", func(t *testing.T) {
		fields := []errs.FieldError{{Field: "genre", Message: "genre was not provided."}}
		err := movie.ErrInvalidGenre.WithFields(fields...)

		fields[0].Message = "changed"

		require.Len(t, err.Fields, 1)
		assert.Equal(t, "genre was not provided.", err.Fields[0].Message)
	})
}

func TestErrorFields(t *testing.T) {
	err := errs.Errorf(errs.EINVALID, "Validation failed.").WithFields(
		errs.FieldError{Field: "releaseDate", Message: "releaseDate must be a date."},
	)

	assert.Equal(t, []errs.FieldError{{Field: "releaseDate", Message: "releaseDate must be a date."}}, errs.ErrorFields(fmt.Errorf("bind: %w", err)))
	assert.Nil(t, errs.ErrorFields(movie.ErrNotFound))
	assert.Nil(t, errs.ErrorFields(errors.New("plain")))
	assert.Nil(t, errs.ErrorFields(nil))
}
