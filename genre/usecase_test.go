// nolint: funlen
package genre_test

import (
	"context"
	"strings"
	"testing"

	"movielib/genre"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) AllGenres(ctx context.Context) ([]genre.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByName(ctx context.Context, name string) (genre.Genre, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) UpdateName(ctx context.Context, name, newName string) (genre.Genre, error) {
	args := m.Called(ctx, name, newName)
	return args.Get(0).(genre.Genre), args.Error(1)
}

func (m *MockGenreRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGenreValidate(t *testing.T) {
	tests := []struct {
		name     string
		genre    genre.Genre
		expected error
	}{
		{name: "valid name", genre: genre.Genre{Name: "Action"}, expected: nil},
		{name: "minimum length", genre: genre.Genre{Name: "War"}, expected: nil},
		{name: "maximum length", genre: genre.Genre{Name: strings.Repeat("a", 30)}, expected: nil},
		{name: "empty name", genre: genre.Genre{Name: ""}, expected: genre.ErrInvalidName},
		{name: "blank name", genre: genre.Genre{Name: "   "}, expected: genre.ErrInvalidName},
		{name: "too short", genre: genre.Genre{Name: "Ac"}, expected: genre.ErrNameLength},
		{name: "too long", genre: genre.Genre{Name: strings.Repeat("a", 31)}, expected: genre.ErrNameLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.genre.Validate())
		})
	}
}

func TestAddGenre(t *testing.T) {
	r := new(MockGenreRepository)
	uc := genre.NewUsecase(r)

	t.Run("should add genre and return the collection", func(t *testing.T) {
		g := genre.Genre{Name: "Action"}
		stored := genre.Genre{ID: "1", Name: "Action"}
		r.On("CreateGenre", mock.Anything, g).Return(stored, nil).Once()
		r.On("AllGenres", mock.Anything).Return([]genre.Genre{stored}, nil).Once()

		result, err := uc.AddGenre(context.Background(), g)

		assert.NoError(t, err)
		assert.Equal(t, []genre.Genre{stored}, result)
		r.AssertExpectations(t)
	})

	t.Run("should not persist a name shorter than 3 characters", func(t *testing.T) {
		g := genre.Genre{Name: "Ac"}

		_, err := uc.AddGenre(context.Background(), g)

		assert.Equal(t, genre.ErrNameLength, err)
		r.AssertNotCalled(t, "CreateGenre", mock.Anything, g)
	})
}

func TestUpdateGenre(t *testing.T) {
	r := new(MockGenreRepository)
	uc := genre.NewUsecase(r)

	t.Run("should rename with a random suffix", func(t *testing.T) {
		existing := genre.Genre{ID: "1", Name: "Action"}
		isRenamed := mock.MatchedBy(func(newName string) bool {
			return strings.HasPrefix(newName, "Action ") && newName != "Action"
		})
		r.On("GetByName", mock.Anything, "Action").Return(existing, nil).Once()
		r.On("UpdateName", mock.Anything, "Action", isRenamed).Return(genre.Genre{ID: "1", Name: "Action 7"}, nil).Once()
		r.On("AllGenres", mock.Anything).Return([]genre.Genre{{ID: "1", Name: "Action 7"}}, nil).Once()

		result, err := uc.UpdateGenre(context.Background(), "Action")

		assert.NoError(t, err)
		assert.NotEqual(t, "Action", result[0].Name)
		r.AssertExpectations(t)
	})

	t.Run("should fail when the genre does not exist", func(t *testing.T) {
		r.On("GetByName", mock.Anything, "Comedya").Return(genre.Genre{}, genre.ErrNotFound).Once()

		_, err := uc.UpdateGenre(context.Background(), "Comedya")

		assert.Equal(t, genre.ErrNotFound, err)
	})
}

func TestDeleteGenre(t *testing.T) {
	r := new(MockGenreRepository)
	uc := genre.NewUsecase(r)

	t.Run("should delete once then report not found", func(t *testing.T) {
		r.On("DeleteByID", mock.Anything, "1").Return(nil).Once()
		r.On("AllGenres", mock.Anything).Return([]genre.Genre{}, nil).Once()
		r.On("DeleteByID", mock.Anything, "1").Return(genre.ErrNotFound).Once()

		_, err := uc.DeleteGenre(context.Background(), "1")
		assert.NoError(t, err)

		_, err = uc.DeleteGenre(context.Background(), "1")
		assert.Equal(t, genre.ErrNotFound, err)
		r.AssertExpectations(t)
	})

	t.Run("should require an id", func(t *testing.T) {
		_, err := uc.DeleteGenre(context.Background(), "")

		assert.Equal(t, genre.ErrIDRequired, err)
	})
}

func TestRenamed(t *testing.T) {
	assert.Equal(t, "Action 42", genre.Renamed("Action", 42))

	t.Run("may exceed the create limit", func(t *testing.T) {
		longest := strings.Repeat("x", genre.MaxNameLength)
		require.NoError(t, genre.Genre{Name: longest}.Validate())

		renamed := genre.Renamed(longest, 999)

		assert.Len(t, renamed, genre.MaxNameLength+4)
		assert.Equal(t, genre.ErrNameLength, genre.Genre{Name: renamed}.Validate())
	})
}
