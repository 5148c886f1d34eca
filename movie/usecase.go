package movie

import (
	"context"
	"strings"

	"movielib/errs"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	ListMoviesByGenre(ctx context.Context, genre string) ([]Movie, error)
	GetMovie(ctx context.Context, title string) (Movie, error)
	AddMovie(ctx context.Context, m Movie) ([]Movie, error)
	UpdateMovie(ctx context.Context, title string) ([]Movie, error)
	DeleteMovie(ctx context.Context, id string) ([]Movie, error)
}

type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	MoviesByGenre(ctx context.Context, genre string) ([]Movie, error)
	GetByTitle(ctx context.Context, title string) (Movie, error)
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	UpdateTitle(ctx context.Context, title, newTitle string) (Movie, error)
	DeleteByID(ctx context.Context, id string) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) ListMoviesByGenre(ctx context.Context, genre string) ([]Movie, error) {
	movies, err := uc.r.MoviesByGenre(ctx, genre)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, errs.Errorf(errs.ENOTFOUND, "No movies with genre %q were found.", genre)
	}
	return movies, nil
}

func (uc *Usecase) GetMovie(ctx context.Context, title string) (Movie, error) {
	if strings.TrimSpace(title) == "" {
		return Movie{}, ErrInvalidTitle
	}
	return uc.r.GetByTitle(ctx, title)
}

// AddMovie stores m and returns the whole collection.
func (uc *Usecase) AddMovie(ctx context.Context, m Movie) ([]Movie, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if _, err := uc.r.CreateMovie(ctx, m); err != nil {
		return nil, err
	}
	return uc.r.AllMovies(ctx)
}

// UpdateMovie renames the movie titled title (see Retitled) and returns the
// whole collection. Caller-supplied movie data is never applied.
func (uc *Usecase) UpdateMovie(ctx context.Context, title string) ([]Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}

	existing, err := uc.r.GetByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	if _, err := uc.r.UpdateTitle(ctx, existing.Title, Retitled(existing.Title)); err != nil {
		return nil, err
	}
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id string) ([]Movie, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := uc.r.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.r.AllMovies(ctx)
}
