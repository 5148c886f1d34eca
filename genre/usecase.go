package genre

import (
	"context"
	"math/rand/v2"
	"strings"
)

// suffixRange bounds the random number appended to a renamed genre.
const suffixRange = 1000

type Service interface {
	ListGenres(ctx context.Context) ([]Genre, error)
	GetGenre(ctx context.Context, name string) (Genre, error)
	AddGenre(ctx context.Context, g Genre) ([]Genre, error)
	UpdateGenre(ctx context.Context, name string) ([]Genre, error)
	DeleteGenre(ctx context.Context, id string) ([]Genre, error)
}

type Repository interface {
	AllGenres(ctx context.Context) ([]Genre, error)
	GetByName(ctx context.Context, name string) (Genre, error)
	CreateGenre(ctx context.Context, g Genre) (Genre, error)
	UpdateName(ctx context.Context, name, newName string) (Genre, error)
	DeleteByID(ctx context.Context, id string) error
}

type Usecase struct {
	r      Repository
	suffix func() int
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{
		r:      r,
		suffix: func() int { return rand.IntN(suffixRange) },
	}
}

func (uc *Usecase) ListGenres(ctx context.Context) ([]Genre, error) {
	return uc.r.AllGenres(ctx)
}

func (uc *Usecase) GetGenre(ctx context.Context, name string) (Genre, error) {
	if strings.TrimSpace(name) == "" {
		return Genre{}, ErrInvalidName
	}
	return uc.r.GetByName(ctx, name)
}

// AddGenre stores g and returns the whole collection.
func (uc *Usecase) AddGenre(ctx context.Context, g Genre) ([]Genre, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	g.Name = strings.TrimSpace(g.Name)
	if _, err := uc.r.CreateGenre(ctx, g); err != nil {
		return nil, err
	}
	return uc.r.AllGenres(ctx)
}

// UpdateGenre appends a random number to the genre's name and returns the
// whole collection.
func (uc *Usecase) UpdateGenre(ctx context.Context, name string) ([]Genre, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	existing, err := uc.r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := uc.r.UpdateName(ctx, existing.Name, Renamed(existing.Name, uc.suffix())); err != nil {
		return nil, err
	}
	return uc.r.AllGenres(ctx)
}

func (uc *Usecase) DeleteGenre(ctx context.Context, id string) ([]Genre, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := uc.r.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	return uc.r.AllGenres(ctx)
}
