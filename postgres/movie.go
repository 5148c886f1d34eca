package postgres

import (
	"context"
	"fmt"
	"time"

	"movielib/movie"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"not null;uniqueIndex"`
	Genre       pq.StringArray `gorm:"type:text[];not null"`
	ReleaseDate time.Time      `gorm:"type:date;not null"`
	Description string         `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

func (m MovieModel) toMovie() movie.Movie {
	return movie.Movie{
		ID:          formatID(m.ID),
		Title:       m.Title,
		Genre:       []string(m.Genre),
		ReleaseDate: m.ReleaseDate.Format(movie.ReleaseDateLayout),
		Description: m.Description,
	}
}

func toMovies(models []MovieModel) []movie.Movie {
	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = model.toMovie()
	}
	return movies
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("postgres: list movies: %w", err)
	}
	return toMovies(models), nil
}

func (r *MovieRepository) MoviesByGenre(ctx context.Context, genre string) ([]movie.Movie, error) {
	var models []MovieModel
	err := r.db.WithContext(ctx).
		Where("? = ANY(genre)", genre).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("postgres: list movies by genre: %w", err)
	}
	return toMovies(models), nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (movie.Movie, error) {
	var model MovieModel
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&model).Error
	if isNotFound(err) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("postgres: get movie: %w", err)
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	released, err := time.Parse(movie.ReleaseDateLayout, m.ReleaseDate)
	if err != nil {
		return movie.Movie{}, movie.ErrInvalidReleaseDate
	}

	model := MovieModel{
		Title:       m.Title,
		Genre:       pq.StringArray(m.Genre),
		ReleaseDate: released,
		Description: m.Description,
	}
	err = r.db.WithContext(ctx).Create(&model).Error
	if isDuplicate(err) {
		return movie.Movie{}, movie.ErrDuplicateTitle
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("postgres: create movie: %w", err)
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) UpdateTitle(ctx context.Context, title, newTitle string) (movie.Movie, error) {
	var model MovieModel
	res := r.db.WithContext(ctx).
		Model(&model).
		Clauses(clause.Returning{}).
		Where("title = ?", title).
		Update("title", newTitle)
	if isDuplicate(res.Error) {
		return movie.Movie{}, movie.ErrDuplicateTitle
	}
	if res.Error != nil {
		return movie.Movie{}, fmt.Errorf("postgres: update movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return movie.Movie{}, movie.ErrNotFound
	}
	return model.toMovie(), nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	key, ok := parseID(id)
	if !ok {
		return movie.ErrNotFound
	}

	res := r.db.WithContext(ctx).Delete(&MovieModel{}, key)
	if res.Error != nil {
		return fmt.Errorf("postgres: delete movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return movie.ErrNotFound
	}
	return nil
}
