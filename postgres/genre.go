package postgres

import (
	"context"
	"fmt"

	"movielib/genre"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenreModel represents the database model for genres
type GenreModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null;uniqueIndex"`
}

// TableName specifies the table name for GORM
func (GenreModel) TableName() string {
	return "genres"
}

func (m GenreModel) toGenre() genre.Genre {
	return genre.Genre{
		ID:   formatID(m.ID),
		Name: m.Name,
	}
}

// GenreRepository implements genre.Repository interface
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new genre repository
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) AllGenres(ctx context.Context) ([]genre.Genre, error) {
	var models []GenreModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("postgres: list genres: %w", err)
	}

	genres := make([]genre.Genre, len(models))
	for i, model := range models {
		genres[i] = model.toGenre()
	}
	return genres, nil
}

func (r *GenreRepository) GetByName(ctx context.Context, name string) (genre.Genre, error) {
	var model GenreModel
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	if isNotFound(err) {
		return genre.Genre{}, genre.ErrNotFound
	}
	if err != nil {
		return genre.Genre{}, fmt.Errorf("postgres: get genre: %w", err)
	}
	return model.toGenre(), nil
}

func (r *GenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	model := GenreModel{Name: g.Name}
	err := r.db.WithContext(ctx).Create(&model).Error
	if isDuplicate(err) {
		return genre.Genre{}, genre.ErrDuplicateName
	}
	if err != nil {
		return genre.Genre{}, fmt.Errorf("postgres: create genre: %w", err)
	}
	return model.toGenre(), nil
}

func (r *GenreRepository) UpdateName(ctx context.Context, name, newName string) (genre.Genre, error) {
	var model GenreModel
	res := r.db.WithContext(ctx).
		Model(&model).
		Clauses(clause.Returning{}).
		Where("name = ?", name).
		Update("name", newName)
	if isDuplicate(res.Error) {
		return genre.Genre{}, genre.ErrDuplicateName
	}
	if res.Error != nil {
		return genre.Genre{}, fmt.Errorf("postgres: update genre: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return genre.Genre{}, genre.ErrNotFound
	}
	return model.toGenre(), nil
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id string) error {
	key, ok := parseID(id)
	if !ok {
		return genre.ErrNotFound
	}

	res := r.db.WithContext(ctx).Delete(&GenreModel{}, key)
	if res.Error != nil {
		return fmt.Errorf("postgres: delete genre: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return genre.ErrNotFound
	}
	return nil
}
