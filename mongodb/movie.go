package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movielib/movie"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type movieDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Title       string        `bson:"title"`
	Genre       []string      `bson:"genre"`
	ReleaseDate time.Time     `bson:"releaseDate"`
	Description string        `bson:"description"`
}

func (d movieDocument) toMovie() movie.Movie {
	return movie.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		ReleaseDate: d.ReleaseDate.UTC().Format(movie.ReleaseDateLayout),
		Description: d.Description,
	}
}

type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	return r.find(ctx, bson.D{})
}

// MoviesByGenre matches documents whose genre array holds name as an element.
func (r *MovieRepository) MoviesByGenre(ctx context.Context, name string) ([]movie.Movie, error) {
	return r.find(ctx, bson.D{{Key: "genre", Value: name}})
}

func (r *MovieRepository) find(ctx context.Context, filter bson.D) ([]movie.Movie, error) {
	cursor, err := r.coll.Find(ctx, filter, sortByID())
	if err != nil {
		return nil, fmt.Errorf("mongodb: find movies: %w", err)
	}

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode movies: %w", err)
	}

	movies := make([]movie.Movie, len(docs))
	for i, doc := range docs {
		movies[i] = doc.toMovie()
	}
	return movies, nil
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (movie.Movie, error) {
	var doc movieDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "title", Value: title}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("mongodb: find movie: %w", err)
	}
	return doc.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	released, err := time.Parse(movie.ReleaseDateLayout, m.ReleaseDate)
	if err != nil {
		return movie.Movie{}, movie.ErrInvalidReleaseDate
	}

	doc := movieDocument{
		ID:          bson.NewObjectID(),
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: released,
		Description: m.Description,
	}
	_, err = r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return movie.Movie{}, movie.ErrDuplicateTitle
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("mongodb: insert movie: %w", err)
	}
	return doc.toMovie(), nil
}

func (r *MovieRepository) UpdateTitle(ctx context.Context, title, newTitle string) (movie.Movie, error) {
	var doc movieDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "title", Value: title}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "title", Value: newTitle}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return movie.Movie{}, movie.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return movie.Movie{}, movie.ErrDuplicateTitle
	case err != nil:
		return movie.Movie{}, fmt.Errorf("mongodb: update movie: %w", err)
	}
	return doc.toMovie(), nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return movie.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("mongodb: delete movie: %w", err)
	}
	if res.DeletedCount == 0 {
		return movie.ErrNotFound
	}
	return nil
}
