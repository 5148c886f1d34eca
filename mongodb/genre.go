package mongodb

import (
	"context"
	"errors"
	"fmt"

	"movielib/genre"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type genreDocument struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"name"`
}

func (d genreDocument) toGenre() genre.Genre {
	return genre.Genre{ID: d.ID.Hex(), Name: d.Name}
}

type GenreRepository struct {
	coll *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{coll: db.Collection(genresCollection)}
}

func (r *GenreRepository) AllGenres(ctx context.Context) ([]genre.Genre, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, sortByID())
	if err != nil {
		return nil, fmt.Errorf("mongodb: find genres: %w", err)
	}

	var docs []genreDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb: decode genres: %w", err)
	}

	genres := make([]genre.Genre, len(docs))
	for i, doc := range docs {
		genres[i] = doc.toGenre()
	}
	return genres, nil
}

func (r *GenreRepository) GetByName(ctx context.Context, name string) (genre.Genre, error) {
	var doc genreDocument
	err := r.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return genre.Genre{}, genre.ErrNotFound
	}
	if err != nil {
		return genre.Genre{}, fmt.Errorf("mongodb: find genre: %w", err)
	}
	return doc.toGenre(), nil
}

func (r *GenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	doc := genreDocument{ID: bson.NewObjectID(), Name: g.Name}
	_, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return genre.Genre{}, genre.ErrDuplicateName
	}
	if err != nil {
		return genre.Genre{}, fmt.Errorf("mongodb: insert genre: %w", err)
	}
	return doc.toGenre(), nil
}

func (r *GenreRepository) UpdateName(ctx context.Context, name, newName string) (genre.Genre, error) {
	var doc genreDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "name", Value: newName}}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return genre.Genre{}, genre.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return genre.Genre{}, genre.ErrDuplicateName
	case err != nil:
		return genre.Genre{}, fmt.Errorf("mongodb: update genre: %w", err)
	}
	return doc.toGenre(), nil
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id string) error {
	oid, ok := parseID(id)
	if !ok {
		return genre.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("mongodb: delete genre: %w", err)
	}
	if res.DeletedCount == 0 {
		return genre.ErrNotFound
	}
	return nil
}
