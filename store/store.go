// Package store opens the repositories for the configured STORE_DRIVER.
package store

import (
	"context"
	"fmt"
	"strconv"

	"movielib/dynamodb"
	"movielib/genre"
	"movielib/mongodb"
	"movielib/movie"
	"movielib/pkg/config"
	"movielib/postgres"
)

type Store struct {
	Driver string
	Movies movie.Repository
	Genres genre.Repository

	close func(ctx context.Context) error
}

// Close releases the underlying connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(cfg)
	case config.DriverMongoDB:
		return openMongoDB(ctx, cfg)
	case config.DriverDynamoDB:
		return openDynamoDB(ctx, cfg)
	}
	return nil, fmt.Errorf("store: unsupported driver %q", cfg.StoreDriver)
}

func openPostgres(cfg *config.Config) (*Store, error) {
	db, err := postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store: postgres handle: %w", err)
	}

	return &Store{
		Driver: config.DriverPostgres,
		Movies: postgres.NewMovieRepository(db),
		Genres: postgres.NewGenreRepository(db),
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

func openMongoDB(ctx context.Context, cfg *config.Config) (*Store, error) {
	db, err := mongodb.NewDatabase(ctx, mongodb.Options{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open mongodb: %w", err)
	}

	return &Store{
		Driver: config.DriverMongoDB,
		Movies: mongodb.NewMovieRepository(db),
		Genres: mongodb.NewGenreRepository(db),
		close:  db.Client().Disconnect,
	}, nil
}

func openDynamoDB(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := dynamodb.NewClient(ctx, dynamodb.Options{
		Region:       cfg.DynamoDB.Region,
		Endpoint:     cfg.DynamoDB.Endpoint,
		AccessKey:    cfg.DynamoDB.AccessKey,
		SecretKey:    cfg.DynamoDB.SecretKey,
		SessionToken: cfg.DynamoDB.SessionToken,
	})
	if err != nil {
		return nil, fmt.Errorf("store: open dynamodb: %w", err)
	}

	for _, table := range []string{cfg.DynamoDB.MoviesTable, cfg.DynamoDB.GenresTable} {
		if err := dynamodb.CreateTable(ctx, client, table); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
	}

	return &Store{
		Driver: config.DriverDynamoDB,
		Movies: dynamodb.NewMovieRepository(client, cfg.DynamoDB.MoviesTable),
		Genres: dynamodb.NewGenreRepository(client, cfg.DynamoDB.GenresTable),
	}, nil
}
