package mongodb_test

import (
	"context"
	"testing"

	"movielib/mongodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	mongocontainer "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestNewDatabase_Validation(t *testing.T) {
	_, err := mongodb.NewDatabase(context.Background(), mongodb.Options{Database: "movies-lib"})
	assert.ErrorContains(t, err, "uri is required")

	_, err = mongodb.NewDatabase(context.Background(), mongodb.Options{URI: "mongodb://127.0.0.1:27017"})
	assert.ErrorContains(t, err, "database name is required")
}

// CreateTestDatabase starts a MongoDB container and returns a database with
// indexes in place.
func CreateTestDatabase(t testing.TB, name string) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	container, err := mongocontainer.RunContainer(ctx, testcontainers.WithImage("mongo:6"))
	require.NoError(t, err, "failed to start mongodb container")
	t.Cleanup(func() {
		assert.NoError(t, container.Terminate(ctx))
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := mongodb.NewDatabase(ctx, mongodb.Options{URI: uri, Database: name})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Client().Disconnect(ctx)
	})
	return db
}
