package dynamodb_test

import (
	"context"
	"fmt"
	"testing"

	"movielib/dynamodb"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestNewClient_Validation(t *testing.T) {
	_, err := dynamodb.NewClient(context.Background(), dynamodb.Options{})
	assert.ErrorContains(t, err, "region is required")

	_, err = dynamodb.NewClient(context.Background(), dynamodb.Options{Region: "us-east-1", AccessKey: "only-access"})
	assert.ErrorContains(t, err, "must be set together")
}

func TestCreateTable_RequiresName(t *testing.T) {
	client, err := dynamodb.NewClient(context.Background(), dynamodb.Options{
		Region:    "us-east-1",
		AccessKey: "local",
		SecretKey: "local",
	})
	require.NoError(t, err)

	err = dynamodb.CreateTable(context.Background(), client, " ")
	assert.ErrorContains(t, err, "table name is required")
}

// CreateTestClient starts DynamoDB Local and returns a client pointed at it
// with the given tables created.
func CreateTestClient(t testing.TB, tables ...string) *awsdynamodb.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.2.1",
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start dynamodb-local container")
	t.Cleanup(func() {
		assert.NoError(t, container.Terminate(ctx))
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8000")
	require.NoError(t, err)

	client, err := dynamodb.NewClient(ctx, dynamodb.Options{
		Region:    "us-east-1",
		Endpoint:  fmt.Sprintf("http://%s:%s", host, port.Port()),
		AccessKey: "local",
		SecretKey: "local",
	})
	require.NoError(t, err)

	for _, table := range tables {
		require.NoError(t, dynamodb.CreateTable(ctx, client, table))
		// second call must be a no-op
		require.NoError(t, dynamodb.CreateTable(ctx, client, table))
	}
	return client
}
