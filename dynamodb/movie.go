package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"movielib/movie"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MovieRepository stores movies in a table keyed by "id". Title uniqueness is
// checked before writes, not enforced by the table.
type MovieRepository struct {
	client *dynamodb.Client
	table  string
}

type movieItem struct {
	ID          string   `dynamodbav:"id"`
	Title       string   `dynamodbav:"title"`
	Genre       []string `dynamodbav:"genre"`
	ReleaseDate string   `dynamodbav:"releaseDate"`
	Description string   `dynamodbav:"description"`
	CreatedAt   string   `dynamodbav:"createdAt"`
}

func (i movieItem) toMovie() movie.Movie {
	return movie.Movie{
		ID:          i.ID,
		Title:       i.Title,
		Genre:       i.Genre,
		ReleaseDate: i.ReleaseDate,
		Description: i.Description,
	}
}

func NewMovieRepository(client *dynamodb.Client, table string) *MovieRepository {
	return &MovieRepository{
		client: client,
		table:  table,
	}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: &r.table})
}

func (r *MovieRepository) MoviesByGenre(ctx context.Context, genre string) ([]movie.Movie, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:                 &r.table,
		FilterExpression:          aws.String("contains(genre, :genre)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{":genre": stringValue(genre)},
	})
}

func (r *MovieRepository) GetByTitle(ctx context.Context, title string) (movie.Movie, error) {
	item, err := r.findByTitle(ctx, title)
	if err != nil {
		return movie.Movie{}, err
	}
	return item.toMovie(), nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	if err := r.ensureTitleFree(ctx, m.Title); err != nil {
		return movie.Movie{}, err
	}

	item := movieItem{
		ID:          uuid.NewString(),
		Title:       m.Title,
		Genre:       m.Genre,
		ReleaseDate: m.ReleaseDate,
		Description: m.Description,
		CreatedAt:   time.Now().UTC().Format(createdAtLayout),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: marshal movie: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: put movie: %w", err)
	}
	return item.toMovie(), nil
}

func (r *MovieRepository) UpdateTitle(ctx context.Context, title, newTitle string) (movie.Movie, error) {
	existing, err := r.findByTitle(ctx, title)
	if err != nil {
		return movie.Movie{}, err
	}
	if err := r.ensureTitleFree(ctx, newTitle); err != nil {
		return movie.Movie{}, err
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                &r.table,
		Key:                      map[string]types.AttributeValue{"id": stringValue(existing.ID)},
		UpdateExpression:         aws.String("SET #title = :new"),
		ConditionExpression:      aws.String("#title = :old"),
		ExpressionAttributeNames: map[string]string{"#title": "title"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new": stringValue(newTitle),
			":old": stringValue(title),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return movie.Movie{}, movie.ErrNotFound
	}
	if err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: update movie: %w", err)
	}

	var item movieItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return movie.Movie{}, fmt.Errorf("dynamodb: unmarshal movie: %w", err)
	}
	return item.toMovie(), nil
}

func (r *MovieRepository) DeleteByID(ctx context.Context, id string) error {
	if err := validateTable(r.table); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return movie.ErrNotFound
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           &r.table,
		Key:                 map[string]types.AttributeValue{"id": stringValue(id)},
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if isConditionFailed(err) {
		return movie.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("dynamodb: delete movie: %w", err)
	}
	return nil
}

func (r *MovieRepository) findByTitle(ctx context.Context, title string) (movieItem, error) {
	items, err := r.scanItems(ctx, &dynamodb.ScanInput{
		TableName:                 &r.table,
		FilterExpression:          aws.String("#title = :title"),
		ExpressionAttributeNames:  map[string]string{"#title": "title"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":title": stringValue(title)},
	})
	if err != nil {
		return movieItem{}, err
	}
	if len(items) == 0 {
		return movieItem{}, movie.ErrNotFound
	}
	return items[0], nil
}

func (r *MovieRepository) ensureTitleFree(ctx context.Context, title string) error {
	_, err := r.findByTitle(ctx, title)
	switch {
	case err == nil:
		return movie.ErrDuplicateTitle
	case err == movie.ErrNotFound:
		return nil
	default:
		return err
	}
}

func (r *MovieRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]movie.Movie, error) {
	items, err := r.scanItems(ctx, input)
	if err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(items))
	for i, item := range items {
		movies[i] = item.toMovie()
	}
	return movies, nil
}

// scanItems returns matching items in creation order.
func (r *MovieRepository) scanItems(ctx context.Context, input *dynamodb.ScanInput) ([]movieItem, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	items, err := scanAll[movieItem](ctx, r.client, input)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: scan movies: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt < items[j].CreatedAt
	})
	return items, nil
}
