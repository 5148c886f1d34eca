package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"time"

	"movielib/genre"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

type GenreRepository struct {
	client *dynamodb.Client
	table  string
}

type genreItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"createdAt"`
}

func (i genreItem) toGenre() genre.Genre {
	return genre.Genre{ID: i.ID, Name: i.Name}
}

func NewGenreRepository(client *dynamodb.Client, table string) *GenreRepository {
	return &GenreRepository{
		client: client,
		table:  table,
	}
}

func (r *GenreRepository) AllGenres(ctx context.Context) ([]genre.Genre, error) {
	items, err := r.scanItems(ctx, &dynamodb.ScanInput{TableName: &r.table})
	if err != nil {
		return nil, err
	}

	genres := make([]genre.Genre, len(items))
	for i, item := range items {
		genres[i] = item.toGenre()
	}
	return genres, nil
}

func (r *GenreRepository) GetByName(ctx context.Context, name string) (genre.Genre, error) {
	item, err := r.findByName(ctx, name)
	if err != nil {
		return genre.Genre{}, err
	}
	return item.toGenre(), nil
}

func (r *GenreRepository) CreateGenre(ctx context.Context, g genre.Genre) (genre.Genre, error) {
	if err := r.ensureNameFree(ctx, g.Name); err != nil {
		return genre.Genre{}, err
	}

	item := genreItem{
		ID:        uuid.NewString(),
		Name:      g.Name,
		CreatedAt: time.Now().UTC().Format(createdAtLayout),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return genre.Genre{}, fmt.Errorf("dynamodb: marshal genre: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &r.table,
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		return genre.Genre{}, fmt.Errorf("dynamodb: put genre: %w", err)
	}
	return item.toGenre(), nil
}

func (r *GenreRepository) UpdateName(ctx context.Context, name, newName string) (genre.Genre, error) {
	existing, err := r.findByName(ctx, name)
	if err != nil {
		return genre.Genre{}, err
	}
	if err := r.ensureNameFree(ctx, newName); err != nil {
		return genre.Genre{}, err
	}

	// "name" is a DynamoDB reserved word
	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                &r.table,
		Key:                      map[string]types.AttributeValue{"id": stringValue(existing.ID)},
		UpdateExpression:         aws.String("SET #name = :new"),
		ConditionExpression:      aws.String("#name = :old"),
		ExpressionAttributeNames: map[string]string{"#name": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new": stringValue(newName),
			":old": stringValue(name),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if isConditionFailed(err) {
		return genre.Genre{}, genre.ErrNotFound
	}
	if err != nil {
		return genre.Genre{}, fmt.Errorf("dynamodb: update genre: %w", err)
	}

	var item genreItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return genre.Genre{}, fmt.Errorf("dynamodb: unmarshal genre: %w", err)
	}
	return item.toGenre(), nil
}

func (r *GenreRepository) DeleteByID(ctx context.Context, id string) error {
	if err := validateTable(r.table); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return genre.ErrNotFound
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           &r.table,
		Key:                 map[string]types.AttributeValue{"id": stringValue(id)},
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if isConditionFailed(err) {
		return genre.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("dynamodb: delete genre: %w", err)
	}
	return nil
}

func (r *GenreRepository) findByName(ctx context.Context, name string) (genreItem, error) {
	items, err := r.scanItems(ctx, &dynamodb.ScanInput{
		TableName:                 &r.table,
		FilterExpression:          aws.String("#name = :name"),
		ExpressionAttributeNames:  map[string]string{"#name": "name"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":name": stringValue(name)},
	})
	if err != nil {
		return genreItem{}, err
	}
	if len(items) == 0 {
		return genreItem{}, genre.ErrNotFound
	}
	return items[0], nil
}

func (r *GenreRepository) ensureNameFree(ctx context.Context, name string) error {
	_, err := r.findByName(ctx, name)
	switch {
	case err == nil:
		return genre.ErrDuplicateName
	case err == genre.ErrNotFound:
		return nil
	default:
		return err
	}
}

func (r *GenreRepository) scanItems(ctx context.Context, input *dynamodb.ScanInput) ([]genreItem, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	items, err := scanAll[genreItem](ctx, r.client, input)
	if err != nil {
		return nil, fmt.Errorf("dynamodb: scan genres: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt < items[j].CreatedAt
	})
	return items, nil
}
