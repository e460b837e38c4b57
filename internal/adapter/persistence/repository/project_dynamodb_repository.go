package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

// projectItem is the stored shape of the Project aggregate.
//
// The aggregate is persisted as one JSON document: snapshots, amendments and
// BOM snapshots are append-only lists owned exclusively by their project, so
// they never need to be queried outside it. Version and status are lifted to
// top-level attributes for the conditional write and for status filtering.
type projectItem struct {
	ID        string `dynamodbav:"id"`
	Version   int64  `dynamodbav:"version"`
	Status    string `dynamodbav:"status"`
	Archived  bool   `dynamodbav:"archived"`
	Data      string `dynamodbav:"data"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists the Project aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update performs a compare-and-swap on the version attribute so two
// concurrent writers cannot silently overwrite each other's aggregate.
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.Version = 1
	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it)
}

// Update writes the whole aggregate, expecting the stored version to equal
// p.Version. The stored version is incremented in the same write.
func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	expected := p.Version
	p.Version = expected + 1

	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Distinguish a lost race from a missing aggregate.
			current, gerr := r.GetByID(ctx, p.ID)
			if gerr != nil {
				return entities.Project{}, gerr
			}
			if current.ID == "" {
				return entities.Project{}, nil
			}
			return entities.Project{}, interfaces.ErrVersionConflict
		}
		return entities.Project{}, err
	}
	return p, nil
}

func toProjectItem(p entities.Project) (projectItem, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return projectItem{}, err
	}
	return projectItem{
		ID:        p.ID,
		Version:   p.Version,
		Status:    string(p.Status),
		Archived:  p.Archived,
		Data:      string(data),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromProjectItem(it projectItem) (entities.Project, error) {
	var p entities.Project
	if err := json.Unmarshal([]byte(it.Data), &p); err != nil {
		return entities.Project{}, err
	}
	// The lifted attributes win over the document copy.
	p.Version = it.Version
	p.Status = entities.ProjectStatus(it.Status)
	p.Archived = it.Archived
	return p, nil
}
