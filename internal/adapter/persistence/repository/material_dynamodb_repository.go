package repository

import (
	"context"
	"errors"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type materialItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	Unit        string  `dynamodbav:"unit"`
	BaseRate    float64 `dynamodbav:"base_rate"`
	Description string  `dynamodbav:"description,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists the material catalog in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so List scans and filters on category.
type MaterialDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb *dynamodb.Client, tableName string) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MaterialDynamoRepository) List(ctx context.Context, category string) ([]entities.Material, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if category != "" {
		in.FilterExpression = aws.String("#category = :category")
		in.ExpressionAttributeNames = map[string]string{"#category": "category"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":category": &types.AttributeValueMemberS{Value: category},
		}
	}

	out := make([]entities.Material, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []materialItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromMaterialItem(it))
		}
	}

	sortByCreation(out,
		func(m entities.Material) time.Time { return m.CreatedAt },
		func(m entities.Material) string { return m.ID },
	)
	return out, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	av, err := attributevalue.MarshalMap(toMaterialItem(m))
	if err != nil {
		return entities.Material{}, err
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
		return entities.Material{}, err
	}
	return m, nil
}

// Update overwrites the writable fields of an existing material. A missing
// material yields the zero value.
func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: m.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #category = :category, #unit = :unit, #base_rate = :base_rate, " +
				"#description = :description, #updated_at = :updated_at",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":        &types.AttributeValueMemberS{Value: m.Name},
			":category":    &types.AttributeValueMemberS{Value: m.Category},
			":unit":        &types.AttributeValueMemberS{Value: m.Unit},
			":base_rate":   &types.AttributeValueMemberN{Value: floatToString(m.BaseRate)},
			":description": &types.AttributeValueMemberS{Value: m.Description},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(m.UpdatedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#name":        "name",
			"#category":    "category",
			"#unit":        "unit",
			"#base_rate":   "base_rate",
			"#description": "description",
			"#updated_at":  "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Material{}, nil
		}
		return entities.Material{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Material{}, nil
	}

	var it materialItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Material{}, err
	}
	return fromMaterialItem(it), nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		BaseRate:    m.BaseRate,
		Description: m.Description,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromMaterialItem(it materialItem) entities.Material {
	return entities.Material{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Unit:        it.Unit,
		BaseRate:    it.BaseRate,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

// deleteByID removes the item keyed by id and reports whether it existed.
func deleteByID(ctx context.Context, ddb *dynamodb.Client, table, id string) (bool, error) {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
