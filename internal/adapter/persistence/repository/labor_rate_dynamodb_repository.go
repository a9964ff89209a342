package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type laborRateItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Category    string  `dynamodbav:"category"`
	Unit        string  `dynamodbav:"unit"`
	BaseRate    float64 `dynamodbav:"base_rate"`
	Location    string  `dynamodbav:"location,omitempty"`
	Description string  `dynamodbav:"description,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// LaborRateDynamoRepository persists labor rates in DynamoDB (PK: id).
type LaborRateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILaborRateRepository = (*LaborRateDynamoRepository)(nil)

func NewLaborRateDynamoRepository(ddb *dynamodb.Client, tableName string) *LaborRateDynamoRepository {
	return &LaborRateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *LaborRateDynamoRepository) List(ctx context.Context, filter interfaces.LaborRateFilter) ([]entities.LaborRate, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values := laborRateFilterExpression(filter); expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	out := make([]entities.LaborRate, 0)
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []laborRateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromLaborRateItem(it))
		}
	}

	sortByCreation(out,
		func(l entities.LaborRate) time.Time { return l.CreatedAt },
		func(l entities.LaborRate) string { return l.ID },
	)
	return out, nil
}

func laborRateFilterExpression(f interfaces.LaborRateFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if f.Category != "" {
		conds = append(conds, "#category = :category")
		names["#category"] = "category"
		values[":category"] = &types.AttributeValueMemberS{Value: f.Category}
	}
	if f.Location != "" {
		conds = append(conds, "#location = :location")
		names["#location"] = "location"
		values[":location"] = &types.AttributeValueMemberS{Value: f.Location}
	}
	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), names, values
}

func (r *LaborRateDynamoRepository) GetByID(ctx context.Context, id string) (entities.LaborRate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LaborRate{}, err
	}
	if len(out.Item) == 0 {
		return entities.LaborRate{}, nil
	}

	var it laborRateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LaborRate{}, err
	}
	return fromLaborRateItem(it), nil
}

func (r *LaborRateDynamoRepository) Create(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error) {
	av, err := attributevalue.MarshalMap(toLaborRateItem(l))
	if err != nil {
		return entities.LaborRate{}, err
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
		return entities.LaborRate{}, err
	}
	return l, nil
}

func (r *LaborRateDynamoRepository) Update(ctx context.Context, l entities.LaborRate) (entities.LaborRate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: l.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #category = :category, #unit = :unit, #base_rate = :base_rate, " +
				"#location = :location, #description = :description, #updated_at = :updated_at",
		),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":        &types.AttributeValueMemberS{Value: l.Name},
			":category":    &types.AttributeValueMemberS{Value: l.Category},
			":unit":        &types.AttributeValueMemberS{Value: l.Unit},
			":base_rate":   &types.AttributeValueMemberN{Value: floatToString(l.BaseRate)},
			":location":    &types.AttributeValueMemberS{Value: l.Location},
			":description": &types.AttributeValueMemberS{Value: l.Description},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(l.UpdatedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#name":        "name",
			"#category":    "category",
			"#unit":        "unit",
			"#base_rate":   "base_rate",
			"#location":    "location",
			"#description": "description",
			"#updated_at":  "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LaborRate{}, nil
		}
		return entities.LaborRate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.LaborRate{}, nil
	}

	var it laborRateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.LaborRate{}, err
	}
	return fromLaborRateItem(it), nil
}

func (r *LaborRateDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toLaborRateItem(l entities.LaborRate) laborRateItem {
	return laborRateItem{
		ID:          l.ID,
		Name:        l.Name,
		Category:    l.Category,
		Unit:        l.Unit,
		BaseRate:    l.BaseRate,
		Location:    l.Location,
		Description: l.Description,
		CreatedAt:   formatTime(l.CreatedAt),
		UpdatedAt:   formatTime(l.UpdatedAt),
	}
}

func fromLaborRateItem(it laborRateItem) entities.LaborRate {
	return entities.LaborRate{
		ID:          it.ID,
		Name:        it.Name,
		Category:    it.Category,
		Unit:        it.Unit,
		BaseRate:    it.BaseRate,
		Location:    it.Location,
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
