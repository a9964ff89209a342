package repository

import (
	"context"
	"sort"

	"brickonomics/internal/domain/entities"
	"brickonomics/internal/infrastructure/database"
	"brickonomics/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type materialLineItem struct {
	Category string  `dynamodbav:"category"`
	Name     string  `dynamodbav:"name"`
	Quantity float64 `dynamodbav:"quantity"`
	Unit     string  `dynamodbav:"unit"`
	Rate     float64 `dynamodbav:"rate"`
	Total    float64 `dynamodbav:"total"`
}

type laborLineItem struct {
	Category string  `dynamodbav:"category"`
	Role     string  `dynamodbav:"role"`
	Hours    float64 `dynamodbav:"hours"`
	Rate     float64 `dynamodbav:"rate"`
	Total    float64 `dynamodbav:"total"`
}

type estimateItem struct {
	ID             string             `dynamodbav:"id"`
	ProjectType    string             `dynamodbav:"project_type"`
	Area           float64            `dynamodbav:"area"`
	Location       string             `dynamodbav:"location,omitempty"`
	Materials      []materialLineItem `dynamodbav:"materials"`
	Labor          []laborLineItem    `dynamodbav:"labor"`
	MaterialTotal  float64            `dynamodbav:"material_total"`
	LaborTotal     float64            `dynamodbav:"labor_total"`
	Subtotal       float64            `dynamodbav:"subtotal"`
	Overhead       float64            `dynamodbav:"overhead"`
	Transportation float64            `dynamodbav:"transportation"`
	TotalCost      float64            `dynamodbav:"total_cost"`
	CreatedAt      string             `dynamodbav:"created_at"`
}

// EstimateDynamoRepository stores estimate snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI project_type-index: project_type (hash), created_at (range)
//
// Snapshots are written once and never updated.
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.CostEstimate) (entities.CostEstimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.CostEstimate{}, err
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
		return entities.CostEstimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.CostEstimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostEstimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostEstimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CostEstimate{}, err
	}
	return fromEstimateItem(it), nil
}

// List queries the project type index newest first, or scans the whole table
// when projectType is empty.
func (r *EstimateDynamoRepository) List(ctx context.Context, projectType entities.ProjectType) ([]entities.CostEstimate, error) {
	if projectType == "" {
		return r.scanAll(ctx)
	}

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.EstimatesProjectTypeIndex),
		KeyConditionExpression: aws.String("#project_type = :project_type"),
		ExpressionAttributeNames: map[string]string{
			"#project_type": "project_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":project_type": &types.AttributeValueMemberS{Value: string(projectType)},
		},
		ScanIndexForward: aws.Bool(false),
	})

	out := make([]entities.CostEstimate, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEstimateItem(it))
		}
	}
	return out, nil
}

func (r *EstimateDynamoRepository) scanAll(ctx context.Context) ([]entities.CostEstimate, error) {
	var items []estimateItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	// created_at uses a fixed-width layout, so string order is time order.
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt > items[j].CreatedAt })

	out := make([]entities.CostEstimate, 0, len(items))
	for _, it := range items {
		out = append(out, fromEstimateItem(it))
	}
	return out, nil
}

func toEstimateItem(e entities.CostEstimate) estimateItem {
	materials := make([]materialLineItem, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, materialLineItem(m))
	}
	labor := make([]laborLineItem, 0, len(e.Labor))
	for _, l := range e.Labor {
		labor = append(labor, laborLineItem(l))
	}

	return estimateItem{
		ID:             e.ID,
		ProjectType:    string(e.ProjectType),
		Area:           e.Area,
		Location:       e.Location,
		Materials:      materials,
		Labor:          labor,
		MaterialTotal:  e.MaterialTotal,
		LaborTotal:     e.LaborTotal,
		Subtotal:       e.Subtotal,
		Overhead:       e.Overhead,
		Transportation: e.Transportation,
		TotalCost:      e.TotalCost,
		CreatedAt:      formatTime(e.CreatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.CostEstimate {
	materials := make([]entities.MaterialLine, 0, len(it.Materials))
	for _, m := range it.Materials {
		materials = append(materials, entities.MaterialLine(m))
	}
	labor := make([]entities.LaborLine, 0, len(it.Labor))
	for _, l := range it.Labor {
		labor = append(labor, entities.LaborLine(l))
	}

	return entities.CostEstimate{
		ID:             it.ID,
		ProjectType:    entities.ProjectType(it.ProjectType),
		Area:           it.Area,
		Location:       it.Location,
		Materials:      materials,
		Labor:          labor,
		MaterialTotal:  it.MaterialTotal,
		LaborTotal:     it.LaborTotal,
		Subtotal:       it.Subtotal,
		Overhead:       it.Overhead,
		Transportation: it.Transportation,
		TotalCost:      it.TotalCost,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}
