package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type loggedQuoteItem struct {
	ID          string             `dynamodbav:"id"`
	Email       string             `dynamodbav:"email"`
	Services    []serviceQuoteItem `dynamodbav:"services"`
	TotalAmount string             `dynamodbav:"total_amount"`
	CreatedAt   string             `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists LoggedQuote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table is append-only and read back only by analytics, so List and Count
// scan instead of querying an index.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.LoggedQuote) (entities.LoggedQuote, error) {
	it := toLoggedQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.LoggedQuote{}, err
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
		return entities.LoggedQuote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.LoggedQuote, error) {
	var items []entities.LoggedQuote
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it loggedQuoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromLoggedQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func (r *QuoteDynamoRepository) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.ddb, r.tableName)
}

func toLoggedQuoteItem(q entities.LoggedQuote) loggedQuoteItem {
	services := make([]serviceQuoteItem, 0, len(q.Services))
	for _, s := range q.Services {
		services = append(services, serviceQuoteItem{
			ServiceID: s.ServiceID,
			Material:  s.Material,
			Size:      s.Size,
			Stories:   s.Stories,
			RoofPitch: s.RoofPitch,
			Price:     floatToString(s.Price),
		})
	}
	return loggedQuoteItem{
		ID:          q.ID,
		Email:       q.Email,
		Services:    services,
		TotalAmount: floatToString(q.TotalAmount),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLoggedQuoteItem(it loggedQuoteItem) entities.LoggedQuote {
	services := make([]entities.ServiceQuote, 0, len(it.Services))
	for _, s := range it.Services {
		price, _ := strconv.ParseFloat(s.Price, 64)
		services = append(services, entities.ServiceQuote{
			ServiceID: s.ServiceID,
			Material:  s.Material,
			Size:      s.Size,
			Stories:   s.Stories,
			RoofPitch: s.RoofPitch,
			Price:     price,
		})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	return entities.LoggedQuote{
		ID:          it.ID,
		Email:       it.Email,
		Services:    services,
		TotalAmount: total,
		CreatedAt:   createdAt,
	}
}
