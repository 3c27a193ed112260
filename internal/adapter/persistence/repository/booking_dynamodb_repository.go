package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName   = "bookings"
	bookingsCustomerEmailIndex = "customer_email-index"
)

type serviceQuoteItem struct {
	ServiceID string `dynamodbav:"service_id"`
	Material  string `dynamodbav:"material,omitempty"`
	Size      string `dynamodbav:"size"`
	Stories   string `dynamodbav:"stories,omitempty"`
	RoofPitch string `dynamodbav:"roof_pitch,omitempty"`
	Price     string `dynamodbav:"price"`
}

type bookingItem struct {
	ID              string             `dynamodbav:"id"`
	UserID          string             `dynamodbav:"user_id,omitempty"`
	CustomerEmail   string             `dynamodbav:"customer_email"`
	CustomerPhone   string             `dynamodbav:"customer_phone,omitempty"`
	CustomerName    string             `dynamodbav:"customer_name,omitempty"`
	Address         string             `dynamodbav:"address"`
	City            string             `dynamodbav:"city"`
	State           string             `dynamodbav:"state"`
	Zip             string             `dynamodbav:"zip"`
	Services        []serviceQuoteItem `dynamodbav:"services"`
	TotalAmount     string             `dynamodbav:"total_amount"`
	DepositAmount   string             `dynamodbav:"deposit_amount"`
	IsGuest         bool               `dynamodbav:"is_guest"`
	Status          string             `dynamodbav:"status"`
	PaymentIntentID string             `dynamodbav:"payment_intent_id,omitempty"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_email-index (PK: customer_email)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsCustomerEmailIndex),
		KeyConditionExpression: aws.String("customer_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) UpdatePayment(ctx context.Context, id string, status entities.BookingStatus, paymentIntentID string) (entities.Booking, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #payment_intent_id = :payment_intent_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":            &types.AttributeValueMemberS{Value: string(status)},
			":payment_intent_id": &types.AttributeValueMemberS{Value: paymentIntentID},
			":updated_at":        &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":            "status",
			"#payment_intent_id": "payment_intent_id",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) Count(ctx context.Context) (int, error) {
	return scanCount(ctx, r.ddb, r.tableName)
}

func (r *BookingDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}
	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	services := make([]serviceQuoteItem, 0, len(b.Services))
	for _, q := range b.Services {
		services = append(services, serviceQuoteItem{
			ServiceID: q.ServiceID,
			Material:  q.Material,
			Size:      q.Size,
			Stories:   q.Stories,
			RoofPitch: q.RoofPitch,
			Price:     floatToString(q.Price),
		})
	}
	return bookingItem{
		ID:              b.ID,
		UserID:          b.UserID,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		CustomerName:    b.CustomerName,
		Address:         b.Address,
		City:            b.City,
		State:           b.State,
		Zip:             b.Zip,
		Services:        services,
		TotalAmount:     floatToString(b.TotalAmount),
		DepositAmount:   floatToString(b.DepositAmount),
		IsGuest:         b.IsGuest,
		Status:          string(b.Status),
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	services := make([]entities.ServiceQuote, 0, len(it.Services))
	for _, q := range it.Services {
		price, _ := strconv.ParseFloat(q.Price, 64)
		services = append(services, entities.ServiceQuote{
			ServiceID: q.ServiceID,
			Material:  q.Material,
			Size:      q.Size,
			Stories:   q.Stories,
			RoofPitch: q.RoofPitch,
			Price:     price,
		})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	deposit, _ := strconv.ParseFloat(it.DepositAmount, 64)
	return entities.Booking{
		ID:              it.ID,
		UserID:          it.UserID,
		CustomerEmail:   it.CustomerEmail,
		CustomerPhone:   it.CustomerPhone,
		CustomerName:    it.CustomerName,
		Address:         it.Address,
		City:            it.City,
		State:           it.State,
		Zip:             it.Zip,
		Services:        services,
		TotalAmount:     total,
		DepositAmount:   deposit,
		IsGuest:         it.IsGuest,
		Status:          entities.BookingStatus(it.Status),
		PaymentIntentID: it.PaymentIntentID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
