package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRentalOrdersTableName = "rental_orders"
	rentalOrdersVehicleIDIndex   = "vehicle_id-index"
	rentalOrdersCustomerIDIndex  = "customer_id-index"
)

type rentalOrderItem struct {
	ID              string `dynamodbav:"id"`
	CustomerID      string `dynamodbav:"customer_id"`
	VehicleID       string `dynamodbav:"vehicle_id"`
	AgentID         string `dynamodbav:"agent_id,omitempty"`
	StartDate       string `dynamodbav:"start_date"`
	EndDate         string `dynamodbav:"end_date"`
	DayCount        int    `dynamodbav:"day_count"`
	TotalPrice      string `dynamodbav:"total_price"`
	Status          string `dynamodbav:"status"`
	Notes           string `dynamodbav:"notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	ApprovedAt      string `dynamodbav:"approved_at,omitempty"`
	RejectedAt      string `dynamodbav:"rejected_at,omitempty"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
	Version         int64  `dynamodbav:"version"`
}

// RentalOrderDynamoRepository persists RentalOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI vehicle_id-index: HASH vehicle_id (backs the conflict scan)
//   - GSI customer_id-index: HASH customer_id
//
// Dates are stored as YYYY-MM-DD strings so the overlap filter can compare
// them as strings; prices are stored as decimal strings, never numbers.

type RentalOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRentalOrderRepository = (*RentalOrderDynamoRepository)(nil)

func NewRentalOrderDynamoRepository(ddb *dynamodb.Client) *RentalOrderDynamoRepository {
	return &RentalOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RENTAL_ORDERS_TABLE", defaultRentalOrdersTableName),
	}
}

func (r *RentalOrderDynamoRepository) Create(ctx context.Context, o entities.RentalOrder) (entities.RentalOrder, error) {
	it := toRentalOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RentalOrder{}, err
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
		return entities.RentalOrder{}, err
	}
	return o, nil
}

func (r *RentalOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.RentalOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RentalOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.RentalOrder{}, nil
	}

	var it rentalOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RentalOrder{}, err
	}
	return fromRentalOrderItem(it), nil
}

// Update replaces the full item, conditioned on the stored version matching
// the version the caller read. The write bumps the version; a stale caller
// gets interfaces.ErrVersionConflict instead of silently overwriting a
// concurrent decision.
func (r *RentalOrderDynamoRepository) Update(ctx context.Context, o entities.RentalOrder) (entities.RentalOrder, error) {
	expected := o.Version
	o.Version++

	it := toRentalOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.RentalOrder{}, err
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
			return entities.RentalOrder{}, interfaces.ErrVersionConflict
		}
		return entities.RentalOrder{}, err
	}
	return o, nil
}

// FindConflicts queries the vehicle's orders and filters down to the ones that
// still block the calendar and overlap the requested period. Overlap over
// inclusive date ranges: existing.start <= end AND existing.end >= start.
func (r *RentalOrderDynamoRepository) FindConflicts(ctx context.Context, vehicleID string, start, end time.Time, excludeOrderID string) ([]entities.RentalOrder, error) {
	filter := "#status IN (:pendente, :aprovado) AND #start_date <= :end_date AND #end_date >= :start_date"
	names := map[string]string{
		"#status":     "status",
		"#start_date": "start_date",
		"#end_date":   "end_date",
	}
	values := map[string]types.AttributeValue{
		":vid":        &types.AttributeValueMemberS{Value: vehicleID},
		":pendente":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusPendente)},
		":aprovado":   &types.AttributeValueMemberS{Value: string(entities.OrderStatusAprovado)},
		":start_date": &types.AttributeValueMemberS{Value: formatDate(start)},
		":end_date":   &types.AttributeValueMemberS{Value: formatDate(end)},
	}
	if excludeOrderID != "" {
		filter += " AND #id <> :exclude"
		names["#id"] = "id"
		values[":exclude"] = &types.AttributeValueMemberS{Value: excludeOrderID}
	}

	return r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(rentalOrdersVehicleIDIndex),
		KeyConditionExpression:    aws.String("vehicle_id = :vid"),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
}

func (r *RentalOrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.RentalOrder, error) {
	return r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rentalOrdersCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
}

func (r *RentalOrderDynamoRepository) ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.RentalOrder, error) {
	return r.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rentalOrdersVehicleIDIndex),
		KeyConditionExpression: aws.String("vehicle_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vehicleID},
		},
	})
}

// ListByStatus scans; status carries no GSI because the status listing is an
// operational query, not a hot path.
func (r *RentalOrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.RentalOrder, error) {
	var (
		orders  []entities.RentalOrder
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it rentalOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromRentalOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func (r *RentalOrderDynamoRepository) CountByStatus(ctx context.Context, status entities.OrderStatus) (int64, error) {
	var (
		count   int64
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return 0, err
		}
		count += int64(out.Count)
		if out.LastEvaluatedKey == nil {
			return count, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

// queryAll drains every page; the conflict scan in particular must never act
// on a truncated result set.
func (r *RentalOrderDynamoRepository) queryAll(ctx context.Context, in *dynamodb.QueryInput) ([]entities.RentalOrder, error) {
	var orders []entities.RentalOrder
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it rentalOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromRentalOrderItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return orders, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toRentalOrderItem(o entities.RentalOrder) rentalOrderItem {
	return rentalOrderItem{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		VehicleID:       o.VehicleID,
		AgentID:         o.AgentID,
		StartDate:       formatDate(o.StartDate),
		EndDate:         formatDate(o.EndDate),
		DayCount:        o.DayCount,
		TotalPrice:      o.TotalPrice.String(),
		Status:          string(o.Status),
		Notes:           o.Notes,
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
		ApprovedAt:      formatTimePtr(o.ApprovedAt),
		RejectedAt:      formatTimePtr(o.RejectedAt),
		RejectionReason: o.RejectionReason,
		Version:         o.Version,
	}
}

func fromRentalOrderItem(it rentalOrderItem) entities.RentalOrder {
	return entities.RentalOrder{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		VehicleID:       it.VehicleID,
		AgentID:         it.AgentID,
		StartDate:       parseDate(it.StartDate),
		EndDate:         parseDate(it.EndDate),
		DayCount:        it.DayCount,
		TotalPrice:      parseDecimal(it.TotalPrice),
		Status:          entities.OrderStatus(it.Status),
		Notes:           it.Notes,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		ApprovedAt:      parseTimePtr(it.ApprovedAt),
		RejectedAt:      parseTimePtr(it.RejectedAt),
		RejectionReason: it.RejectionReason,
		Version:         it.Version,
	}
}
