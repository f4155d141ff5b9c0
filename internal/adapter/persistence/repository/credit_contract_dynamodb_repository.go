package repository

import (
	"context"

	"aluguel_carros/internal/domain/entities"
	"aluguel_carros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCreditContractsTableName = "credit_contracts"
	creditContractsOrderIDIndex     = "order_id-index"
	creditContractsAgentIDIndex     = "agent_id-index"
)

type creditContractItem struct {
	ID                string `dynamodbav:"id"`
	OrderID           string `dynamodbav:"order_id"`
	AgentID           string `dynamodbav:"agent_id"`
	Principal         string `dynamodbav:"principal"`
	AnnualRatePercent string `dynamodbav:"annual_rate_percent"`
	Installments      int    `dynamodbav:"installments"`
	InstallmentAmount string `dynamodbav:"installment_amount"`
	StartDate         string `dynamodbav:"start_date"`
	DueDate           string `dynamodbav:"due_date"`
	Status            string `dynamodbav:"status"`
	Notes             string `dynamodbav:"notes,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	SettledAt         string `dynamodbav:"settled_at,omitempty"`
}

// CreditContractDynamoRepository persists CreditContract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI order_id-index: HASH order_id (backs the 1 contract per order rule)
//   - GSI agent_id-index: HASH agent_id

type CreditContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditContractRepository = (*CreditContractDynamoRepository)(nil)

func NewCreditContractDynamoRepository(ddb *dynamodb.Client) *CreditContractDynamoRepository {
	return &CreditContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDIT_CONTRACTS_TABLE", defaultCreditContractsTableName),
	}
}

func (r *CreditContractDynamoRepository) Create(ctx context.Context, c entities.CreditContract) (entities.CreditContract, error) {
	it := toCreditContractItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CreditContract{}, err
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
		return entities.CreditContract{}, err
	}
	return c, nil
}

func (r *CreditContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.CreditContract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CreditContract{}, err
	}
	if len(out.Item) == 0 {
		return entities.CreditContract{}, nil
	}

	var it creditContractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CreditContract{}, err
	}
	return fromCreditContractItem(it), nil
}

func (r *CreditContractDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.CreditContract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(creditContractsOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CreditContract{}, err
	}
	if len(out.Items) == 0 {
		return entities.CreditContract{}, nil
	}

	var it creditContractItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CreditContract{}, err
	}
	return fromCreditContractItem(it), nil
}

func (r *CreditContractDynamoRepository) Update(ctx context.Context, c entities.CreditContract) (entities.CreditContract, error) {
	it := toCreditContractItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.CreditContract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.CreditContract{}, err
	}
	return c, nil
}

func (r *CreditContractDynamoRepository) ListByAgentID(ctx context.Context, agentID string) ([]entities.CreditContract, error) {
	var (
		contracts []entities.CreditContract
		in        = &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(creditContractsAgentIDIndex),
			KeyConditionExpression: aws.String("agent_id = :aid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":aid": &types.AttributeValueMemberS{Value: agentID},
			},
		}
	)
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it creditContractItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			contracts = append(contracts, fromCreditContractItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return contracts, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func toCreditContractItem(c entities.CreditContract) creditContractItem {
	return creditContractItem{
		ID:                c.ID,
		OrderID:           c.OrderID,
		AgentID:           c.AgentID,
		Principal:         c.Principal.String(),
		AnnualRatePercent: c.AnnualRatePercent.String(),
		Installments:      c.Installments,
		InstallmentAmount: c.InstallmentAmount.String(),
		StartDate:         formatDate(c.StartDate),
		DueDate:           formatDate(c.DueDate),
		Status:            string(c.Status),
		Notes:             c.Notes,
		CreatedAt:         formatTime(c.CreatedAt),
		UpdatedAt:         formatTime(c.UpdatedAt),
		SettledAt:         formatTimePtr(c.SettledAt),
	}
}

func fromCreditContractItem(it creditContractItem) entities.CreditContract {
	return entities.CreditContract{
		ID:                it.ID,
		OrderID:           it.OrderID,
		AgentID:           it.AgentID,
		Principal:         parseDecimal(it.Principal),
		AnnualRatePercent: parseDecimal(it.AnnualRatePercent),
		Installments:      it.Installments,
		InstallmentAmount: parseDecimal(it.InstallmentAmount),
		StartDate:         parseDate(it.StartDate),
		DueDate:           parseDate(it.DueDate),
		Status:            entities.ContractStatus(it.Status),
		Notes:             it.Notes,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
		SettledAt:         parseTimePtr(it.SettledAt),
	}
}
