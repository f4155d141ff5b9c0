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

const defaultAgentsTableName = "agents"

type agentItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Role      string `dynamodbav:"role"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AgentDynamoRepository reads the agents table owned by the account service.

type AgentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAgentRepository = (*AgentDynamoRepository)(nil)

func NewAgentDynamoRepository(ddb *dynamodb.Client) *AgentDynamoRepository {
	return &AgentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AGENTS_TABLE", defaultAgentsTableName),
	}
}

func (r *AgentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Agent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Agent{}, err
	}
	if len(out.Item) == 0 {
		return entities.Agent{}, nil
	}

	var it agentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Agent{}, err
	}
	return entities.Agent{
		ID:        it.ID,
		Name:      it.Name,
		Role:      entities.AgentRole(it.Role),
		Active:    it.Active,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
