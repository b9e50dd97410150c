package adapters

import (
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/google/uuid"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/config"
	"news-video-lambda/domain"
)

type dynamoNewsStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    dynamodbiface.DynamoDBAPI
	dynamoConfig *config.DynamoConfig
	newID        func() string
}

func NewDynamoNewsStore(logger outbound.LoggerPort, dynamoSvc dynamodbiface.DynamoDBAPI, dynamoConfig *config.DynamoConfig) outbound.NewsStorePort {
	return &dynamoNewsStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
		newID:        uuid.NewString,
	}
}

// Add never overwrites: the put is conditional on the generated id being unused.
func (c *dynamoNewsStore) Add(ctx context.Context, record domain.NewsRecord) (string, error) {
	record.ID = c.newID()
	if record.Likes == nil {
		record.Likes = []string{}
	}

	av, err := dynamodbattribute.MarshalMap(record)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal news item", map[string]interface{}{
			"id": record.ID,
		})
		return "", err
	}

	input := &dynamodb.PutItemInput{
		Item:                av,
		TableName:           aws.String(c.dynamoConfig.TableName),
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save news item", map[string]interface{}{
			"id":    record.ID,
			"table": c.dynamoConfig.TableName,
		})
		return "", err
	}

	return record.ID, nil
}
