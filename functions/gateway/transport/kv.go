package transport

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodb_types "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

var recentSearchesTableName = helpers.GetDbTableName(helpers.RecentSearchesTablePrefix)

// DynamoKVStore backs the KVStoreAPI with a single dynamodb table of
// `key` / `value` string attributes.
type DynamoKVStore struct {
	db internal_types.DynamoDBAPI
}

func NewKVStore(db internal_types.DynamoDBAPI) internal_types.KVStoreAPI {
	return &DynamoKVStore{db: db}
}

func (s *DynamoKVStore) GetString(ctx context.Context, key string) (string, bool, error) {
	result, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(recentSearchesTableName),
		Key: map[string]dynamodb_types.AttributeValue{
			"key": &dynamodb_types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return "", false, err
	}
	if len(result.Item) == 0 {
		return "", false, nil
	}
	value, ok := result.Item["value"].(*dynamodb_types.AttributeValueMemberS)
	if !ok {
		return "", false, nil
	}
	return value.Value, true, nil
}

func (s *DynamoKVStore) SetString(ctx context.Context, key, value string) error {
	_, err := s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(recentSearchesTableName),
		Item: map[string]dynamodb_types.AttributeValue{
			"key":   &dynamodb_types.AttributeValueMemberS{Value: key},
			"value": &dynamodb_types.AttributeValueMemberS{Value: value},
		},
	})
	return err
}

func (s *DynamoKVStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(recentSearchesTableName),
		Key: map[string]dynamodb_types.AttributeValue{
			"key": &dynamodb_types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
