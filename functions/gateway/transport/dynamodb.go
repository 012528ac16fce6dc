package transport

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/helpers"
	"github.com/ayushijadhav2006/smile-share/functions/gateway/test_helpers"
	internal_types "github.com/ayushijadhav2006/smile-share/functions/gateway/types"
)

var (
	db     internal_types.DynamoDBAPI
	once   sync.Once
	testDB internal_types.DynamoDBAPI
)

func CreateDbClient() internal_types.DynamoDBAPI {
	// local dev runs dynamodb in a docker container
	dbUrl := "http://localhost:8000"

	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID && region == "us-east-1" {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           dbUrl,
				SigningRegion: "us-east-1",
			}, nil
		}
		// EndpointNotFoundError lets the sdk fall back to default resolution
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Println("Error loading default Dynamo client config", err)
	}

	if !helpers.IsDeployed() {
		optionalCredentials := config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY"),
				SecretAccessKey: os.Getenv("SECRET_ACCESS_KEY"),
				Source:          ".env file",
			},
		})
		cfg, err = config.LoadDefaultConfig(context.TODO(), config.WithEndpointResolverWithOptions(customResolver), optionalCredentials)
	}

	if err != nil {
		panic(err)
	}

	return dynamodb.NewFromConfig(cfg)
}

func SetTestDB(db internal_types.DynamoDBAPI) {
	testDB = db
}

func GetDB() internal_types.DynamoDBAPI {
	if os.Getenv("GO_ENV") == "test" {
		if testDB == nil {
			testDB = &test_helpers.MockDynamoDBClient{
				ScanFunc: func(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
					return &dynamodb.ScanOutput{
						Items: []map[string]types.AttributeValue{},
					}, nil
				},
			}
		}
		return testDB
	}
	once.Do(func() {
		db = CreateDbClient()
	})
	return db
}
