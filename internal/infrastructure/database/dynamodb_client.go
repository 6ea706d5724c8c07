package database

import (
	"context"
	"os"

	"nbtech_pricing/internal/infrastructure/config"
	"nbtech_pricing/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates the DynamoDB client that stores tax tables.
//
// When cfg.DynamoDBEndpoint is set (DynamoDB Local) static credentials are
// used, taken from AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY or "local".
// Otherwise the default AWS credential chain applies (Lambda role, profile).
func ConnectDynamoDB(ctx context.Context, cfg config.Config) *dynamodb.Client {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create dynamodb config", zap.Error(err))
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

func NewDynamoDBConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}

	if cfg.DynamoDBEndpoint != "" {
		// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
		creds := credentials.NewStaticCredentialsProvider(
			localCredential("AWS_ACCESS_KEY_ID"),
			localCredential("AWS_SECRET_ACCESS_KEY"),
			"",
		)
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func localCredential(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return "local"
}
