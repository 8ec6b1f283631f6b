package database

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"stuff3d_checkout/internal/infrastructure/config"
)

// ConnectDynamoDB creates a DynamoDB client from the dynamodb.* settings.
//
// Local-friendly: with an endpoint (e.g. http://dynamodb:8000) every request
// goes there, and static credentials are always used since DynamoDB Local
// does not validate them.
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDBConfig, log *zap.Logger) (*dynamodb.Client, error) {
	if log == nil {
		log = zap.NewNop()
	}
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		log.Error("[dynamodb] failed to create config", zap.Error(err))
		return nil, err
	}
	log.Info("[dynamodb] client initialized",
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.Endpoint))
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoDBConfig) (aws.Config, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	creds := credentials.NewStaticCredentialsProvider(
		defaultString(cfg.AccessKeyID, "local"),
		defaultString(cfg.SecretAccessKey, "local"),
		"",
	)

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	}

	if endpoint := cfg.Endpoint; endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func defaultString(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
