package dynamo

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-shop-api/internal/config"
)

// NewClient creates the DynamoDB client. A non-empty cfg.AWSEndpointURL
// (LocalStack) redirects all traffic to the local instance.
func NewClient(cfg *config.Config) *dynamodb.Client {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOptions(cfg)...)
	if err != nil {
		panic("failed to load AWS config: " + err.Error())
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		}
	})
}

// loadOptions translates app config into aws-sdk load options. Static
// credentials are only injected when explicitly configured; otherwise the
// default chain (env, shared config, instance role) applies.
func loadOptions(cfg *config.Config) []func(*awsconfig.LoadOptions) error {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}
	return opts
}
