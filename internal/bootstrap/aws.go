package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/mlops-actions/sagemaker-training-action/config"
)

// NewTrainingClient builds the SageMaker client for the configured region.
// Static credentials from the step inputs take precedence when present;
// otherwise the SDK's default chain applies, which covers web-identity
// federation on hosted runners.
func NewTrainingClient(ctx context.Context, cfg config.AWSConfig) (*sagemaker.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS configuration: %w", err)
	}
	return sagemaker.NewFromConfig(awsCfg), nil
}
