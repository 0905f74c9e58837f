package cloud

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rotisserie/eris"
)

// Options selects the region and, for local stacks, an endpoint with static credentials.
type Options struct {
	Region          string
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
}

// LoadAWSConfig builds the shared AWS configuration.
//
// Without EndpointURL the default credential chain is used (task role, env, profile).
// With EndpointURL (e.g. http://localstack:4566) S3 and Secrets Manager are routed
// there and static credentials are used, defaulting to "local".
func LoadAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if opts.EndpointURL != "" {
		loadOpts = append(loadOpts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				valueOr(opts.AccessKeyID, "local"),
				valueOr(opts.SecretAccessKey, "local"),
				"",
			)),
			config.WithEndpointResolverWithOptions(endpointResolver(opts.EndpointURL)),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, eris.Wrap(err, "aws: load config")
	}
	return cfg, nil
}

// NewS3Client uses path-style addressing when an endpoint override is active.
func NewS3Client(cfg aws.Config, endpointOverride bool) *s3.Client {
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = endpointOverride
	})
}

func NewSecretsManagerClient(cfg aws.Config) *secretsmanager.Client {
	return secretsmanager.NewFromConfig(cfg)
}

func endpointResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		switch service {
		case s3.ServiceID, secretsmanager.ServiceID:
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
