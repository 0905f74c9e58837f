package cloud

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointResolver(t *testing.T) {
	resolve := endpointResolver("http://localstack:4566")

	for _, service := range []string{s3.ServiceID, secretsmanager.ServiceID} {
		endpoint, err := resolve(service, "us-east-1")
		require.NoError(t, err)
		assert.Equal(t, "http://localstack:4566", endpoint.URL)
		assert.Equal(t, "us-east-1", endpoint.SigningRegion)
		assert.True(t, endpoint.HostnameImmutable)
	}

	_, err := resolve("DynamoDB", "us-east-1")
	var notFound *aws.EndpointNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestLoadAWSConfig_EndpointOverrideUsesStaticCredentials(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), Options{
		Region:      "us-west-2",
		EndpointURL: "http://localstack:4566",
	})
	require.NoError(t, err)

	assert.Equal(t, "us-west-2", cfg.Region)
	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
	assert.Equal(t, "local", creds.SecretAccessKey)
}
