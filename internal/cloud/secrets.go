package cloud

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rotisserie/eris"
	"github.com/terraenergy/prospect-quote-api/pkg/logger"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsProvider fetches secrets once and keeps them for the life of the process.
type SecretsProvider struct {
	client SecretsManagerAPI
	mu     sync.Mutex
	cache  map[string]string
}

func NewSecretsProvider(client SecretsManagerAPI) *SecretsProvider {
	return &SecretsProvider{
		client: client,
		cache:  make(map[string]string),
	}
}

// GetString returns the secret string, calling Secrets Manager only on first use.
func (p *SecretsProvider) GetString(ctx context.Context, name string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if value, ok := p.cache[name]; ok {
		return value, nil
	}

	out, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return "", eris.Wrapf(err, "secrets: get %s", name)
	}
	if out.SecretString == nil {
		return "", eris.Errorf("secrets: %s has no string value", name)
	}

	p.cache[name] = *out.SecretString
	logger.Debug("Secret loaded", "secret", name)
	return *out.SecretString, nil
}

// GetJSON decodes a JSON secret into dst.
func (p *SecretsProvider) GetJSON(ctx context.Context, name string, dst any) error {
	raw, err := p.GetString(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return eris.Wrapf(err, "secrets: decode %s", name)
	}
	return nil
}

// BucketSecret is the JSON layout of the S3 secret.
type BucketSecret struct {
	BucketName string `json:"bucketName"`
}

// ResolveBucket prefers the configured bucket and falls back to the bucket secret.
func ResolveBucket(ctx context.Context, secrets *SecretsProvider, bucket, secretName string) (string, error) {
	if bucket != "" {
		return bucket, nil
	}
	if secretName == "" {
		return "", eris.New("s3: no bucket configured")
	}

	var s BucketSecret
	if err := secrets.GetJSON(ctx, secretName, &s); err != nil {
		return "", err
	}
	if s.BucketName == "" {
		return "", eris.Errorf("s3: secret %s has no bucketName", secretName)
	}
	return s.BucketName, nil
}
