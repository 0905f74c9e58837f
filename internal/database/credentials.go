package database

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/url"
)

const defaultPort = "5432"

// SecretSource decodes a named JSON secret.
type SecretSource interface {
	GetJSON(ctx context.Context, name string, dst any) error
}

// Credentials is the JSON layout of the database secret.
type Credentials struct {
	Host     string      `json:"host"`
	Username string      `json:"username"`
	Password string      `json:"password"`
	DBName   string      `json:"dbname"`
	Port     json.Number `json:"port"`
}

// Overrides replace secret fields when set.
type Overrides struct {
	Host   string
	DBName string
	Port   string
}

// DSN renders a postgres URL with escaped user info.
func (c Credentials) DSN(sslMode string) string {
	port := c.Port.String()
	if port == "" {
		port = defaultPort
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   net.JoinHostPort(c.Host, port),
		Path:   "/" + c.DBName,
	}
	if sslMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{sslMode}}.Encode()
	}
	return u.String()
}

func (c Credentials) withOverrides(o Overrides) Credentials {
	if o.Host != "" {
		c.Host = o.Host
	}
	if o.DBName != "" {
		c.DBName = o.DBName
	}
	if o.Port != "" {
		c.Port = json.Number(o.Port)
	}
	return c
}

// ResolveDSN returns databaseURL when set, otherwise builds one from the secret.
func ResolveDSN(ctx context.Context, databaseURL, secretName string, secrets SecretSource, o Overrides, sslMode string) (string, error) {
	if databaseURL != "" {
		return databaseURL, nil
	}
	if secretName == "" {
		return "", fmt.Errorf("database secret name is required")
	}

	var creds Credentials
	if err := secrets.GetJSON(ctx, secretName, &creds); err != nil {
		return "", fmt.Errorf("failed to load database credentials: %w", err)
	}
	creds = creds.withOverrides(o)

	if creds.Host == "" || creds.Username == "" || creds.DBName == "" {
		return "", fmt.Errorf("database credentials incomplete: host, username and dbname are required")
	}
	return creds.DSN(sslMode), nil
}
