package mongo

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"filebox/internal/config"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Client wraps the driver client so callers get a uniform liveness check
// alongside database access.
type Client struct {
	*mongo.Client
}

// NewClient creates and returns a new MongoDB client based on the provided
// configuration. It handles standard connections and connections to AWS
// DocumentDB using an SSL certificate
func NewClient(ctx context.Context, cfg config.Mongo) (*Client, error) {
	// Build the MongoDB client options
	clientOptions := options.Client().ApplyURI(cfg.URL)

	// if a path to a DocumentDB certificate bundle is provided, configure TLS.
	if cfg.DocumentDBBundlePath != "" {
		tlsConfig, err := createTLSConfig(cfg.DocumentDBBundlePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config for DocumentDB: %w", err)
		}
		clientOptions.SetTLSConfig(tlsConfig)
	}

	// Connect to MongoDB
	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping the database to verify that the connection is alive and well,
	// so the application doesn't start with a bad DB connection.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{Client: client}, nil
}

// Alive reports whether the database still answers a ping. Used by the
// /status endpoint.
func (c *Client) Alive(ctx context.Context) bool {
	return c.Ping(ctx, readpref.Primary()) == nil
}

// createTLSConfig sets up a TLS configuration using a custom CA file. This is
// used to securely connect to services like AWS DocumentDB, which may require
// a specific certificate for SSL/TLS encryption.
func createTLSConfig(caFilePath string) (*tls.Config, error) {
	if _, err := os.Stat(caFilePath); os.IsNotExist(err) {
		return nil, errors.New("DocumentDB CA file not found at path: " + caFilePath)
	}

	certs := x509.NewCertPool()

	pem, err := os.ReadFile(caFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA file: %w", err)
	}

	certs.AppendCertsFromPEM(pem)

	return &tls.Config{
		RootCAs: certs,
	}, nil
}
