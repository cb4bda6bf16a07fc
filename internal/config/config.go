package config

import (
	"os"
	"strconv"
)

// Mongo contains configuration for the MongoDB connection
type Mongo struct {
	URL                  string // MongoDB connection URI
	Database             string // Database name
	DocumentDBBundlePath string // Path to a CA bundle for AWS DocumentDB. Empty means don't use it.
}

// Redis contains configuration for the session cache
type Redis struct {
	Addr     string // host:port of the Redis server
	Password string // Password, empty for none
	DB       int    // Logical database number
}

// Storage contains configuration for blob storage
type Storage struct {
	Type        string // Type of storage ("fs" or "s3")
	FSDirectory string // Base directory for local filesystem storage
	S3Region    string // AWS region
	S3ID        string // AWS S3 Access Key ID
	S3Key       string // AWS S3 Secret Access Key
	S3Bucket    string // AWS S3 bucket name
	S3Endpoint  string // Custom endpoint for S3-compatible services (e.g. MinIO). Empty for AWS.
}

// HTTP contains configuration for the HTTP server
type HTTP struct {
	Port     string // Port for the server to listen on
	KeyPath  string // Path to SSL key file for HTTPS
	CertPath string // Path to SSL certificate file for HTTPS
}

// Config is the top-level struct holding all application configuration
type Config struct {
	Mongo   Mongo
	Redis   Redis
	Storage Storage
	HTTP    HTTP
}

// The Load function reads configuration from environment variables and
// returns a populated Config struct.
//
//	It uses helper functions to read specific types and provide default values
func Load() (*Config, error) {
	redisDB, err := getenvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Mongo: Mongo{
			URL:                  getenvStr("MONGODB_URL", "mongodb://localhost:27017"),
			Database:             getenvStr("DB_DATABASE", "files_manager"),
			DocumentDBBundlePath: getenvStr("DOCUMENT_DB_BUNDLE_PATH", ""),
		},
		Redis: Redis{
			Addr:     getenvStr("REDIS_ADDR", "localhost:6379"),
			Password: getenvStr("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Storage: Storage{
			Type:        getenvStr("STORAGE_TYPE", "fs"), // "fs" or "s3"
			FSDirectory: getenvStr("FOLDER_PATH", "/tmp/files_manager"),
			S3Region:    getenvStr("S3_REGION", "us-east-1"),
			S3ID:        getenvStr("S3_ID", ""),
			S3Key:       getenvStr("S3_KEY", ""),
			S3Bucket:    getenvStr("S3_BUCKET", ""),
			S3Endpoint:  getenvStr("S3_ENDPOINT", ""),
		},
		HTTP: HTTP{
			Port:     getenvStr("PORT", ":5000"),
			KeyPath:  getenvStr("HTTPS_KEY_PATH", ""),
			CertPath: getenvStr("HTTPS_CRT_PATH", ""),
		},
	}
	return cfg, nil
}

// -------Helper Functions----------

// getenvStr retrieves a string environment variable or returns a default
func getenvStr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getenvInt retrieves an integer environment variable or returns a default value.
func getenvInt(key string, fallback int) (int, error) {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i, nil
		} else {
			return 0, err
		}
	}
	return fallback, nil
}
