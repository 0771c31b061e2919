package storage

// DefaultBucket is used when MINIO_BUCKET is not set.
const DefaultBucket = "cardapio"

// MinIOConfig holds MinIO connection configuration
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}
