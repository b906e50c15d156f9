package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/memoryvault/internal/flagx"
	"github.com/dmitrijs2005/memoryvault/internal/timex"
)

// JsonBucketConfig is the JSON shape of BucketConfig.
type JsonBucketConfig struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	Bucket          string `json:"bucket"`
}

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. Non-zero values are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC string              `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP string              `json:"endpoint_addr_http"`
	DatabaseDSN      string              `json:"database_dsn"`
	SecretKey        string              `json:"secret_key"`
	LogLevel         string              `json:"log_level"`
	S3Region         string              `json:"s3_region"`
	S3BaseEndpoint   string              `json:"s3_base_endpoint"`
	S3UsePathStyle   *bool               `json:"s3_use_path_style"`
	ZeroKnowledge    JsonBucketConfig    `json:"zero_knowledge"`
	ServerManaged    JsonBucketConfig    `json:"server_managed"`
	MaxUploadSize    int64               `json:"max_upload_size"`
	AllowedMimeTypes map[string][]string `json:"allowed_mime_types"`
	SignedURLExpiry  timex.Duration      `json:"signed_url_expiry"`
	StorageTimeout   timex.Duration      `json:"storage_timeout"`
	EnsureBuckets    *bool               `json:"ensure_buckets"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags. If neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.ConfigPath(os.Args[1:])

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	if c.S3UsePathStyle != nil {
		config.S3UsePathStyle = *c.S3UsePathStyle
	}

	setString(&config.ZeroKnowledge.AccessKeyID, c.ZeroKnowledge.AccessKeyID)
	setString(&config.ZeroKnowledge.SecretAccessKey, c.ZeroKnowledge.SecretAccessKey)
	setString(&config.ZeroKnowledge.Bucket, c.ZeroKnowledge.Bucket)
	setString(&config.ServerManaged.AccessKeyID, c.ServerManaged.AccessKeyID)
	setString(&config.ServerManaged.SecretAccessKey, c.ServerManaged.SecretAccessKey)
	setString(&config.ServerManaged.Bucket, c.ServerManaged.Bucket)

	if c.MaxUploadSize > 0 {
		config.MaxUploadSize = c.MaxUploadSize
	}
	if len(c.AllowedMimeTypes) > 0 {
		config.AllowedMimeTypes = c.AllowedMimeTypes
	}
	if c.SignedURLExpiry.Duration > 0 {
		config.SignedURLExpiry = c.SignedURLExpiry.Duration
	}
	if c.StorageTimeout.Duration > 0 {
		config.StorageTimeout = c.StorageTimeout.Duration
	}
	if c.EnsureBuckets != nil {
		config.EnsureBuckets = *c.EnsureBuckets
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
