package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name, e.g.
// MEMVAULT_ZK_BUCKET.
const EnvPrefix = "MEMVAULT"

// parseEnv overlays values from MEMVAULT_* environment variables.
//
// Recognised variables (without prefix):
//
//	GRPC_ADDR, HTTP_ADDR, DATABASE_DSN, SECRET_KEY, LOG_LEVEL
//	S3_ENDPOINT, S3_REGION, S3_PATH_STYLE
//	ZK_ACCESS_KEY_ID, ZK_SECRET_ACCESS_KEY, ZK_BUCKET
//	SM_ACCESS_KEY_ID, SM_SECRET_ACCESS_KEY, SM_BUCKET
//	MAX_UPLOAD_SIZE (bytes), SIGNED_URL_EXPIRY_SECONDS, STORAGE_TIMEOUT (duration)
//	ENSURE_BUCKETS
//	ALLOWED_MIME_TEXT, ALLOWED_MIME_IMAGE, ALLOWED_MIME_AUDIO, ALLOWED_MIME_VIDEO (comma separated)
func parseEnv(config *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	strs := map[string]*string{
		"grpc_addr":            &config.EndpointAddrGRPC,
		"http_addr":            &config.EndpointAddrHTTP,
		"database_dsn":         &config.DatabaseDSN,
		"secret_key":           &config.SecretKey,
		"log_level":            &config.LogLevel,
		"s3_endpoint":          &config.S3BaseEndpoint,
		"s3_region":            &config.S3Region,
		"zk_access_key_id":     &config.ZeroKnowledge.AccessKeyID,
		"zk_secret_access_key": &config.ZeroKnowledge.SecretAccessKey,
		"zk_bucket":            &config.ZeroKnowledge.Bucket,
		"sm_access_key_id":     &config.ServerManaged.AccessKeyID,
		"sm_secret_access_key": &config.ServerManaged.SecretAccessKey,
		"sm_bucket":            &config.ServerManaged.Bucket,
	}
	for key, dst := range strs {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}

	if v.IsSet("s3_path_style") {
		config.S3UsePathStyle = v.GetBool("s3_path_style")
	}
	if v.IsSet("ensure_buckets") {
		config.EnsureBuckets = v.GetBool("ensure_buckets")
	}
	if v.IsSet("max_upload_size") {
		config.MaxUploadSize = v.GetInt64("max_upload_size")
	}
	if v.IsSet("signed_url_expiry_seconds") {
		config.SignedURLExpiry = time.Duration(v.GetInt64("signed_url_expiry_seconds")) * time.Second
	}
	if v.IsSet("storage_timeout") {
		config.StorageTimeout = v.GetDuration("storage_timeout")
	}

	for _, kind := range []string{KindText, KindImage, KindAudio, KindVideo} {
		key := "allowed_mime_" + kind
		if !v.IsSet(key) {
			continue
		}
		if config.AllowedMimeTypes == nil {
			config.AllowedMimeTypes = map[string][]string{}
		}
		config.AllowedMimeTypes[kind] = splitList(v.GetString(key))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
