package storage

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
)

// Storage operation names used in errors, logs and metric labels.
const (
	OpPut          = "put"
	OpDelete       = "delete"
	OpPresignGet   = "presign_get"
	OpGet          = "get"
	OpEnsureBucket = "ensure_bucket"
)

// Error is a failed call to the object storage endpoint.
type Error struct {
	Op     string
	Level  privacy.Level
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s %s (%s): %v", e.Op, e.Bucket, e.Level, e.Err)
	}
	return fmt.Sprintf("storage %s %s/%s (%s): %v", e.Op, e.Bucket, e.Key, e.Level, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// isMissingKey reports whether err means the key does not exist. A missing
// bucket is not a missing key.
func isMissingKey(err error) bool {
	var nsk *types.NoSuchKey
	var nf *types.NotFound
	if errors.As(err, &nsk) || errors.As(err, &nf) {
		return true
	}
	return hasErrorCode(err, "NoSuchKey", "NotFound")
}

// isMissingBucket reports whether a HeadBucket error means the bucket does
// not exist. HeadBucket has no body, so S3 answers a bare NotFound.
func isMissingBucket(err error) bool {
	var nsb *types.NoSuchBucket
	var nf *types.NotFound
	if errors.As(err, &nsb) || errors.As(err, &nf) {
		return true
	}
	return hasErrorCode(err, "NoSuchBucket", "NotFound")
}

func hasErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, c := range codes {
		if apiErr.ErrorCode() == c {
			return true
		}
	}
	return false
}
