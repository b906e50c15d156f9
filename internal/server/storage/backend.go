// Package storage routes every object storage call to the bucket and
// credentials of one privacy level.
package storage

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
)

// Object is what gets written by Put.
type Object struct {
	Data        []byte
	ContentType string
	// Metadata is stored as x-amz-meta-* headers.
	Metadata map[string]string
}

// SignedURL is a time-limited read handle for one object.
type SignedURL struct {
	URL       string
	ExpiresAt time.Time
}

// Backend is a storage client bound to one privacy level. It can write,
// delete and sign reads, but never fetches object bytes itself.
type Backend interface {
	Level() privacy.Level
	Bucket() string
	Put(ctx context.Context, key string, obj Object) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (*SignedURL, error)
}

// Reader fetches object bytes. Only read-capable levels have one.
type Reader interface {
	Level() privacy.Level
	Bucket() string
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// Observer receives the outcome of every storage call.
type Observer interface {
	ObserveStorageCall(level privacy.Level, op string, d time.Duration, err error)
}

type noopObserver struct{}

func (noopObserver) ObserveStorageCall(privacy.Level, string, time.Duration, error) {}

type s3Backend struct {
	target   privacy.Target
	region   string
	api      objectAPI
	presign  presignAPI
	observer Observer
	now      func() time.Time
}

func newBackend(t privacy.Target, region string, api objectAPI, presign presignAPI, obs Observer) *s3Backend {
	if obs == nil {
		obs = noopObserver{}
	}
	return &s3Backend{
		target:   t,
		region:   region,
		api:      api,
		presign:  presign,
		observer: obs,
		now:      time.Now,
	}
}

func (b *s3Backend) Level() privacy.Level {
	return b.target.Level
}

func (b *s3Backend) Bucket() string {
	return b.target.Bucket
}

// call checks the capability, runs fn and reports the outcome.
func (b *s3Backend) call(op, key string, need privacy.Capability, fn func() error) error {
	if !b.target.Capabilities.Has(need) {
		return b.wrap(op, key, common.ErrCapabilityDenied)
	}
	start := b.now()
	err := fn()
	b.observer.ObserveStorageCall(b.target.Level, op, b.now().Sub(start), err)
	if err != nil {
		return b.wrap(op, key, err)
	}
	return nil
}

func (b *s3Backend) wrap(op, key string, err error) *Error {
	return &Error{Op: op, Level: b.target.Level, Bucket: b.target.Bucket, Key: key, Err: err}
}

// Put writes obj under key with AES256 server-side encryption.
func (b *s3Backend) Put(ctx context.Context, key string, obj Object) error {
	return b.call(OpPut, key, privacy.CapPut, func() error {
		_, err := b.api.PutObject(ctx, &s3.PutObjectInput{
			Bucket:               aws.String(b.target.Bucket),
			Key:                  aws.String(key),
			Body:                 bytes.NewReader(obj.Data),
			ContentLength:        aws.Int64(int64(len(obj.Data))),
			ContentType:          aws.String(obj.ContentType),
			ServerSideEncryption: types.ServerSideEncryptionAes256,
			Metadata:             obj.Metadata,
		})
		return err
	})
}

// Delete removes key. A key that is already gone counts as deleted.
func (b *s3Backend) Delete(ctx context.Context, key string) error {
	return b.call(OpDelete, key, privacy.CapDelete, func() error {
		_, err := b.api.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(b.target.Bucket),
			Key:    aws.String(key),
		})
		if isMissingKey(err) {
			return nil
		}
		return err
	})
}

// PresignGet signs a GET for key valid for expiry. Nothing is sent to the
// storage endpoint.
func (b *s3Backend) PresignGet(ctx context.Context, key string, expiry time.Duration) (*SignedURL, error) {
	var out *SignedURL
	err := b.call(OpPresignGet, key, privacy.CapSignRead, func() error {
		expiresAt := b.now().Add(expiry)
		req, err := b.presign.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(b.target.Bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(expiry))
		if err != nil {
			return err
		}
		out = &SignedURL{URL: req.URL, ExpiresAt: expiresAt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ensureBucket creates the bucket when HeadBucket reports it missing.
func (b *s3Backend) ensureBucket(ctx context.Context) error {
	return b.call(OpEnsureBucket, "", privacy.CapPut, func() error {
		_, err := b.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(b.target.Bucket)})
		if err == nil {
			return nil
		}
		if !isMissingBucket(err) {
			return err
		}

		in := &s3.CreateBucketInput{Bucket: aws.String(b.target.Bucket)}
		if b.region != "" && b.region != "us-east-1" {
			in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(b.region),
			}
		}
		_, err = b.api.CreateBucket(ctx, in)
		return err
	})
}

// s3Reader is the only type in the code base that calls GetObject.
type s3Reader struct {
	*s3Backend
	get readAPI
}

// Open streams the object body. The caller closes it.
func (r *s3Reader) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	var body io.ReadCloser
	err := r.call(OpGet, key, privacy.CapGet, func() error {
		out, err := r.get.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(r.target.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return err
		}
		body = out.Body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
