package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
)

// Router hands out the storage client for a privacy level. It is the only
// way the rest of the server reaches object storage. A Router is immutable
// and safe for concurrent use.
type Router struct {
	backends privacy.Table[*s3Backend]
	readers  privacy.Table[*s3Reader]
}

// NewRouter dials one S3 client per level using that level's credentials.
func NewRouter(ctx context.Context, resolver *privacy.Resolver, opts Options, obs Observer) (*Router, error) {
	clients, err := privacy.MapTable(resolver.Targets(), func(l privacy.Level, t privacy.Target) (*s3.Client, error) {
		c, err := dial(ctx, t, opts)
		if err != nil {
			return nil, fmt.Errorf("%s storage client: %w", l, err)
		}
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	apis, _ := privacy.MapTable(clients, func(_ privacy.Level, c *s3.Client) (readAPI, error) {
		return c, nil
	})
	presigners, _ := privacy.MapTable(clients, func(_ privacy.Level, c *s3.Client) (presignAPI, error) {
		return newS3PresignClient(c), nil
	})

	return newRouter(resolver, opts.Region, apis, presigners, obs)
}

func newRouter(resolver *privacy.Resolver, region string, apis privacy.Table[readAPI], presigners privacy.Table[presignAPI], obs Observer) (*Router, error) {
	targets := resolver.Targets()

	backends, err := privacy.MapTable(targets, func(l privacy.Level, t privacy.Target) (*s3Backend, error) {
		api, err := apis.Resolve(l)
		if err != nil {
			return nil, err
		}
		p, err := presigners.Resolve(l)
		if err != nil {
			return nil, err
		}
		// The write path only ever sees the objectAPI subset.
		return newBackend(t, region, objectAPI(api), p, obs), nil
	})
	if err != nil {
		return nil, err
	}

	readers, err := privacy.MapTable(targets, func(l privacy.Level, t privacy.Target) (*s3Reader, error) {
		if !t.Capabilities.Has(privacy.CapGet) {
			return nil, nil
		}
		api, err := apis.Resolve(l)
		if err != nil {
			return nil, err
		}
		b, err := backends.Resolve(l)
		if err != nil {
			return nil, err
		}
		return &s3Reader{s3Backend: b, get: api}, nil
	})
	if err != nil {
		return nil, err
	}

	return &Router{backends: backends, readers: readers}, nil
}

// ClientFor returns the backend for level.
func (r *Router) ClientFor(level privacy.Level) (Backend, error) {
	b, err := r.backends.Resolve(level)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// BucketFor returns the bucket for level.
func (r *Router) BucketFor(level privacy.Level) (string, error) {
	b, err := r.backends.Resolve(level)
	if err != nil {
		return "", err
	}
	return b.Bucket(), nil
}

// ServerManagedReader returns the read-capable client. It is not keyed by a
// level so a caller cannot ask for a zero-knowledge reader.
func (r *Router) ServerManagedReader() Reader {
	rd, err := r.readers.Resolve(privacy.ServerManaged)
	if err != nil || rd == nil {
		return nil
	}
	return rd
}

// EnsureBuckets creates any missing bucket, one level at a time.
func (r *Router) EnsureBuckets(ctx context.Context) error {
	for _, l := range privacy.Levels() {
		b, err := r.backends.Resolve(l)
		if err != nil {
			return err
		}
		if err := b.ensureBucket(ctx); err != nil {
			return err
		}
	}
	return nil
}
