package storage

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu sync.Mutex

	puts    []*s3.PutObjectInput
	deletes []string
	gets    []string
	heads   []string
	creates []*s3.CreateBucketInput

	putErr    error
	deleteErr error
	headErr   error
	createErr error
	getErr    error
	body      []byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(_ context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.heads = append(f.heads, aws.ToString(in.Bucket))
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) CreateBucket(_ context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &s3.CreateBucketOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, aws.ToString(in.Key))
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

type observed struct {
	level privacy.Level
	op    string
	err   error
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observed
}

func (o *recordingObserver) ObserveStorageCall(level privacy.Level, op string, _ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, observed{level: level, op: op, err: err})
}

func testResolver(t *testing.T) *privacy.Resolver {
	t.Helper()
	r, err := privacy.NewResolver(
		privacy.Target{Bucket: "zk-bucket", Credentials: privacy.Credentials{AccessKeyID: "zk-writer", SecretAccessKey: "zk-secret"}},
		privacy.Target{Bucket: "sm-bucket", Credentials: privacy.Credentials{AccessKeyID: "sm-service", SecretAccessKey: "sm-secret"}},
	)
	require.NoError(t, err)
	return r
}

// offlinePresigner signs URLs locally with static credentials.
func offlinePresigner(accessKey string) presignAPI {
	c := s3.New(s3.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, "secret", ""),
		BaseEndpoint: aws.String("http://127.0.0.1:9000"),
		UsePathStyle: true,
	})
	return s3.NewPresignClient(c)
}

type testRouter struct {
	*Router
	zk, sm *fakeS3
	obs    *recordingObserver
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()
	zk, sm := &fakeS3{}, &fakeS3{}
	obs := &recordingObserver{}
	r, err := newRouter(testResolver(t), "us-east-1",
		privacy.Table[readAPI]{ZeroKnowledge: zk, ServerManaged: sm},
		privacy.Table[presignAPI]{ZeroKnowledge: offlinePresigner("zk-writer"), ServerManaged: offlinePresigner("sm-service")},
		obs,
	)
	require.NoError(t, err)
	return &testRouter{Router: r, zk: zk, sm: sm, obs: obs}
}
