package grpc

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/server/config"
	"github.com/dmitrijs2005/memoryvault/internal/server/intake"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/dmitrijs2005/memoryvault/internal/server/services"
	"github.com/stretchr/testify/require"
)

const testSecret = "secret"

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

var createdAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// fakeObjects keeps descriptors in memory, keyed by owner and key.
type fakeObjects struct {
	mu       sync.Mutex
	byKey    map[string]models.Descriptor
	owners   map[string]string
	stores   int
	storeErr error
	err      error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{byKey: map[string]models.Descriptor{}, owners: map[string]string{}}
}

func (f *fakeObjects) OpenVault(_ context.Context, ownerID string) (*models.Vault, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Vault{ID: "vault-" + ownerID, OwnerID: ownerID, CreatedAt: createdAt}, nil
}

func (f *fakeObjects) Store(_ context.Context, ownerID, kind string, up *intake.ValidatedUpload) (*services.StoreResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stores++
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	if kind == "" {
		kind = up.Kind
	}
	meta := models.ObjectMeta{
		Key:          "owner/" + ownerID + "/" + kind + "/1_0123456789abcdef." + up.Extension,
		VaultID:      "vault-" + ownerID,
		Kind:         kind,
		MimeType:     up.MimeType,
		Size:         up.Size,
		OriginalName: up.OriginalName,
		CreatedAt:    createdAt,
	}
	d, err := models.NewDescriptor(up.Level, meta, up.Encryption)
	if err != nil {
		return nil, err
	}
	f.byKey[meta.Key] = d
	f.owners[meta.Key] = ownerID
	return &services.StoreResult{Descriptor: d, Handle: handleFor(d)}, nil
}

func handleFor(d models.Descriptor) services.SignedHandle {
	bucket := "sm-bucket"
	if d.PrivacyLevel() == privacy.ZeroKnowledge {
		bucket = "zk-bucket"
	}
	return services.SignedHandle{URL: "https://storage.test/" + bucket + "/" + d.Meta().Key, ExpiresAt: createdAt.Add(time.Hour)}
}

func (f *fakeObjects) find(ownerID, key string) (models.Descriptor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.byKey[key]
	if !ok || f.owners[key] != ownerID {
		return nil, common.ErrorNotFound
	}
	return d, nil
}

func accessResult(d models.Descriptor) *services.AccessResult {
	m := d.Meta()
	r := &services.AccessResult{
		Key: m.Key, Kind: m.Kind, MimeType: m.MimeType, Size: m.Size, OriginalName: m.OriginalName,
		CreatedAt: m.CreatedAt, PrivacyLevel: d.PrivacyLevel(), Handle: handleFor(d),
	}
	if zk, ok := d.(*models.ZeroKnowledgeDescriptor); ok {
		enc := zk.Encryption
		r.Encryption = &enc
	}
	return r
}

func (f *fakeObjects) AccessRead(_ context.Context, ownerID, key string) (*services.AccessResult, error) {
	d, err := f.find(ownerID, key)
	if err != nil {
		return nil, err
	}
	return accessResult(d), nil
}

func (f *fakeObjects) Delete(_ context.Context, ownerID, key string) (*services.DeleteResult, error) {
	if _, err := f.find(ownerID, key); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byKey, key)
	return &services.DeleteResult{Key: key}, nil
}

func (f *fakeObjects) List(_ context.Context, ownerID string) ([]*services.AccessResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*services.AccessResult
	for k, d := range f.byKey {
		if f.owners[k] == ownerID {
			out = append(out, accessResult(d))
		}
	}
	return out, nil
}

func newTestGate(t *testing.T) *intake.Gate {
	t.Helper()
	g, err := intake.NewGate(1024, config.DefaultAllowedMimeTypes())
	require.NoError(t, err)
	return g
}

func newTestServer(t *testing.T, objects ObjectService) *GRPCServer {
	t.Helper()
	s, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, objects, newTestGate(t), testSecret)
	require.NoError(t, err)
	return s
}

func newLoggingServer(t *testing.T, objects ObjectService) (*GRPCServer, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	s, err := NewGRPCServer("127.0.0.1:0", logging.NewJSONLogger(buf, "debug"), objects, newTestGate(t), testSecret)
	require.NoError(t, err)
	return s, buf
}

func withUser(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}
