package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/dmitrijs2005/memoryvault/internal/server/repositories/objects"
	"github.com/dmitrijs2005/memoryvault/internal/server/repositories/vaults"
	"github.com/dmitrijs2005/memoryvault/internal/server/storage"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// events records the order of storage and persistence calls across fakes.
type events struct {
	mu  sync.Mutex
	log []string
}

func (e *events) add(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = append(e.log, s)
}

func (e *events) all() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.log...)
}

// --- repositories ---

type fakeVaultsRepo struct {
	mu      sync.Mutex
	byOwner map[string]*models.Vault
	getErr  error
	created []string
}

func (f *fakeVaultsRepo) GetByOwner(_ context.Context, ownerID string) (*models.Vault, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.byOwner[ownerID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return v, nil
}

func (f *fakeVaultsRepo) Create(_ context.Context, ownerID string) (*models.Vault, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := &models.Vault{ID: "vault-" + ownerID, OwnerID: ownerID, CreatedAt: fixedNow}
	f.byOwner[ownerID] = v
	f.created = append(f.created, ownerID)
	return v, nil
}

type fakeObjectsRepo struct {
	mu        sync.Mutex
	ev        *events
	rows      map[string]*models.ObjectRow
	order     []string
	createErr error
	deleteErr error
	listErr   error
	finds     int
}

func (f *fakeObjectsRepo) Create(_ context.Context, row *models.ObjectRow) error {
	f.ev.add("row.create " + row.Key)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	row.CreatedAt = fixedNow
	cp := *row
	f.rows[row.Key] = &cp
	f.order = append(f.order, row.Key)
	return nil
}

func (f *fakeObjectsRepo) FindInVault(_ context.Context, key, vaultID string) (*models.ObjectRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finds++
	r, ok := f.rows[key]
	if !ok || r.VaultID != vaultID {
		return nil, common.ErrorNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeObjectsRepo) Delete(ctx context.Context, key string) error {
	f.ev.add("row.delete " + key)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	delete(f.rows, key)
	return nil
}

func (f *fakeObjectsRepo) ListByVault(_ context.Context, vaultID string) ([]*models.ObjectRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.ObjectRow
	for _, k := range f.order {
		if r, ok := f.rows[k]; ok && r.VaultID == vaultID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeObjectsRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type fakeRepoManager struct {
	v *fakeVaultsRepo
	o *fakeObjectsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Vaults(dbx.DBTX) vaults.Repository            { return m.v }
func (m *fakeRepoManager) Objects(dbx.DBTX) objects.Repository          { return m.o }

// --- storage ---

type fakeBackend struct {
	mu         sync.Mutex
	ev         *events
	level      privacy.Level
	bucket     string
	putErr     error
	deleteErr  error
	presignErr error
	// presignHook runs inside PresignGet before it returns.
	presignHook func()
	// deleteHook runs after a successful Delete.
	deleteHook func()

	puts     map[string]storage.Object
	putCalls int
	deletes  []string
	presigns []time.Duration
}

func newFakeBackend(ev *events, level privacy.Level, bucket string) *fakeBackend {
	return &fakeBackend{ev: ev, level: level, bucket: bucket, puts: map[string]storage.Object{}}
}

func (b *fakeBackend) Level() privacy.Level { return b.level }
func (b *fakeBackend) Bucket() string       { return b.bucket }

func (b *fakeBackend) Put(_ context.Context, key string, obj storage.Object) error {
	b.ev.add(fmt.Sprintf("%s.put %s", b.bucket, key))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.putCalls++
	if b.putErr != nil {
		return &storage.Error{Op: storage.OpPut, Level: b.level, Bucket: b.bucket, Key: key, Err: b.putErr}
	}
	b.puts[key] = obj
	return nil
}

func (b *fakeBackend) Delete(ctx context.Context, key string) error {
	b.ev.add(fmt.Sprintf("%s.delete %s", b.bucket, key))
	b.mu.Lock()
	b.deletes = append(b.deletes, key)
	err := b.deleteErr
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		b.mu.Unlock()
		return &storage.Error{Op: storage.OpDelete, Level: b.level, Bucket: b.bucket, Key: key, Err: err}
	}
	delete(b.puts, key)
	hook := b.deleteHook
	b.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

func (b *fakeBackend) PresignGet(_ context.Context, key string, expiry time.Duration) (*storage.SignedURL, error) {
	if b.presignHook != nil {
		b.presignHook()
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.presigns = append(b.presigns, expiry)
	if b.presignErr != nil {
		return nil, b.presignErr
	}
	return &storage.SignedURL{
		URL:       "https://storage.test/" + b.bucket + "/" + key + "?sig=1",
		ExpiresAt: fixedNow.Add(expiry),
	}, nil
}

func (b *fakeBackend) calls() (puts, deletes, presigns int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.putCalls, len(b.deletes), len(b.presigns)
}

type fakeReader struct {
	body  string
	opens []string
}

func (r *fakeReader) Level() privacy.Level { return privacy.ServerManaged }
func (r *fakeReader) Bucket() string       { return "sm-bucket" }
func (r *fakeReader) Open(_ context.Context, key string) (io.ReadCloser, error) {
	r.opens = append(r.opens, key)
	return io.NopCloser(strings.NewReader(r.body)), nil
}

type fakeRouter struct {
	backends privacy.Table[*fakeBackend]
	reader   *fakeReader
}

func (r *fakeRouter) ClientFor(level privacy.Level) (storage.Backend, error) {
	b, err := r.backends.Resolve(level)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *fakeRouter) ServerManagedReader() storage.Reader {
	return r.reader
}

// --- metrics ---

type fakeMetrics struct {
	mu       sync.Mutex
	uploaded map[privacy.Level]int64
	orphans  []string
}

func (m *fakeMetrics) RecordUpload(level privacy.Level, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploaded[level] += size
}

func (m *fakeMetrics) RecordOrphan(level privacy.Level, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orphans = append(m.orphans, string(level)+":"+reason)
}

// --- harness ---

type harness struct {
	svc     *ObjectService
	mock    sqlmock.Sqlmock
	ev      *events
	vaults  *fakeVaultsRepo
	objects *fakeObjectsRepo
	zk, sm  *fakeBackend
	reader  *fakeReader
	metrics *fakeMetrics
	logs    *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ev := &events{}
	h := &harness{
		mock:    mock,
		ev:      ev,
		vaults:  &fakeVaultsRepo{byOwner: map[string]*models.Vault{}},
		objects: &fakeObjectsRepo{ev: ev, rows: map[string]*models.ObjectRow{}},
		zk:      newFakeBackend(ev, privacy.ZeroKnowledge, "zk-bucket"),
		sm:      newFakeBackend(ev, privacy.ServerManaged, "sm-bucket"),
		reader:  &fakeReader{body: "hello"},
		metrics: &fakeMetrics{uploaded: map[privacy.Level]int64{}},
		logs:    &bytes.Buffer{},
	}
	router := &fakeRouter{
		backends: privacy.Table[*fakeBackend]{ZeroKnowledge: h.zk, ServerManaged: h.sm},
		reader:   h.reader,
	}
	logger := logging.NewJSONLogger(h.logs, "debug")
	h.svc = NewObjectService(db, &fakeRepoManager{v: h.vaults, o: h.objects}, router, h.metrics, logger, time.Hour)
	h.svc.now = func() time.Time { return fixedNow }
	return h
}

func (h *harness) addVault(ownerID string) *models.Vault {
	v := &models.Vault{ID: "vault-" + ownerID, OwnerID: ownerID, CreatedAt: fixedNow}
	h.vaults.byOwner[ownerID] = v
	return v
}

// logLines returns decoded log records at level (e.g. "WARN").
func (h *harness) logLines(t *testing.T, level string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(h.logs.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["level"] == level {
			out = append(out, rec)
		}
	}
	return out
}
