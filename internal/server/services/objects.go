// Package services contains server-side business logic. ObjectService stores
// memories under a privacy level, issues signed read handles and deletes
// them again, keeping the object store and the descriptor rows in step.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/dbx"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/server/intake"
	"github.com/dmitrijs2005/memoryvault/internal/server/metrics"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/dmitrijs2005/memoryvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/memoryvault/internal/server/storage"
	"golang.org/x/sync/errgroup"
)

// DefaultSignedURLExpiry is used when no expiry is configured.
const DefaultSignedURLExpiry = time.Hour

// keySuffixBytes random bytes give the 16 hex chars of the key suffix.
const keySuffixBytes = 8

// cleanupTimeout bounds storage and row deletes that must outlive the
// caller's context once started.
const cleanupTimeout = 30 * time.Second

// StorageRouter is the part of storage.Router the service uses.
type StorageRouter interface {
	ClientFor(level privacy.Level) (storage.Backend, error)
	ServerManagedReader() storage.Reader
}

// Metrics records uploads and objects left behind in storage.
type Metrics interface {
	RecordUpload(level privacy.Level, size int64)
	RecordOrphan(level privacy.Level, reason string)
}

// SignedHandle is a time-limited read URL for one object. It is never stored.
type SignedHandle struct {
	URL       string
	ExpiresAt time.Time
}

// StoreResult is returned by Store.
type StoreResult struct {
	Descriptor models.Descriptor
	Handle     SignedHandle
}

// AccessResult is what a caller gets back for one readable object.
type AccessResult struct {
	Key          string
	Kind         string
	MimeType     string
	Size         int64
	OriginalName string
	CreatedAt    time.Time
	PrivacyLevel privacy.Level
	Handle       SignedHandle
	// Encryption is set only for zero-knowledge objects.
	Encryption *models.Encryption
}

// DeleteResult reports a delete. StorageErr is set when the object could not
// be removed from storage; the descriptor row is gone either way.
type DeleteResult struct {
	Key        string
	StorageErr error
}

type ObjectService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	router      StorageRouter
	metrics     Metrics
	logger      logging.Logger
	expiry      time.Duration
	now         func() time.Time
	randHex     func(size int) (string, error)
}

type noopMetrics struct{}

func (noopMetrics) RecordUpload(privacy.Level, int64)  {}
func (noopMetrics) RecordOrphan(privacy.Level, string) {}

// NewObjectService wires the service. m may be nil.
func NewObjectService(db *sql.DB, rm repomanager.RepositoryManager, router StorageRouter, m Metrics,
	logger logging.Logger, expiry time.Duration) *ObjectService {
	if m == nil {
		m = noopMetrics{}
	}
	if expiry <= 0 {
		expiry = DefaultSignedURLExpiry
	}
	return &ObjectService{
		db:          db,
		repomanager: rm,
		router:      router,
		metrics:     m,
		logger:      logger.With("component", "object_service"),
		expiry:      expiry,
		now:         time.Now,
		randHex:     common.MakeRandHexString,
	}
}

// OpenVault returns the owner's vault, creating it on first use.
func (s *ObjectService) OpenVault(ctx context.Context, ownerID string) (*models.Vault, error) {
	var vault *models.Vault
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Vaults(tx)
		v, err := repo.GetByOwner(ctx, ownerID)
		if err == nil {
			vault = v
			return nil
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		vault, err = repo.Create(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error opening vault: %w", err)
	}
	return vault, nil
}

// Store writes upload to the backend of its privacy level, records the
// descriptor and returns a read handle for it. The object is written before
// the row; if the row cannot be written the object is removed again.
func (s *ObjectService) Store(ctx context.Context, ownerID, kind string, upload *intake.ValidatedUpload) (*StoreResult, error) {
	if kind == "" {
		kind = upload.Kind
	}
	if kind != upload.Kind {
		return nil, &intake.Error{
			Field:   "kind",
			Message: fmt.Sprintf("mime type %s is not a %s type", upload.MimeType, kind),
			Err:     intake.ErrUnsupportedMediaType,
		}
	}

	vault, err := s.vaultOf(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	key, err := s.newKey(ownerID, kind, upload.Extension)
	if err != nil {
		return nil, fmt.Errorf("error generating key: %w", err)
	}

	d, err := models.NewDescriptor(upload.Level, models.ObjectMeta{
		Key:          key,
		VaultID:      vault.ID,
		Kind:         kind,
		MimeType:     upload.MimeType,
		Size:         upload.Size,
		OriginalName: upload.OriginalName,
	}, upload.Encryption)
	if err != nil {
		s.logger.Error(ctx, "refusing to store inconsistent descriptor", "key", key, "privacy_level", upload.Level, "error", err)
		return nil, err
	}

	backend, err := s.router.ClientFor(d.PrivacyLevel())
	if err != nil {
		return nil, err
	}

	err = backend.Put(ctx, key, storage.Object{
		Data:        upload.Data,
		ContentType: upload.MimeType,
		Metadata: map[string]string{
			"privacy-level": d.PrivacyLevel().String(),
			"owner":         url.QueryEscape(ownerID),
			"original-name": url.QueryEscape(upload.OriginalName),
			"mime-type":     upload.MimeType,
		},
	})
	if err != nil {
		s.logger.Error(ctx, "object write failed", "key", key, "privacy_level", d.PrivacyLevel(), "bucket", backend.Bucket(), "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorStoreFailed, err)
	}
	s.metrics.RecordUpload(d.PrivacyLevel(), upload.Size)

	row := models.RowFromDescriptor(d)
	if err := s.repomanager.Objects(s.db).Create(ctx, &row); err != nil {
		s.logger.Error(ctx, "descriptor insert failed, removing object", "key", key, "privacy_level", d.PrivacyLevel(), "error", err)
		s.compensate(ctx, backend, key)
		return nil, fmt.Errorf("%w: %w", common.ErrorStoreFailed, err)
	}

	d, err = models.DescriptorFromRow(row)
	if err != nil {
		return nil, err
	}

	handle, err := s.sign(ctx, backend, key)
	if err != nil {
		return nil, err
	}
	return &StoreResult{Descriptor: d, Handle: handle}, nil
}

// compensate removes an object whose row could not be written. A failure
// leaves an orphan that is logged and counted.
func (s *ObjectService) compensate(ctx context.Context, backend storage.Backend, key string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := backend.Delete(cctx, key); err != nil {
		s.metrics.RecordOrphan(backend.Level(), metrics.OrphanCompensationFailed)
		s.logger.Warn(ctx, "compensating delete failed, object orphaned",
			"key", key, "privacy_level", backend.Level(), "bucket", backend.Bucket(), "error", err)
	}
}

// AccessRead issues a fresh read handle for key. A key of another owner is
// reported exactly like a missing key.
func (s *ObjectService) AccessRead(ctx context.Context, ownerID, key string) (*AccessResult, error) {
	d, err := s.describe(ctx, ownerID, key)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, d)
}

// Delete removes the object and then its row. A storage failure does not
// stop the row delete; it is logged and returned on DeleteResult.StorageErr.
// Once the object delete starts, both steps run to completion even if ctx is
// cancelled, so a row never outlives its object.
func (s *ObjectService) Delete(ctx context.Context, ownerID, key string) (*DeleteResult, error) {
	d, err := s.describe(ctx, ownerID, key)
	if err != nil {
		return nil, err
	}

	res := &DeleteResult{Key: key}
	backend, err := s.router.ClientFor(d.PrivacyLevel())
	if err != nil {
		return nil, err
	}

	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := backend.Delete(dctx, key); err != nil {
		res.StorageErr = err
		s.metrics.RecordOrphan(d.PrivacyLevel(), metrics.OrphanDeleteFailed)
		s.logger.Warn(ctx, "object delete failed, removing descriptor anyway",
			"key", key, "privacy_level", d.PrivacyLevel(), "bucket", backend.Bucket(), "error", err)
	}

	if err := s.repomanager.Objects(s.db).Delete(dctx, key); err != nil {
		return nil, fmt.Errorf("error deleting descriptor: %w", err)
	}
	return res, nil
}

// List issues a handle for every object of the owner. Handles are signed
// concurrently; an owner without a vault has no objects.
func (s *ObjectService) List(ctx context.Context, ownerID string) ([]*AccessResult, error) {
	vault, err := s.vaultOf(ctx, ownerID)
	if errors.Is(err, common.ErrorNotFound) {
		return []*AccessResult{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.repomanager.Objects(s.db).ListByVault(ctx, vault.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing objects: %w", err)
	}

	out := make([]*AccessResult, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		g.Go(func() error {
			d, err := s.decode(gctx, *row)
			if err != nil {
				return err
			}
			res, err := s.issue(gctx, d)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadContent streams a server-managed object for server-side processing.
// Zero-knowledge objects are refused without touching storage.
func (s *ObjectService) ReadContent(ctx context.Context, ownerID, key string) (io.ReadCloser, error) {
	d, err := s.describe(ctx, ownerID, key)
	if err != nil {
		return nil, err
	}

	switch d.(type) {
	case *models.ServerManagedDescriptor:
		reader := s.router.ServerManagedReader()
		if reader == nil {
			return nil, common.ErrCapabilityDenied
		}
		return reader.Open(ctx, key)
	default:
		return nil, common.ErrCapabilityDenied
	}
}

func (s *ObjectService) vaultOf(ctx context.Context, ownerID string) (*models.Vault, error) {
	v, err := s.repomanager.Vaults(s.db).GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error resolving vault: %w", err)
	}
	return v, nil
}

// describe loads the descriptor of key through the owner's vault.
func (s *ObjectService) describe(ctx context.Context, ownerID, key string) (models.Descriptor, error) {
	vault, err := s.vaultOf(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	row, err := s.repomanager.Objects(s.db).FindInVault(ctx, key, vault.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading descriptor: %w", err)
	}
	return s.decode(ctx, *row)
}

func (s *ObjectService) decode(ctx context.Context, row models.ObjectRow) (models.Descriptor, error) {
	d, err := models.DescriptorFromRow(row)
	if err != nil {
		s.logger.Error(ctx, "descriptor invariant violated", "key", row.Key, "privacy_level", row.PrivacyLevel, "error", err)
		return nil, err
	}
	return d, nil
}

// issue signs a read for d using the backend of its recorded level.
func (s *ObjectService) issue(ctx context.Context, d models.Descriptor) (*AccessResult, error) {
	backend, err := s.router.ClientFor(d.PrivacyLevel())
	if err != nil {
		return nil, err
	}
	meta := d.Meta()
	handle, err := s.sign(ctx, backend, meta.Key)
	if err != nil {
		return nil, err
	}

	res := &AccessResult{
		Key:          meta.Key,
		Kind:         meta.Kind,
		MimeType:     meta.MimeType,
		Size:         meta.Size,
		OriginalName: meta.OriginalName,
		CreatedAt:    meta.CreatedAt,
		PrivacyLevel: d.PrivacyLevel(),
		Handle:       handle,
	}
	if zk, ok := d.(*models.ZeroKnowledgeDescriptor); ok {
		enc := zk.Encryption
		res.Encryption = &enc
	}
	return res, nil
}

func (s *ObjectService) sign(ctx context.Context, backend storage.Backend, key string) (SignedHandle, error) {
	u, err := backend.PresignGet(ctx, key, s.expiry)
	if err != nil {
		return SignedHandle{}, fmt.Errorf("error signing read handle: %w", err)
	}
	return SignedHandle{URL: u.URL, ExpiresAt: u.ExpiresAt}, nil
}

// newKey builds owner/{owner}/{kind}/{unixMillis}_{16 hex}.{ext}.
func (s *ObjectService) newKey(ownerID, kind, ext string) (string, error) {
	suffix, err := s.randHex(keySuffixBytes)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("owner/%s/%s/%d_%s.%s", url.PathEscape(ownerID), kind, s.now().UnixMilli(), suffix, ext), nil
}
