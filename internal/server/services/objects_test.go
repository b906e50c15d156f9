package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/server/config"
	"github.com/dmitrijs2005/memoryvault/internal/server/intake"
	"github.com/dmitrijs2005/memoryvault/internal/server/metrics"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/dmitrijs2005/memoryvault/internal/server/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIV  = "00112233445566778899aabbccddeeff"
	testTag = "ffeeddccbbaa99887766554433221100"
)

func newGate(t *testing.T) *intake.Gate {
	t.Helper()
	g, err := intake.NewGate(4<<20, config.DefaultAllowedMimeTypes())
	require.NoError(t, err)
	return g
}

func validated(t *testing.T, level privacy.Level, p intake.Payload) *intake.ValidatedUpload {
	t.Helper()
	up, err := newGate(t).Validate(level, p)
	require.NoError(t, err)
	return up
}

var keyPattern = regexp.MustCompile(`^owner/user-1/(text|image|audio|video)/\d+_[0-9a-f]{16}\.[a-z0-9]+$`)

func TestStore_ScenarioA_ServerManagedImage(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")

	up := validated(t, privacy.ServerManaged, intake.Payload{
		Data:         bytes.Repeat([]byte{0x89}, 2<<20),
		MimeType:     "image/png",
		OriginalName: "sunset.png",
		IV:           testIV,
	})

	res, err := h.svc.Store(context.Background(), "user-1", "image", up)
	require.NoError(t, err)

	d, ok := res.Descriptor.(*models.ServerManagedDescriptor)
	require.True(t, ok, "got %T", res.Descriptor)
	assert.Regexp(t, keyPattern, d.Key)
	assert.Equal(t, "image", d.Kind)
	assert.Equal(t, int64(2<<20), d.Size)
	assert.Equal(t, "vault-user-1", d.VaultID)

	row := h.objects.rows[d.Key]
	require.NotNil(t, row)
	assert.False(t, row.EncryptionIV.Valid)
	assert.False(t, row.EncryptionAuthTag.Valid)

	assert.Equal(t, fixedNow.Add(time.Hour), res.Handle.ExpiresAt)
	assert.Contains(t, res.Handle.URL, "/sm-bucket/")

	obj := h.sm.puts[d.Key]
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, map[string]string{
		"privacy-level": "server_managed",
		"owner":         "user-1",
		"original-name": "sunset.png",
		"mime-type":     "image/png",
	}, obj.Metadata)
	assert.Empty(t, h.zk.puts)
	assert.Equal(t, int64(2<<20), h.metrics.uploaded[privacy.ServerManaged])

	got, err := h.svc.AccessRead(context.Background(), "user-1", d.Key)
	require.NoError(t, err)
	assert.Contains(t, got.Handle.URL, "/sm-bucket/")
	assert.Nil(t, got.Encryption)
	assert.Equal(t, privacy.ServerManaged, got.PrivacyLevel)
	assert.Equal(t, "image/png", got.MimeType)
}

func TestStore_MetadataValuesAreEscaped(t *testing.T) {
	h := newHarness(t)
	owner := "Zoë Smith\n"
	h.addVault(owner)

	up := validated(t, privacy.ServerManaged, intake.Payload{
		Data:         []byte("hi"),
		MimeType:     "text/plain",
		OriginalName: "café notes.txt",
	})
	res, err := h.svc.Store(context.Background(), owner, "text", up)
	require.NoError(t, err)

	md := h.sm.puts[res.Descriptor.Meta().Key].Metadata
	assert.Equal(t, url.QueryEscape(owner), md["owner"])
	assert.Equal(t, "Zo%C3%AB+Smith%0A", md["owner"])
	for k, v := range md {
		for _, r := range v {
			assert.True(t, r > ' ' && r < 0x7f, "metadata %s has unsafe rune %q", k, r)
		}
	}
}

func TestStore_ScenarioB_ZeroKnowledgeKeepsIV(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")

	up := validated(t, privacy.ZeroKnowledge, intake.Payload{
		Data:         []byte("ciphertext"),
		MimeType:     "audio/mpeg",
		OriginalName: "voice.mp3",
		IV:           testIV,
		AuthTag:      testTag,
	})

	res, err := h.svc.Store(context.Background(), "user-1", "", up)
	require.NoError(t, err)

	d, ok := res.Descriptor.(*models.ZeroKnowledgeDescriptor)
	require.True(t, ok, "got %T", res.Descriptor)
	assert.Equal(t, testIV, d.Encryption.IV)
	assert.Equal(t, testTag, d.Encryption.AuthTag)
	assert.Contains(t, res.Handle.URL, "/zk-bucket/")
	assert.Empty(t, h.sm.puts)
	assert.NotContains(t, h.zk.puts[d.Key].Metadata, "iv")

	got, err := h.svc.AccessRead(context.Background(), "user-1", d.Key)
	require.NoError(t, err)
	require.NotNil(t, got.Encryption)
	assert.Equal(t, testIV, got.Encryption.IV)
	assert.Equal(t, testTag, got.Encryption.AuthTag)
	assert.Equal(t, privacy.ZeroKnowledge, got.PrivacyLevel)
}

func TestStore_ScenarioC_MalformedIVStoresNothing(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")

	_, err := newGate(t).Validate(privacy.ZeroKnowledge, intake.Payload{
		Data: []byte("ciphertext"), MimeType: "image/jpeg", IV: "not-hex",
	})
	require.ErrorIs(t, err, intake.ErrMalformedIV)

	puts, _, _ := h.zk.calls()
	assert.Zero(t, puts)
	assert.Zero(t, h.objects.count())
}

func TestStore_ZeroKnowledgeWithoutIVNeverReachesStorage(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")

	up := &intake.ValidatedUpload{
		Level: privacy.ZeroKnowledge, Data: []byte("x"), Size: 1,
		MimeType: "image/png", Kind: "image", Extension: "png",
	}
	_, err := h.svc.Store(context.Background(), "user-1", "image", up)
	require.ErrorIs(t, err, common.ErrInvariantViolation)

	for _, b := range []*fakeBackend{h.zk, h.sm} {
		puts, deletes, presigns := b.calls()
		assert.Zero(t, puts+deletes+presigns)
	}
	assert.Empty(t, h.ev.all())
	assert.Len(t, h.logLines(t, "ERROR"), 1)
}

func TestStore_KeysAreUniqueForIdenticalUploads(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	up := validated(t, privacy.ServerManaged, intake.Payload{Data: []byte("same"), MimeType: "text/plain"})

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		res, err := h.svc.Store(context.Background(), "user-1", "text", up)
		require.NoError(t, err)
		key := res.Descriptor.Meta().Key
		assert.Regexp(t, keyPattern, key)
		assert.False(t, seen[key], "key reused: %s", key)
		seen[key] = true
	}
}

func TestStore_KindMustMatchMime(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	up := validated(t, privacy.ServerManaged, intake.Payload{Data: []byte("x"), MimeType: "text/plain"})

	_, err := h.svc.Store(context.Background(), "user-1", "video", up)
	var ie *intake.Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "kind", ie.Field)
	assert.Empty(t, h.ev.all())
}

func TestStore_WithoutVault(t *testing.T) {
	h := newHarness(t)
	up := validated(t, privacy.ServerManaged, intake.Payload{Data: []byte("x"), MimeType: "text/plain"})

	_, err := h.svc.Store(context.Background(), "user-1", "text", up)
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, h.ev.all())
}

func TestStore_WriteFailureCreatesNoRow(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	h.zk.putErr = context.DeadlineExceeded

	up := validated(t, privacy.ZeroKnowledge, intake.Payload{Data: []byte("c"), MimeType: "image/png", IV: testIV})
	_, err := h.svc.Store(context.Background(), "user-1", "image", up)

	require.ErrorIs(t, err, common.ErrorStoreFailed)
	var se *storage.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, storage.OpPut, se.Op)
	assert.Zero(t, h.objects.count())
	assert.Zero(t, h.metrics.uploaded[privacy.ZeroKnowledge])
	_, _, presigns := h.zk.calls()
	assert.Zero(t, presigns)
}

func TestStore_RowFailureRemovesObject(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	h.objects.createErr = errors.New("db down")

	up := validated(t, privacy.ServerManaged, intake.Payload{Data: []byte("x"), MimeType: "text/plain"})
	_, err := h.svc.Store(context.Background(), "user-1", "text", up)
	require.ErrorIs(t, err, common.ErrorStoreFailed)

	ev := h.ev.all()
	require.Len(t, ev, 3)
	assert.Regexp(t, `^sm-bucket\.put `, ev[0])
	assert.Regexp(t, `^row\.create `, ev[1])
	assert.Regexp(t, `^sm-bucket\.delete `, ev[2])
	assert.Empty(t, h.sm.puts)
	assert.Empty(t, h.metrics.orphans)
}

func TestStore_FailedCompensationIsCounted(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	h.objects.createErr = errors.New("db down")
	h.zk.deleteErr = errors.New("access denied")

	up := validated(t, privacy.ZeroKnowledge, intake.Payload{Data: []byte("c"), MimeType: "image/png", IV: testIV})
	_, err := h.svc.Store(context.Background(), "user-1", "image", up)
	require.ErrorIs(t, err, common.ErrorStoreFailed)

	assert.Equal(t, []string{"zero_knowledge:" + metrics.OrphanCompensationFailed}, h.metrics.orphans)
	warns := h.logLines(t, "WARN")
	require.Len(t, warns, 1)
	assert.Equal(t, "zero_knowledge", warns[0]["privacy_level"])
}

func TestStore_DescriptorInvariantOverRandomUploads(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	gate := newGate(t)
	rnd := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		level := privacy.Levels()[rnd.Intn(2)]
		p := intake.Payload{Data: []byte{byte(i)}, MimeType: "image/png"}
		if rnd.Intn(2) == 0 || level == privacy.ZeroKnowledge {
			p.IV = testIV
		}
		if rnd.Intn(2) == 0 {
			p.AuthTag = testTag
		}
		up, err := gate.Validate(level, p)
		require.NoError(t, err)
		_, err = h.svc.Store(context.Background(), "user-1", "image", up)
		require.NoError(t, err)
	}

	for _, row := range h.objects.rows {
		switch row.PrivacyLevel {
		case "zero_knowledge":
			assert.True(t, row.EncryptionIV.Valid && row.EncryptionIV.String != "", row.Key)
		case "server_managed":
			assert.False(t, row.EncryptionIV.Valid, row.Key)
			assert.False(t, row.EncryptionAuthTag.Valid, row.Key)
		default:
			t.Fatalf("unexpected level %q", row.PrivacyLevel)
		}
	}
}

func TestStore_PresignFailureKeepsObjectAndRow(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	h.sm.presignErr = errors.New("clock skew")

	up := validated(t, privacy.ServerManaged, intake.Payload{Data: []byte("x"), MimeType: "text/plain"})
	_, err := h.svc.Store(context.Background(), "user-1", "text", up)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorStoreFailed)
	assert.Equal(t, 1, h.objects.count())
	assert.Len(t, h.sm.puts, 1)
}

// storeOne stores a server-managed text object for owner and returns its key.
func storeOne(t *testing.T, h *harness, owner string, level privacy.Level) string {
	t.Helper()
	p := intake.Payload{Data: []byte("x"), MimeType: "text/plain"}
	if level == privacy.ZeroKnowledge {
		p.IV = testIV
	}
	res, err := h.svc.Store(context.Background(), owner, "text", validated(t, level, p))
	require.NoError(t, err)
	return res.Descriptor.Meta().Key
}

func TestOwnership_WrongOwnerLooksLikeMissingKey(t *testing.T) {
	h := newHarness(t)
	h.addVault("alice")
	h.addVault("bob")
	key := storeOne(t, h, "alice", privacy.ZeroKnowledge)
	_, deletesBefore, presignsBefore := h.zk.calls()

	ops := map[string]func(owner, key string) error{
		"access": func(owner, key string) error {
			_, err := h.svc.AccessRead(context.Background(), owner, key)
			return err
		},
		"delete": func(owner, key string) error {
			_, err := h.svc.Delete(context.Background(), owner, key)
			return err
		},
		"read": func(owner, key string) error {
			_, err := h.svc.ReadContent(context.Background(), owner, key)
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			wrongOwner := op("bob", key)
			missingKey := op("bob", "owner/bob/text/1_0000000000000000.txt")
			noVault := op("mallory", key)

			for _, err := range []error{wrongOwner, missingKey, noVault} {
				require.ErrorIs(t, err, common.ErrorNotFound)
				assert.Equal(t, missingKey.Error(), err.Error())
			}
		})
	}

	_, deletes, presigns := h.zk.calls()
	assert.Equal(t, deletesBefore, deletes)
	assert.Equal(t, presignsBefore, presigns)
	assert.Equal(t, 1, h.objects.count())
}

func TestDelete_ObjectThenRow(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	key := storeOne(t, h, "user-1", privacy.ServerManaged)

	res, err := h.svc.Delete(context.Background(), "user-1", key)
	require.NoError(t, err)
	assert.NoError(t, res.StorageErr)

	ev := h.ev.all()
	assert.Equal(t, []string{"sm-bucket.delete " + key, "row.delete " + key}, ev[len(ev)-2:])
	assert.Zero(t, h.objects.count())
	assert.Empty(t, h.zk.deletes, "routed by the recorded level only")
}

func TestDelete_StorageFailureStillRemovesRow(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	key := storeOne(t, h, "user-1", privacy.ZeroKnowledge)
	h.zk.deleteErr = errors.New("503 slow down")

	res, err := h.svc.Delete(context.Background(), "user-1", key)
	require.NoError(t, err)
	require.Error(t, res.StorageErr)
	var se *storage.Error
	assert.ErrorAs(t, res.StorageErr, &se)

	assert.Zero(t, h.objects.count())
	assert.Equal(t, []string{"zero_knowledge:" + metrics.OrphanDeleteFailed}, h.metrics.orphans)

	warns := h.logLines(t, "WARN")
	require.Len(t, warns, 1)
	assert.Equal(t, key, warns[0]["key"])
	assert.Equal(t, "zk-bucket", warns[0]["bucket"])
	assert.Equal(t, "zero_knowledge", warns[0]["privacy_level"])
}

func TestDelete_CancelAfterStorageDeleteStillRemovesRow(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	key := storeOne(t, h, "user-1", privacy.ServerManaged)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h.sm.deleteHook = cancel

	res, err := h.svc.Delete(ctx, "user-1", key)
	require.NoError(t, err)
	assert.NoError(t, res.StorageErr)
	require.Error(t, ctx.Err())

	ev := h.ev.all()
	assert.Equal(t, []string{"sm-bucket.delete " + key, "row.delete " + key}, ev[len(ev)-2:])
	assert.Zero(t, h.objects.count())
	assert.Empty(t, h.metrics.orphans)
}

func TestDelete_RowFailureIsReturned(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	key := storeOne(t, h, "user-1", privacy.ServerManaged)
	h.objects.deleteErr = errors.New("db down")

	_, err := h.svc.Delete(context.Background(), "user-1", key)
	require.Error(t, err)
}

func TestAccessRead_InvariantViolationIsLoud(t *testing.T) {
	h := newHarness(t)
	v := h.addVault("user-1")
	bad := &models.ObjectRow{
		ObjectMeta:   models.ObjectMeta{Key: "k-bad", VaultID: v.ID, Kind: "text", MimeType: "text/plain", Size: 1},
		PrivacyLevel: "server_managed",
	}
	bad.EncryptionIV.String, bad.EncryptionIV.Valid = testIV, true
	h.objects.rows[bad.Key] = bad

	_, err := h.svc.AccessRead(context.Background(), "user-1", "k-bad")
	require.ErrorIs(t, err, common.ErrInvariantViolation)

	errs := h.logLines(t, "ERROR")
	require.Len(t, errs, 1)
	assert.Equal(t, "k-bad", errs[0]["key"])
	_, _, presigns := h.sm.calls()
	assert.Zero(t, presigns)
	assert.Equal(t, bad, h.objects.rows["k-bad"], "row is not repaired")
}

func TestAccessRead_UsesConfiguredExpiry(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	key := storeOne(t, h, "user-1", privacy.ServerManaged)
	h.svc.expiry = 5 * time.Minute

	got, err := h.svc.AccessRead(context.Background(), "user-1", key)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(5*time.Minute), got.Handle.ExpiresAt)
}

func TestList_SignsConcurrently(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	const n = 6
	var keys []string
	for i := 0; i < n; i++ {
		level := privacy.Levels()[i%2]
		keys = append(keys, storeOne(t, h, "user-1", level))
	}

	started := make(chan struct{}, n)
	release := make(chan struct{})
	hook := func() {
		started <- struct{}{}
		<-release
	}
	h.zk.presignHook, h.sm.presignHook = hook, hook

	type result struct {
		res []*AccessResult
		err error
	}
	done := make(chan result, 1)
	go func() {
		res, err := h.svc.List(context.Background(), "user-1")
		done <- result{res, err}
	}()

	timeout := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-started:
		case <-timeout:
			close(release)
			t.Fatalf("only %d of %d signing calls in flight", i, n)
		}
	}
	close(release)

	r := <-done
	require.NoError(t, r.err)
	require.Len(t, r.res, n)
	for i, res := range r.res {
		assert.Equal(t, keys[i], res.Key)
		if res.PrivacyLevel == privacy.ZeroKnowledge {
			require.NotNil(t, res.Encryption)
			assert.Contains(t, res.Handle.URL, "/zk-bucket/")
		} else {
			assert.Nil(t, res.Encryption)
			assert.Contains(t, res.Handle.URL, "/sm-bucket/")
		}
	}
}

func TestList_NoVaultIsEmpty(t *testing.T) {
	h := newHarness(t)
	res, err := h.svc.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestList_SigningFailureFailsList(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	storeOne(t, h, "user-1", privacy.ServerManaged)
	storeOne(t, h, "user-1", privacy.ZeroKnowledge)
	h.zk.presignErr = errors.New("bad credentials")

	_, err := h.svc.List(context.Background(), "user-1")
	require.Error(t, err)
}

func TestReadContent(t *testing.T) {
	h := newHarness(t)
	h.addVault("user-1")
	smKey := storeOne(t, h, "user-1", privacy.ServerManaged)
	zkKey := storeOne(t, h, "user-1", privacy.ZeroKnowledge)

	rc, err := h.svc.ReadContent(context.Background(), "user-1", smKey)
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "hello", string(b))

	_, err = h.svc.ReadContent(context.Background(), "user-1", zkKey)
	require.ErrorIs(t, err, common.ErrCapabilityDenied)
	assert.Equal(t, []string{smKey}, h.reader.opens)
}

func TestOpenVault(t *testing.T) {
	h := newHarness(t)

	h.mock.ExpectBegin()
	h.mock.ExpectCommit()
	v, err := h.svc.OpenVault(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "vault-user-1", v.ID)
	assert.Equal(t, []string{"user-1"}, h.vaults.created)

	h.mock.ExpectBegin()
	h.mock.ExpectCommit()
	again, err := h.svc.OpenVault(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, v.ID, again.ID)
	assert.Len(t, h.vaults.created, 1)
	require.NoError(t, h.mock.ExpectationsWereMet())
}

func TestOpenVault_RollsBackOnError(t *testing.T) {
	h := newHarness(t)
	h.vaults.getErr = errors.New("db down")

	h.mock.ExpectBegin()
	h.mock.ExpectRollback()
	_, err := h.svc.OpenVault(context.Background(), "user-1")
	require.Error(t, err)
	require.NoError(t, h.mock.ExpectationsWereMet())
}
