// Package models defines server-side data models persisted in the database.
package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
)

// ObjectMeta is the provenance metadata kept for every stored object,
// whatever its privacy level.
type ObjectMeta struct {
	// Key is the object-storage key; unique and never reused.
	Key string
	// VaultID is the vault the object belongs to.
	VaultID string
	// Kind is the media category: text, image, audio or video.
	Kind         string
	MimeType     string
	Size         int64
	OriginalName string
	CreatedAt    time.Time
}

// Encryption is the client-side encryption metadata of a zero-knowledge
// object. It never contains key material.
type Encryption struct {
	// IV is the 16-byte initialization vector, hex encoded.
	IV string
	// AuthTag is the optional 16-byte AEAD tag, hex encoded.
	AuthTag string
}

// Descriptor is the metadata record of a stored object. It is either a
// *ZeroKnowledgeDescriptor or a *ServerManagedDescriptor; no other
// implementations exist.
type Descriptor interface {
	Meta() ObjectMeta
	PrivacyLevel() privacy.Level
	isDescriptor()
}

// ZeroKnowledgeDescriptor describes ciphertext the service cannot read.
type ZeroKnowledgeDescriptor struct {
	ObjectMeta
	Encryption Encryption
}

func (d *ZeroKnowledgeDescriptor) Meta() ObjectMeta            { return d.ObjectMeta }
func (d *ZeroKnowledgeDescriptor) PrivacyLevel() privacy.Level { return privacy.ZeroKnowledge }
func (d *ZeroKnowledgeDescriptor) isDescriptor()               {}

// ServerManagedDescriptor describes content the service can read. It has no
// encryption fields.
type ServerManagedDescriptor struct {
	ObjectMeta
}

func (d *ServerManagedDescriptor) Meta() ObjectMeta            { return d.ObjectMeta }
func (d *ServerManagedDescriptor) PrivacyLevel() privacy.Level { return privacy.ServerManaged }
func (d *ServerManagedDescriptor) isDescriptor()               {}

var builders = privacy.Table[func(ObjectMeta, *Encryption) (Descriptor, error)]{
	ZeroKnowledge: func(meta ObjectMeta, enc *Encryption) (Descriptor, error) {
		if enc == nil || enc.IV == "" {
			return nil, fmt.Errorf("%w: zero_knowledge object %s has no IV", common.ErrInvariantViolation, meta.Key)
		}
		return &ZeroKnowledgeDescriptor{ObjectMeta: meta, Encryption: *enc}, nil
	},
	ServerManaged: func(meta ObjectMeta, enc *Encryption) (Descriptor, error) {
		if enc != nil {
			return nil, fmt.Errorf("%w: server_managed object %s carries encryption metadata", common.ErrInvariantViolation, meta.Key)
		}
		return &ServerManagedDescriptor{ObjectMeta: meta}, nil
	},
}

// NewDescriptor builds the variant for level. enc must be set for
// zero-knowledge and nil for server-managed.
func NewDescriptor(level privacy.Level, meta ObjectMeta, enc *Encryption) (Descriptor, error) {
	build, err := builders.Resolve(level)
	if err != nil {
		return nil, err
	}
	return build(meta, enc)
}

// ObjectRow is the persisted form of a Descriptor. Encryption columns are
// nullable and must be NULL for server-managed rows.
type ObjectRow struct {
	ObjectMeta
	PrivacyLevel      string
	EncryptionIV      sql.NullString
	EncryptionAuthTag sql.NullString
}

// RowFromDescriptor flattens d for persistence.
func RowFromDescriptor(d Descriptor) ObjectRow {
	row := ObjectRow{ObjectMeta: d.Meta(), PrivacyLevel: d.PrivacyLevel().String()}
	if zk, ok := d.(*ZeroKnowledgeDescriptor); ok {
		row.EncryptionIV = sql.NullString{String: zk.Encryption.IV, Valid: true}
		if zk.Encryption.AuthTag != "" {
			row.EncryptionAuthTag = sql.NullString{String: zk.Encryption.AuthTag, Valid: true}
		}
	}
	return row
}

var rowDecoders = privacy.Table[func(ObjectRow) (Descriptor, error)]{
	ZeroKnowledge: func(row ObjectRow) (Descriptor, error) {
		if !row.EncryptionIV.Valid || row.EncryptionIV.String == "" {
			return nil, fmt.Errorf("%w: zero_knowledge object %s has no IV", common.ErrInvariantViolation, row.Key)
		}
		return &ZeroKnowledgeDescriptor{
			ObjectMeta: row.ObjectMeta,
			Encryption: Encryption{IV: row.EncryptionIV.String, AuthTag: row.EncryptionAuthTag.String},
		}, nil
	},
	ServerManaged: func(row ObjectRow) (Descriptor, error) {
		if row.EncryptionIV.Valid || row.EncryptionAuthTag.Valid {
			return nil, fmt.Errorf("%w: server_managed object %s carries encryption metadata", common.ErrInvariantViolation, row.Key)
		}
		return &ServerManagedDescriptor{ObjectMeta: row.ObjectMeta}, nil
	},
}

// DescriptorFromRow rebuilds the typed descriptor from a row. A row whose
// encryption columns disagree with its privacy level yields
// common.ErrInvariantViolation; it is never repaired here.
func DescriptorFromRow(row ObjectRow) (Descriptor, error) {
	decode, err := rowDecoders.Resolve(privacy.Level(row.PrivacyLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: object %s: %v", common.ErrInvariantViolation, row.Key, err)
	}
	return decode(row)
}
