// Package intake validates uploads before anything is stored or persisted.
package intake

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/server/models"
	"github.com/dmitrijs2005/memoryvault/internal/server/privacy"
	"github.com/gabriel-vasile/mimetype"
)

// ivHexLen is the length of a hex encoded 16-byte IV. Auth tags use the same length.
const ivHexLen = 32

const maxNameLen = 255

// Payload is an upload as received from the transport.
type Payload struct {
	Data         []byte
	MimeType     string
	OriginalName string
	// IV and AuthTag are hex strings declared by the client. They only
	// matter for zero-knowledge uploads.
	IV      string
	AuthTag string
}

// ValidatedUpload is a payload that passed every intake rule.
type ValidatedUpload struct {
	Level        privacy.Level
	Data         []byte
	Size         int64
	MimeType     string
	Kind         string
	Extension    string
	OriginalName string
	// Encryption is set for zero-knowledge uploads and nil otherwise.
	Encryption *models.Encryption
}

type encryptionRule func(p Payload) (*models.Encryption, error)

// Gate applies the intake rules. It is immutable and safe for concurrent use.
type Gate struct {
	maxSize    int64
	kindOf     map[string]string
	encryption privacy.Table[encryptionRule]
}

// NewGate builds a Gate from the maximum payload size and an allow-list of
// MIME types keyed by media category.
func NewGate(maxSize int64, allowed map[string][]string) (*Gate, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("max size must be positive, got %d", maxSize)
	}
	kindOf := make(map[string]string)
	for kind, types := range allowed {
		for _, t := range types {
			mt, err := normalizeMime(t)
			if err != nil {
				return nil, fmt.Errorf("allow-list %s: %w", kind, err)
			}
			if prev, ok := kindOf[mt]; ok && prev != kind {
				return nil, fmt.Errorf("mime type %s listed under %s and %s", mt, prev, kind)
			}
			kindOf[mt] = kind
		}
	}
	if len(kindOf) == 0 {
		return nil, fmt.Errorf("mime allow-list is empty")
	}
	return &Gate{
		maxSize: maxSize,
		kindOf:  kindOf,
		encryption: privacy.Table[encryptionRule]{
			ZeroKnowledge: requireEncryption,
			ServerManaged: dropEncryption,
		},
	}, nil
}

// MaxSize returns the configured maximum payload size in bytes.
func (g *Gate) MaxSize() int64 {
	return g.maxSize
}

// Validate checks p against the rules in order and stops at the first
// failure: size, MIME allow-list, non-empty, then encryption metadata.
func (g *Gate) Validate(level privacy.Level, p Payload) (*ValidatedUpload, error) {
	rule, err := g.encryption.Resolve(level)
	if err != nil {
		return nil, reject("privacy_level", err, fmt.Sprintf("unknown privacy level %q", string(level)))
	}

	size := int64(len(p.Data))
	if size > g.maxSize {
		return nil, reject("file", ErrPayloadTooLarge,
			fmt.Sprintf("file is %d bytes, maximum is %d bytes", size, g.maxSize))
	}

	mt, err := normalizeMime(p.MimeType)
	if err != nil {
		return nil, reject("mime_type", ErrUnsupportedMediaType, fmt.Sprintf("invalid mime type %q", p.MimeType))
	}
	kind, ok := g.kindOf[mt]
	if !ok {
		return nil, reject("mime_type", ErrUnsupportedMediaType, fmt.Sprintf("mime type %q is not allowed", mt))
	}

	if size == 0 {
		return nil, reject("file", ErrEmptyPayload, "file is empty")
	}

	enc, err := rule(p)
	if err != nil {
		return nil, err
	}

	name := sanitizeName(p.OriginalName)

	return &ValidatedUpload{
		Level:        level,
		Data:         p.Data,
		Size:         size,
		MimeType:     mt,
		Kind:         kind,
		Extension:    extensionFor(mt, name),
		OriginalName: name,
		Encryption:   enc,
	}, nil
}

func requireEncryption(p Payload) (*models.Encryption, error) {
	iv := p.IV
	if iv == "" {
		return nil, reject("iv", ErrMissingIV, "zero_knowledge uploads require an encryption iv")
	}
	if !isHexOfLen(iv, ivHexLen) {
		return nil, reject("iv", ErrMalformedIV, fmt.Sprintf("encryption iv must be %d hex characters", ivHexLen))
	}

	tag := p.AuthTag
	if tag != "" && !isHexOfLen(tag, ivHexLen) {
		return nil, reject("auth_tag", ErrMalformedAuthTag, fmt.Sprintf("encryption auth tag must be %d hex characters", ivHexLen))
	}

	return &models.Encryption{IV: iv, AuthTag: tag}, nil
}

// dropEncryption discards any IV or tag sent with a server-managed upload so
// it can never be persisted.
func dropEncryption(Payload) (*models.Encryption, error) {
	return nil, nil
}

func isHexOfLen(s string, n int) bool {
	return len(s) == n && common.IsHex(s)
}

func normalizeMime(s string) (string, error) {
	mt, _, err := mime.ParseMediaType(s)
	if err != nil {
		return "", err
	}
	return strings.ToLower(mt), nil
}

func sanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" || name == "." || name == "/" {
		return "upload"
	}
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	return name
}

// extensionFor picks the key extension from the MIME type, falling back to
// the original file name and finally to "bin".
func extensionFor(mt, name string) string {
	if m := mimetype.Lookup(mt); m != nil && m.Extension() != "" {
		return strings.TrimPrefix(m.Extension(), ".")
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext != "" && len(ext) <= 8 && isAlnum(ext) {
		return ext
	}
	return "bin"
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
