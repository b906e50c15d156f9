// Package privacy maps a privacy level to everything that depends on it:
// credentials, bucket and capabilities. Table.Resolve is the single place
// in the code base that branches on the level.
package privacy

import (
	"errors"
	"fmt"
)

// Level is the trust model an object is stored under. It is fixed at store
// time; moving an object to the other level is a delete followed by a create.
type Level string

const (
	// ZeroKnowledge content is encrypted by the client; the service stores
	// ciphertext it cannot read.
	ZeroKnowledge Level = "zero_knowledge"
	// ServerManaged content is stored as received and readable by the service.
	ServerManaged Level = "server_managed"
)

// ErrUnknownLevel is returned for any value outside the two levels.
var ErrUnknownLevel = errors.New("unknown privacy level")

// Levels lists every level in a stable order.
func Levels() []Level {
	return []Level{ZeroKnowledge, ServerManaged}
}

// ParseLevel converts a wire value to a Level. Values are matched exactly;
// nothing is coerced.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if _, err := (Table[struct{}]{}).Resolve(l); err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return l, nil
}

func (l Level) String() string {
	return string(l)
}
