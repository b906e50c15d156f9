package privacy

import (
	"errors"
	"fmt"
	"strings"
)

// Capability is a storage verb a credential set is allowed to use.
type Capability uint8

const (
	CapPut Capability = 1 << iota
	CapDelete
	// CapGet means the service itself may read object bytes.
	CapGet
	// CapSignRead means the service may issue signed read handles that the
	// client redeems. Signing does not read the object.
	CapSignRead
)

// Has reports whether every capability in want is present.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

func (c Capability) String() string {
	var parts []string
	for _, p := range []struct {
		c    Capability
		name string
	}{{CapPut, "PUT"}, {CapDelete, "DELETE"}, {CapGet, "GET"}, {CapSignRead, "SIGN_READ"}} {
		if c.Has(p.c) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}

// Credentials is a static access key pair for one storage principal.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
}

// Target is everything an operation needs to reach the storage backend for
// one privacy level.
type Target struct {
	Level        Level
	Bucket       string
	Credentials  Credentials
	Capabilities Capability
}

// Resolver maps a level to its Target. It is built once at startup and is
// safe for concurrent use.
type Resolver struct {
	targets Table[Target]
}

// NewResolver builds a Resolver. Capabilities are fixed per level and are not
// configurable: zero-knowledge credentials never get CapGet.
func NewResolver(zk, sm Target) (*Resolver, error) {
	zk.Level, sm.Level = ZeroKnowledge, ServerManaged
	zk.Capabilities = CapPut | CapDelete | CapSignRead
	sm.Capabilities = CapPut | CapDelete | CapGet | CapSignRead

	for _, t := range []Target{zk, sm} {
		if t.Bucket == "" {
			return nil, fmt.Errorf("%s: bucket is required", t.Level)
		}
		if t.Credentials.AccessKeyID == "" || t.Credentials.SecretAccessKey == "" {
			return nil, fmt.Errorf("%s: credentials are required", t.Level)
		}
	}
	if zk.Bucket == sm.Bucket {
		return nil, errors.New("zero_knowledge and server_managed must use different buckets")
	}
	if zk.Credentials.AccessKeyID == sm.Credentials.AccessKeyID {
		return nil, errors.New("zero_knowledge and server_managed must use different credentials")
	}

	return &Resolver{targets: Table[Target]{ZeroKnowledge: zk, ServerManaged: sm}}, nil
}

// Resolve returns the Target for level.
func (r *Resolver) Resolve(level Level) (Target, error) {
	return r.targets.Resolve(level)
}

// Targets exposes the full table, e.g. to build one client per level.
func (r *Resolver) Targets() Table[Target] {
	return r.targets
}
