package models

import "time"

// Vault groups the objects of exactly one owner.
type Vault struct {
	ID        string
	OwnerID   string
	CreatedAt time.Time
}
