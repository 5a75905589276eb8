package storage

import (
	"fmt"
	"time"
)

// BaseEntity provides common fields for all storage entities.
type BaseEntity struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBaseEntity(id int64, now time.Time) BaseEntity {
	return BaseEntity{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserRef is the owner of a record. Accounts are managed elsewhere, so only
// the reference is stored.
type UserRef struct {
	ID    int64  `json:"id"`
	Login string `json:"login,omitempty"`
}

// Key builds the primary key of a record. Ids are zero padded so that
// keys sort in id order.
func Key(prefix string, id int64) string {
	return fmt.Sprintf("%sid:%020d", prefix, id)
}
