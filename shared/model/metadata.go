package model

import "time"

// Metadata holds the store-managed timestamps shared by every persisted entity.
type Metadata struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
