package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity, timestamp and soft-delete columns shared by
// every persisted entity. Rows are never physically removed: Delete flips
// IsDeleted and every read path filters it out.
type BaseEntity struct {
	ID        uuid.UUID  `json:"id"`
	CreatedAt time.Time  `json:"createdDate"`
	UpdatedAt *time.Time `json:"updatedDate,omitempty"`
	IsDeleted bool       `json:"-"`
}

// Base exposes the embedded BaseEntity, satisfying Entity.
func (b *BaseEntity) Base() *BaseEntity { return b }

// Entity is implemented by every domain model through an embedded BaseEntity.
type Entity interface {
	Base() *BaseEntity
}

// Touch stamps UpdatedAt with the current UTC time.
func (b *BaseEntity) Touch() {
	now := time.Now().UTC()
	b.UpdatedAt = &now
}

// EnsureIdentity assigns an ID and creation timestamp if they are unset.
func (b *BaseEntity) EnsureIdentity() {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
}
