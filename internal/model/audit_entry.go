package model

import "time"

// AuditEntry is an append-only record of an admin mutation. Entries are
// written asynchronously and best-effort.
type AuditEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Actor     string    `json:"actor" gorm:"size:255;not null;index"`
	Action    string    `json:"action" gorm:"size:100;not null"`
	Entity    string    `json:"entity" gorm:"size:100;not null"`
	EntityID  uint      `json:"entity_id" gorm:"index"`
	Detail    string    `json:"detail" gorm:"size:1024"`
	CreatedAt time.Time `json:"created_at"`
}
