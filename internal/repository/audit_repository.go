package repository

import (
	"context"

	"gorm.io/gorm"

	"matchtrack/internal/model"
)

// AuditRepository defines audit-trail persistence operations.
type AuditRepository interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	CreateBatch(ctx context.Context, entries []model.AuditEntry) error
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *model.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// CreateBatch inserts multiple audit entries in chunks.
func (r *auditRepository) CreateBatch(ctx context.Context, entries []model.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(entries, 100).Error
}
