package service

import (
	"context"
	"time"

	"matchtrack/internal/model"
	"matchtrack/internal/repository"
)

// Auditor records admin mutations. Recording is best-effort and must never
// fail the request that triggered it.
type Auditor interface {
	Record(ctx context.Context, actor, action, entity string, entityID uint, detail string)
}

// AuditRecorder buffers audit entries on a channel and flushes them to the
// store in batches.
type AuditRecorder struct {
	repo repository.AuditRepository
	ch   chan model.AuditEntry
}

// NewAuditRecorder creates a recorder and starts its background worker.
func NewAuditRecorder(repo repository.AuditRepository) *AuditRecorder {
	r := &AuditRecorder{
		repo: repo,
		ch:   make(chan model.AuditEntry, 100),
	}
	go r.worker(context.Background())
	return r
}

// Record enqueues an audit entry without blocking; when the buffer is full
// it falls back to a synchronous insert.
func (r *AuditRecorder) Record(ctx context.Context, actor, action, entity string, entityID uint, detail string) {
	entry := model.AuditEntry{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	}
	select {
	case r.ch <- entry:
	default:
		_ = r.repo.Create(ctx, &entry)
	}
}

// worker flushes batches of entries, either when ten have accumulated or
// once a second.
func (r *AuditRecorder) worker(ctx context.Context) {
	batch := make([]model.AuditEntry, 0, 10)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case entry, ok := <-r.ch:
			if !ok {
				if len(batch) > 0 {
					_ = r.repo.CreateBatch(ctx, batch)
				}
				return
			}
			batch = append(batch, entry)
			if len(batch) >= 10 {
				_ = r.repo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				_ = r.repo.CreateBatch(ctx, batch)
				batch = batch[:0]
			}
		case <-ctx.Done():
			return
		}
	}
}
