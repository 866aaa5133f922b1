package usecase

import (
	"context"
	"time"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// SnapshotUseCase moves the whole application state in and out as one
// bundle. Import is all-or-nothing: either every collection is replaced or
// the previous state survives untouched.
type SnapshotUseCase struct {
	txManager    TransactionManager
	snapshotRepo SnapshotRepository
	outboxRepo   OutboxRepository
	idGen        IDGenerator
}

// NewSnapshotUseCase creates a new SnapshotUseCase.
func NewSnapshotUseCase(txManager TransactionManager, snapshotRepo SnapshotRepository, outboxRepo OutboxRepository, idGen IDGenerator) *SnapshotUseCase {
	return &SnapshotUseCase{txManager: txManager, snapshotRepo: snapshotRepo, outboxRepo: outboxRepo, idGen: idGen}
}

// Export captures the full current state.
func (uc *SnapshotUseCase) Export(ctx context.Context) (*domain.Snapshot, error) {
	snapshot, err := uc.snapshotRepo.Export(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.ExportedAt = time.Now().UTC()
	return snapshot, nil
}

// Import overwrites all state with the snapshot in a single transaction.
func (uc *SnapshotUseCase) Import(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return domain.ErrInvalidDraft
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.snapshotRepo.Import(ctx, tx, snapshot); err != nil {
		return err
	}

	eventID := uc.idGen.Generate()
	event := &domain.OutboxEvent{
		ID:            eventID,
		AggregateID:   eventID,
		AggregateType: domain.AggregateTypeSnapshot,
		EventType:     domain.EventTypeSnapshotImported,
		Payload: map[string]any{
			"exported_at": snapshot.ExportedAt,
			"records":     len(snapshot.Records),
			"accounts":    len(snapshot.Accounts),
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
