package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// BackupTransport moves snapshot payloads to and from remote storage.
type BackupTransport interface {
	Check(ctx context.Context) error
	Put(ctx context.Context, filename string, data []byte) error
	Get(ctx context.Context, filename string) ([]byte, error)
	Exists(ctx context.Context, filename string) (bool, error)
}

// BackupUseCase ships snapshots to remote storage and restores from it.
// Remote failures surface to the caller; local state is never touched by a
// failed transfer.
type BackupUseCase struct {
	snapshots *SnapshotUseCase
	transport BackupTransport
}

// NewBackupUseCase creates a new BackupUseCase.
func NewBackupUseCase(snapshots *SnapshotUseCase, transport BackupTransport) *BackupUseCase {
	return &BackupUseCase{snapshots: snapshots, transport: transport}
}

// Check verifies the remote is reachable with the configured credentials.
func (uc *BackupUseCase) Check(ctx context.Context) error {
	return uc.transport.Check(ctx)
}

// Backup exports the current state and uploads it under the given filename.
func (uc *BackupUseCase) Backup(ctx context.Context, filename string) error {
	snapshot, err := uc.snapshots.Export(ctx)
	if err != nil {
		return err
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return uc.transport.Put(ctx, filename, data)
}

// Restore downloads the named backup and imports it, overwriting all state.
func (uc *BackupUseCase) Restore(ctx context.Context, filename string) error {
	data, err := uc.transport.Get(ctx, filename)
	if err != nil {
		return err
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	return uc.snapshots.Import(ctx, &snapshot)
}
