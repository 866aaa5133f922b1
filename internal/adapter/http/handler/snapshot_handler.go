package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ledgerkeep/ledgerkeep/internal/backup"
	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// SnapshotService defines the behavior needed by SnapshotHandler.
type SnapshotService interface {
	Export(ctx context.Context) (*domain.Snapshot, error)
	Import(ctx context.Context, snapshot *domain.Snapshot) error
}

// BackupService defines the behavior needed for remote backups.
type BackupService interface {
	Check(ctx context.Context) error
	Backup(ctx context.Context, filename string) error
	Restore(ctx context.Context, filename string) error
}

// SnapshotHandler handles snapshot export/import and remote backups.
type SnapshotHandler struct {
	snapshotUC SnapshotService
	backupUC   BackupService
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotUC SnapshotService, backupUC BackupService) *SnapshotHandler {
	return &SnapshotHandler{snapshotUC: snapshotUC, backupUC: backupUC}
}

// Export streams the full ledger state as JSON.
func (h *SnapshotHandler) Export(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshotUC.Export(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// Import replaces the full ledger state from an uploaded snapshot.
func (h *SnapshotHandler) Import(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		writeError(w, http.StatusBadRequest, "invalid snapshot body", err.Error())
		return
	}

	if err := h.snapshotUC.Import(r.Context(), &snapshot); err != nil {
		writeError(w, mapDomainError(err), "failed to import snapshot", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BackupCheck probes the remote backup target.
func (h *SnapshotHandler) BackupCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.backupUC.Check(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, "backup target unreachable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Backup uploads the current snapshot to the remote target.
func (h *SnapshotHandler) Backup(w http.ResponseWriter, r *http.Request) {
	filename, ok := decodeBackupFilename(w, r)
	if !ok {
		return
	}

	if err := h.backupUC.Backup(r.Context(), filename); err != nil {
		writeError(w, http.StatusBadGateway, "failed to upload backup", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "uploaded"})
}

// Restore downloads a snapshot from the remote target and imports it.
func (h *SnapshotHandler) Restore(w http.ResponseWriter, r *http.Request) {
	filename, ok := decodeBackupFilename(w, r)
	if !ok {
		return
	}

	if err := h.backupUC.Restore(r.Context(), filename); err != nil {
		if errors.Is(err, backup.ErrBackupNotFound) {
			writeError(w, http.StatusNotFound, "backup not found", err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, "failed to restore backup", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeBackupFilename(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.ContentLength == 0 {
		return "", true
	}

	var req struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return "", false
	}

	return req.Filename, true
}
