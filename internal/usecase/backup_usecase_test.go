package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase/mocks"
)

type fakeTransport struct {
	files   map[string][]byte
	failing bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{files: make(map[string][]byte)}
}

func (f *fakeTransport) Check(ctx context.Context) error {
	if f.failing {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeTransport) Put(ctx context.Context, filename string, data []byte) error {
	if f.failing {
		return errors.New("remote down")
	}
	f.files[filename] = data
	return nil
}

func (f *fakeTransport) Get(ctx context.Context, filename string) ([]byte, error) {
	if f.failing {
		return nil, errors.New("remote down")
	}
	data, ok := f.files[filename]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeTransport) Exists(ctx context.Context, filename string) (bool, error) {
	_, ok := f.files[filename]
	return ok, nil
}

func newBackupFixture(t *testing.T) (*mocks.MockSnapshotRepository, *fakeTransport, *usecase.BackupUseCase) {
	t.Helper()
	snapRepo := mocks.NewMockSnapshotRepository()
	snapshots := usecase.NewSnapshotUseCase(
		mocks.NewMockTransactionManager(), snapRepo,
		mocks.NewMockOutboxRepository(), mocks.NewMockIDGenerator(),
	)
	transport := newFakeTransport()
	return snapRepo, transport, usecase.NewBackupUseCase(snapshots, transport)
}

func TestBackupUseCase_BackupAndRestore(t *testing.T) {
	snapRepo, transport, uc := newBackupFixture(t)

	snapRepo.ExportFunc = func(ctx context.Context) (*domain.Snapshot, error) {
		return &domain.Snapshot{
			Books: []*domain.Book{{ID: "book-1", Name: "Personal", IsDefault: true}},
			Records: []*domain.Record{{
				ID: "r1", Kind: domain.RecordExpense, Amount: decimal.NewFromInt(30), BookID: "book-1",
			}},
			Settings: domain.DefaultSettings(),
		}, nil
	}

	if err := uc.Backup(context.Background(), "test.json"); err != nil {
		t.Fatalf("backup: %v", err)
	}

	raw, ok := transport.files["test.json"]
	if !ok {
		t.Fatal("backup file not uploaded")
	}
	var uploaded domain.Snapshot
	if err := json.Unmarshal(raw, &uploaded); err != nil {
		t.Fatalf("uploaded payload is not a snapshot: %v", err)
	}
	if len(uploaded.Records) != 1 || uploaded.Records[0].ID != "r1" {
		t.Errorf("uploaded snapshot lost records: %+v", uploaded.Records)
	}
	if uploaded.ExportedAt.IsZero() {
		t.Error("exported snapshot should be timestamped")
	}

	if err := uc.Restore(context.Background(), "test.json"); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if snapRepo.Imported == nil {
		t.Fatal("restore did not import the snapshot")
	}
	if len(snapRepo.Imported.Books) != 1 || snapRepo.Imported.Books[0].ID != "book-1" {
		t.Errorf("imported snapshot lost books: %+v", snapRepo.Imported.Books)
	}
}

func TestBackupUseCase_RemoteFailureLeavesStateAlone(t *testing.T) {
	snapRepo, transport, uc := newBackupFixture(t)
	transport.failing = true

	if err := uc.Backup(context.Background(), "test.json"); err == nil {
		t.Error("expected backup error when remote is down")
	}
	if err := uc.Restore(context.Background(), "test.json"); err == nil {
		t.Error("expected restore error when remote is down")
	}
	if snapRepo.Imported != nil {
		t.Error("failed restore must not import anything")
	}
	if err := uc.Check(context.Background()); err == nil {
		t.Error("expected check error when remote is down")
	}
}

func TestBackupUseCase_RestoreRejectsGarbage(t *testing.T) {
	snapRepo, transport, uc := newBackupFixture(t)
	transport.files["bad.json"] = []byte("{not json")

	if err := uc.Restore(context.Background(), "bad.json"); err == nil {
		t.Error("expected error for malformed payload")
	}
	if snapRepo.Imported != nil {
		t.Error("malformed payload must not be imported")
	}
}
