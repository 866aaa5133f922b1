package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/metrics"
)

// ArchiveUseCase moves old records to cold storage. Archived records stop
// showing up in listings and insight math but their balance effects stand,
// summarized by a single rollover record.
type ArchiveUseCase struct {
	txManager  TransactionManager
	recordRepo RecordRepository
	bookRepo   BookRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewArchiveUseCase creates a new ArchiveUseCase.
func NewArchiveUseCase(
	txManager TransactionManager,
	recordRepo RecordRepository,
	bookRepo BookRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *ArchiveUseCase {
	return &ArchiveUseCase{
		txManager:  txManager,
		recordRepo: recordRepo,
		bookRepo:   bookRepo,
		outboxRepo: outboxRepo,
		idGen:      idGen,
		metrics:    metrics,
	}
}

// ArchiveResult reports what a run archived.
type ArchiveResult struct {
	ArchivedCount int
	NetSum        decimal.Decimal
	RolloverID    string
}

// ArchiveThroughYear archives every record that occurred in or before the
// given year and inserts one rollover record dated the first instant of the
// following year. The rollover summarizes the archived net flow and is
// written directly to the record set, skipping the balance side-effect path,
// since the archived records already moved the money. When nothing matches
// the run is a no-op and no rollover is written.
func (uc *ArchiveUseCase) ArchiveThroughYear(ctx context.Context, year int) (*ArchiveResult, error) {
	start := time.Now()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	matched, err := uc.recordRepo.ListUnarchivedThroughYear(ctx, tx, year)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return &ArchiveResult{NetSum: decimal.Zero}, nil
	}

	netSum := decimal.Zero
	for _, record := range matched {
		switch record.Kind {
		case domain.RecordIncome:
			netSum = netSum.Add(record.EffectiveAmount())
		case domain.RecordExpense:
			netSum = netSum.Sub(record.EffectiveAmount())
		}
	}

	count, err := uc.recordRepo.MarkArchivedThroughYear(ctx, tx, year)
	if err != nil {
		return nil, err
	}

	result := &ArchiveResult{ArchivedCount: count, NetSum: netSum}

	// Zero net flow writes no rollover.
	if !netSum.IsZero() {
		book, err := uc.bookRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}

		kind := domain.RecordIncome
		if netSum.IsNegative() {
			kind = domain.RecordExpense
		}

		now := time.Now().UTC()
		rollover := &domain.Record{
			ID:         uc.idGen.Generate(),
			Kind:       kind,
			Amount:     netSum.Abs(),
			OccurredAt: time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
			RecordedAt: now,
			BookID:     book.ID,
			Remark:     fmt.Sprintf("rollover through %d", year),
		}
		if err := uc.recordRepo.Create(ctx, tx, rollover); err != nil {
			return nil, err
		}
		result.RolloverID = rollover.ID
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   result.RolloverID,
		AggregateType: domain.AggregateTypeArchive,
		EventType:     domain.EventTypeYearArchived,
		Payload: map[string]any{
			"year":           year,
			"archived_count": count,
			"net_sum":        netSum.String(),
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ArchiveRuns.Inc()
		uc.metrics.RecordsArchived.Add(float64(count))
		uc.metrics.ArchiveDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}
