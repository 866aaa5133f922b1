package domain

import "time"

// Event types
const (
	EventTypeRecordCreated    = "record.created"
	EventTypeRecordDeleted    = "record.deleted"
	EventTypeRecordReimbursed = "record.reimbursed"
	EventTypeRepaymentAdded   = "debt.repayment_added"
	EventTypeGoalProgressed   = "goal.progressed"
	EventTypeYearArchived     = "archive.year_completed"
	EventTypeSnapshotImported = "snapshot.imported"
)

// Aggregate types
const (
	AggregateTypeRecord   = "record"
	AggregateTypeDebt     = "debt"
	AggregateTypeGoal     = "goal"
	AggregateTypeArchive  = "archive"
	AggregateTypeSnapshot = "snapshot"
)

// OutboxEvent is a mutation notice written in the same transaction as the
// mutation itself and published to the broker best-effort afterwards.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// RecordCreatedEvent payload
type RecordCreatedEvent struct {
	RecordID  string `json:"record_id"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	BookID    string `json:"book_id"`
	AccountID string `json:"account_id,omitempty"`
}

// RecordDeletedEvent payload
type RecordDeletedEvent struct {
	RecordID string `json:"record_id"`
	Kind     string `json:"kind"`
	Amount   string `json:"amount"`
	BookID   string `json:"book_id"`
}

// RepaymentAddedEvent payload
type RepaymentAddedEvent struct {
	DebtID      string `json:"debt_id"`
	RepaymentID string `json:"repayment_id"`
	Amount      string `json:"amount"`
	Cleared     bool   `json:"cleared"`
}

// YearArchivedEvent payload
type YearArchivedEvent struct {
	Year          int    `json:"year"`
	ArchivedCount int    `json:"archived_count"`
	NetSum        string `json:"net_sum"`
}
