package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Record metrics
	RecordsCreated        prometheus.Counter
	RecordsDeleted        prometheus.Counter
	RecordDuration        prometheus.Histogram
	RecordAmount          prometheus.Histogram
	ReimbursementsCreated prometheus.Counter
	RecordErrors          *prometheus.CounterVec

	// Debt metrics
	DebtsOpened        prometheus.Counter
	DebtsCleared       prometheus.Counter
	RepaymentsRecorded prometheus.Counter

	// Goal metrics
	GoalsCreated        prometheus.Counter
	GoalProgressUpdates prometheus.Counter

	// Recurring rule metrics
	RulesTriggered prometheus.Counter

	// Archive metrics
	ArchiveRuns     prometheus.Counter
	RecordsArchived prometheus.Counter
	ArchiveDuration prometheus.Histogram

	// Snapshot and backup metrics
	SnapshotsExported prometheus.Counter
	SnapshotsImported prometheus.Counter
	BackupsUploaded   prometheus.Counter
	BackupsRestored   prometheus.Counter

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec

	// Outbox metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Record metrics
		RecordsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_records_created_total",
			Help: "Total number of records created",
		}),
		RecordsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_records_deleted_total",
			Help: "Total number of records deleted",
		}),
		RecordDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerkeep_record_duration_seconds",
			Help:    "Duration of record create and delete operations",
			Buckets: prometheus.DefBuckets,
		}),
		RecordAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerkeep_record_amount",
			Help:    "Record amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		ReimbursementsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_reimbursements_created_total",
			Help: "Total number of reimbursement records created",
		}),
		RecordErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerkeep_record_errors_total",
				Help: "Total number of record errors by type",
			},
			[]string{"error_type"},
		),

		// Debt metrics
		DebtsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_debts_opened_total",
			Help: "Total number of debts opened",
		}),
		DebtsCleared: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_debts_cleared_total",
			Help: "Total number of debts cleared",
		}),
		RepaymentsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_repayments_recorded_total",
			Help: "Total number of repayments recorded",
		}),

		// Goal metrics
		GoalsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_goals_created_total",
			Help: "Total number of goals created",
		}),
		GoalProgressUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_goal_progress_updates_total",
			Help: "Total number of goal progress updates",
		}),

		// Recurring rule metrics
		RulesTriggered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_rules_triggered_total",
			Help: "Total number of recurring rule firings",
		}),

		// Archive metrics
		ArchiveRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_archive_runs_total",
			Help: "Total number of year-end archive runs",
		}),
		RecordsArchived: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_records_archived_total",
			Help: "Total number of records archived",
		}),
		ArchiveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerkeep_archive_duration_seconds",
			Help:    "Duration of archive runs",
			Buckets: prometheus.DefBuckets,
		}),

		// Snapshot and backup metrics
		SnapshotsExported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_snapshots_exported_total",
			Help: "Total number of snapshot exports",
		}),
		SnapshotsImported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_snapshots_imported_total",
			Help: "Total number of snapshot imports",
		}),
		BackupsUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_backups_uploaded_total",
			Help: "Total number of backups uploaded",
		}),
		BackupsRestored: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_backups_restored_total",
			Help: "Total number of backups restored",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerkeep_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerkeep_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerkeep_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerkeep_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerkeep_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerkeep_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),

		// Outbox metrics
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_events_published_total",
			Help: "Total outbox events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledgerkeep_publish_errors_total",
			Help: "Total outbox publish failures",
		}),
	}
}
