package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/billwatch/reconciler/internal/domain"
	"github.com/billwatch/reconciler/internal/store"
)

// Result summarises one accepted upload batch. The accepted records and
// per-row outcomes ride along for the caller (archival, diagnostics) but
// do not cross the wire.
type Result struct {
	BatchID  string `json:"batch_id"`
	Kind     Kind   `json:"kind"`
	Accepted int    `json:"records_accepted"`
	Rejected int    `json:"records_rejected"`

	Transactions []domain.Transaction `json:"-"`
	Charges      []domain.Charge      `json:"-"`
	Rows         []RowResult          `json:"-"`
}

// Service normalizes uploaded row batches and commits the accepted records
// to the record store.
type Service struct {
	records *store.RecordStore
}

// NewService creates a new ingestion service.
func NewService(records *store.RecordStore) *Service {
	return &Service{records: records}
}

// Ingest normalizes a batch of raw rows and appends the accepted records
// to the store. The batch is all-or-nothing: an unsupported kind or a
// cancelled context leaves the store untouched. Individual malformed rows
// are not errors; they lower the accepted count.
func (s *Service) Ingest(ctx context.Context, rows []Row, kind Kind) (*Result, error) {
	if kind == KindAuto {
		kind = DetectKind(rows)
	}

	result := &Result{BatchID: uuid.NewString(), Kind: kind}

	switch kind {
	case KindTransactions:
		result.Transactions, result.Rows = normalizeTransactions(rows, result.BatchID)
		result.Accepted = len(result.Transactions)
	case KindCharges:
		result.Charges, result.Rows = normalizeCharges(rows, result.BatchID)
		result.Accepted = len(result.Charges)
	default:
		return nil, fmt.Errorf("unsupported kind: %q", kind)
	}
	result.Rejected = len(rows) - result.Accepted

	// Nothing has been committed yet; honouring cancellation here keeps
	// the batch atomic.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch %s aborted: %w", result.BatchID, err)
	}

	s.records.AppendTransactions(result.Transactions)
	s.records.AppendCharges(result.Charges)

	log.Printf("[ingestion] Batch %s: accepted %d of %d %s rows",
		result.BatchID, result.Accepted, len(rows), kind)

	return result, nil
}
