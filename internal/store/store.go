package store

import (
	"sync"

	"github.com/billwatch/reconciler/internal/domain"
)

// RecordStore holds the ingested canonical records in memory. One instance
// is shared between ingestion (writes) and reconciliation/aggregation
// (reads); ingest and analysis requests may run concurrently, so all
// access goes through the mutex and reads get copies.
type RecordStore struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
	charges      []domain.Charge
}

func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// AppendTransactions commits a normalized batch. The whole slice is
// appended under one lock acquisition so a concurrent reader never sees a
// partially applied upload.
func (s *RecordStore) AppendTransactions(txns []domain.Transaction) {
	if len(txns) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txns...)
}

// AppendCharges commits a normalized charge batch.
func (s *RecordStore) AppendCharges(charges []domain.Charge) {
	if len(charges) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charges = append(s.charges, charges...)
}

// Records returns copies of both record sets. Callers own the returned
// slices and may not observe later ingests through them.
func (s *RecordStore) Records() ([]domain.Transaction, []domain.Charge) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txns := make([]domain.Transaction, len(s.transactions))
	copy(txns, s.transactions)
	charges := make([]domain.Charge, len(s.charges))
	copy(charges, s.charges)
	return txns, charges
}

// Counts returns the current transaction and charge counts.
func (s *RecordStore) Counts() (transactions, charges int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions), len(s.charges)
}

// Clear drops all ingested records.
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = nil
	s.charges = nil
}
