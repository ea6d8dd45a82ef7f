package reconciliation

import (
	"math"

	"github.com/billwatch/reconciler/internal/domain"
)

// Snapshot rolls transactions and discrepancies into the per-currency
// aggregate view. Each supported currency appears in every map, zeroed,
// whether or not any record references it.
//
// Accuracy is a transaction-count ratio, not amount-weighted. A single
// transaction can produce several discrepancies while counting once in the
// total, so the raw ratio can go negative; the clamp to [0, 100] is part
// of the contract.
func Snapshot(transactions []domain.Transaction, discrepancies []domain.Discrepancy) *domain.AnalysisSnapshot {
	snap := &domain.AnalysisSnapshot{
		TotalTransactions:       len(transactions),
		TotalDiscrepancies:      len(discrepancies),
		RevenueAtRisk:           make(map[domain.Currency]float64),
		TransactionsByCurrency:  make(map[domain.Currency]int),
		DiscrepanciesByCurrency: make(map[domain.Currency]int),
		Discrepancies:           discrepancies,
	}
	if snap.Discrepancies == nil {
		snap.Discrepancies = []domain.Discrepancy{}
	}

	for _, info := range domain.AllCurrencies() {
		snap.RevenueAtRisk[info.Code] = 0
		snap.TransactionsByCurrency[info.Code] = 0
		snap.DiscrepanciesByCurrency[info.Code] = 0
	}

	for _, txn := range transactions {
		snap.TransactionsByCurrency[txn.Currency]++
	}
	for _, d := range discrepancies {
		snap.DiscrepanciesByCurrency[d.Currency]++
		snap.RevenueAtRisk[d.Currency] += d.Amount
	}

	accuracy := 100.0
	if snap.TotalTransactions > 0 {
		accuracy = float64(snap.TotalTransactions-snap.TotalDiscrepancies) /
			float64(snap.TotalTransactions) * 100
	}
	snap.Accuracy = math.Max(0, math.Min(100, accuracy))

	return snap
}
