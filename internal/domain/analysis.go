package domain

// AnalysisSnapshot is the aggregate view consumed by the presentation
// layer. It is computed fresh on every request; amounts are tracked
// per-currency and never summed across currencies.
type AnalysisSnapshot struct {
	TotalTransactions       int                  `json:"total_transactions"`
	TotalDiscrepancies      int                  `json:"total_discrepancies"`
	RevenueAtRisk           map[Currency]float64 `json:"revenue_at_risk"`
	Accuracy                float64              `json:"accuracy"`
	TransactionsByCurrency  map[Currency]int     `json:"transactions_by_currency"`
	DiscrepanciesByCurrency map[Currency]int     `json:"discrepancies_by_currency"`
	Discrepancies           []Discrepancy        `json:"discrepancies"`
}
