package domain

import "time"

type DiscrepancyType string

const (
	DiscrepancyOvercharge  DiscrepancyType = "overcharge"
	DiscrepancyUndercharge DiscrepancyType = "undercharge"
	DiscrepancyMissing     DiscrepancyType = "missing"
	DiscrepancyDuplicate   DiscrepancyType = "duplicate"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Discrepancy is a detected mismatch between a transaction and the charges
// applied against it. Discrepancies are derived values, regenerated on
// every reconciliation run and never mutated. The currency is always the
// currency of the transaction (or, for duplicates, the charge) that
// produced the finding.
type Discrepancy struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	Type          DiscrepancyType `json:"type"`
	Amount        float64         `json:"amount"`
	Currency      Currency        `json:"currency"`
	Description   string          `json:"description"`
	DetectedAt    time.Time       `json:"detected_at"`
	Severity      Severity        `json:"severity"`
}
