package reconciliation

import (
	"fmt"
	"math"
	"time"

	"github.com/billwatch/reconciler/internal/domain"
)

// mismatchThresholdPct is the fraction of the transaction amount below
// which a charge-sum difference is tolerated.
const mismatchThresholdPct = 0.01

// highSeverityPct is the fraction of the transaction amount above which an
// over/undercharge is graded high instead of medium.
const highSeverityPct = 0.10

// Reconcile matches transactions to the charges referencing them and
// classifies every mismatch. It is a pure function of its inputs:
// discrepancies are regenerated on every call, in transaction input order,
// with any duplicate-charge findings for a transaction immediately after
// its amount check.
func Reconcile(transactions []domain.Transaction, charges []domain.Charge) []domain.Discrepancy {
	if len(transactions) == 0 && len(charges) == 0 {
		return nil
	}

	byTransaction := make(map[string][]domain.Charge, len(charges))
	for _, c := range charges {
		byTransaction[c.TransactionID] = append(byTransaction[c.TransactionID], c)
	}

	now := time.Now().UTC()
	var discrepancies []domain.Discrepancy

	for _, txn := range transactions {
		group := byTransaction[txn.TransactionID]

		if len(group) == 0 {
			discrepancies = append(discrepancies, domain.Discrepancy{
				ID:            fmt.Sprintf("missing_%s", txn.ID),
				TransactionID: txn.TransactionID,
				Type:          domain.DiscrepancyMissing,
				Amount:        txn.Amount,
				Currency:      txn.Currency,
				Description:   "No charges found for this transaction",
				DetectedAt:    now,
				Severity:      domain.SeverityHigh,
			})
			continue
		}

		// Only charges in the transaction's own currency count toward the
		// sum; foreign-currency charges are excluded, never converted.
		var total float64
		for _, c := range group {
			if c.Currency == txn.Currency {
				total += c.ChargeAmount
			}
		}

		difference := math.Abs(txn.Amount - total)
		if difference > txn.Amount*mismatchThresholdPct {
			dtype, verb := domain.DiscrepancyUndercharge, "Undercharged"
			if total > txn.Amount {
				dtype, verb = domain.DiscrepancyOvercharge, "Overcharged"
			}
			severity := domain.SeverityMedium
			if difference > txn.Amount*highSeverityPct {
				severity = domain.SeverityHigh
			}
			discrepancies = append(discrepancies, domain.Discrepancy{
				ID:            fmt.Sprintf("%s_%s", dtype, txn.ID),
				TransactionID: txn.TransactionID,
				Type:          dtype,
				Amount:        difference,
				Currency:      txn.Currency,
				Description:   fmt.Sprintf("%s by %.2f", verb, difference),
				DetectedAt:    now,
				Severity:      severity,
			})
		}

		discrepancies = append(discrepancies, duplicateCharges(txn, group, now)...)
	}

	return discrepancies
}

type chargeKey struct {
	amount     float64
	chargeType string
}

// duplicateCharges flags every charge in the group whose (amount, type)
// pair already occurred earlier; with three identical charges, the second
// and third are both flagged. The scan covers the whole group, including
// charges in other currencies than the transaction's.
func duplicateCharges(txn domain.Transaction, group []domain.Charge, now time.Time) []domain.Discrepancy {
	var discrepancies []domain.Discrepancy
	seen := make(map[chargeKey]bool, len(group))
	for _, c := range group {
		key := chargeKey{amount: c.ChargeAmount, chargeType: c.ChargeType}
		if seen[key] {
			discrepancies = append(discrepancies, domain.Discrepancy{
				ID:            fmt.Sprintf("duplicate_%s", c.ID),
				TransactionID: txn.TransactionID,
				Type:          domain.DiscrepancyDuplicate,
				Amount:        c.ChargeAmount,
				Currency:      c.Currency,
				Description:   fmt.Sprintf("Duplicate charge detected: %s", c.ChargeType),
				DetectedAt:    now,
				Severity:      domain.SeverityMedium,
			})
			continue
		}
		seen[key] = true
	}
	return discrepancies
}
