package ingestion

import (
	"fmt"
	"strings"
	"time"

	"github.com/billwatch/reconciler/internal/domain"
)

// Kind identifies which canonical record a batch produces.
type Kind string

const (
	KindTransactions Kind = "transactions"
	KindCharges      Kind = "charges"
	KindAuto         Kind = "auto"
)

// RowResult records the outcome for a single normalized row. Rejected rows
// are dropped silently, by policy; only the accepted count crosses the API
// today, but the per-row reasons stay available for later surfacing.
type RowResult struct {
	Index  int
	Kept   bool
	Reason string
}

// chargeMarkers are field names that only appear on charge rows. A batch
// uploaded with kind "auto" is classified as charges when any row carries
// one of them, transactions otherwise.
var chargeMarkers = []string{"charge_amount", "charge_id", "charge_type"}

// DetectKind classifies an untyped batch.
func DetectKind(rows []Row) Kind {
	for _, row := range rows {
		for _, marker := range chargeMarkers {
			if _, ok := row[marker]; ok {
				return KindCharges
			}
		}
	}
	return KindTransactions
}

// DetectCurrency maps a raw currency string to a supported code: exact
// code match on the uppercased input, then an exact symbol match on the
// raw input, then a case-insensitive substring match against currency
// names. Each pass scans the registry in declaration order, so substring
// ties resolve to the earliest-declared currency. Anything unrecognised
// resolves to USD.
func DetectCurrency(raw string) domain.Currency {
	if raw == "" {
		return domain.CurrencyUSD
	}
	upper := strings.ToUpper(raw)
	if info, ok := domain.LookupCurrency(domain.Currency(upper)); ok {
		return info.Code
	}
	for _, info := range domain.AllCurrencies() {
		if info.Symbol == raw {
			return info.Code
		}
	}
	for _, info := range domain.AllCurrencies() {
		if strings.Contains(strings.ToUpper(info.Name), upper) {
			return info.Code
		}
	}
	return domain.CurrencyUSD
}

// normalizeTransactions converts raw rows into canonical transactions,
// dropping rows with no usable amount. A row without a transaction_id is
// not dropped: it gets a synthetic TXN- identifier.
func normalizeTransactions(rows []Row, batchID string) ([]domain.Transaction, []RowResult) {
	now := time.Now().UTC().Format(time.RFC3339)
	results := make([]RowResult, 0, len(rows))
	var txns []domain.Transaction

	for i, row := range rows {
		id := fmt.Sprintf("transactions_%s_%d", batchID, i)

		txn := domain.Transaction{
			ID:            id,
			TransactionID: row.stringField("transaction_id", "id"),
			CustomerID:    row.stringField("customer_id", "customer"),
			Currency:      DetectCurrency(row.stringField("currency")),
			ServiceType:   row.stringField("service_type", "type"),
			Region:        row.stringField("region"),
			Timestamp:     row.stringField("timestamp", "date"),
			Status:        row.stringField("status"),
		}
		if txn.TransactionID == "" {
			txn.TransactionID = "TXN-" + id
		}
		if txn.Timestamp == "" {
			txn.Timestamp = now
		}
		if txn.Status == "" {
			txn.Status = "processed"
		}

		amount, finite := row.numberField("amount", "charge_amount")
		if !finite || amount <= 0 {
			results = append(results, RowResult{Index: i, Reason: "amount must be a number greater than zero"})
			continue
		}
		txn.Amount = amount

		txns = append(txns, txn)
		results = append(results, RowResult{Index: i, Kept: true})
	}
	return txns, results
}

// normalizeCharges converts raw rows into canonical charges. Unlike
// transactions, a charge without a transaction_id reference is useless and
// is dropped.
func normalizeCharges(rows []Row, batchID string) ([]domain.Charge, []RowResult) {
	now := time.Now().UTC().Format(time.RFC3339)
	results := make([]RowResult, 0, len(rows))
	var charges []domain.Charge

	for i, row := range rows {
		id := fmt.Sprintf("charges_%s_%d", batchID, i)

		charge := domain.Charge{
			ID:               id,
			ChargeID:         row.stringField("charge_id", "id"),
			TransactionID:    row.stringField("transaction_id", "transaction"),
			Currency:         DetectCurrency(row.stringField("currency")),
			ChargeType:       row.stringField("charge_type", "type"),
			AppliedTimestamp: row.stringField("applied_timestamp", "timestamp", "date"),
			Status:           row.stringField("status"),
		}
		if charge.ChargeID == "" {
			charge.ChargeID = "CHG-" + id
		}
		if charge.AppliedTimestamp == "" {
			charge.AppliedTimestamp = now
		}
		if charge.Status == "" {
			charge.Status = "applied"
		}

		if charge.TransactionID == "" {
			results = append(results, RowResult{Index: i, Reason: "transaction_id is required"})
			continue
		}
		amount, finite := row.numberField("charge_amount", "amount")
		if !finite || amount <= 0 {
			results = append(results, RowResult{Index: i, Reason: "charge_amount must be a number greater than zero"})
			continue
		}
		charge.ChargeAmount = amount

		charges = append(charges, charge)
		results = append(results, RowResult{Index: i, Kept: true})
	}
	return charges, results
}
