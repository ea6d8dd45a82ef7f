package repository

import (
	"database/sql"
	"fmt"

	"github.com/billwatch/reconciler/internal/domain"
)

type ChargeRepo struct {
	db *sql.DB
}

func NewChargeRepo(db *sql.DB) *ChargeRepo {
	return &ChargeRepo{db: db}
}

// BulkInsert archives a batch of charges, skipping charge_ids already
// archived. The transaction_id column is a weak reference and is not
// checked against the transactions table.
func (r *ChargeRepo) BulkInsert(charges []domain.Charge) (int, error) {
	inserted := 0
	sqlTx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer sqlTx.Rollback()

	stmt, err := sqlTx.Prepare(
		`INSERT OR IGNORE INTO charges
		(charge_id, record_id, transaction_id, charge_amount, currency,
		 charge_type, applied_timestamp, status)
		VALUES (?,?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for i := range charges {
		c := &charges[i]
		res, err := stmt.Exec(
			c.ChargeID, c.ID, c.TransactionID, c.ChargeAmount,
			string(c.Currency), c.ChargeType, c.AppliedTimestamp, c.Status,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert row %d: %w", i, err)
		}
		ra, _ := res.RowsAffected()
		inserted += int(ra)
	}

	if err := sqlTx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return inserted, nil
}

func (r *ChargeRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM charges").Scan(&count)
	return count, err
}

// GetByTransactionID returns all archived charges referencing a
// transaction, in archival order.
func (r *ChargeRepo) GetByTransactionID(transactionID string) ([]domain.Charge, error) {
	rows, err := r.db.Query(
		`SELECT charge_id, record_id, transaction_id, charge_amount,
		 currency, charge_type, applied_timestamp, status
		 FROM charges WHERE transaction_id = ? ORDER BY rowid`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	return scanCharges(rows)
}

func (r *ChargeRepo) List() ([]domain.Charge, error) {
	rows, err := r.db.Query(
		`SELECT charge_id, record_id, transaction_id, charge_amount,
		 currency, charge_type, applied_timestamp, status
		 FROM charges ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	return scanCharges(rows)
}

func scanCharges(rows *sql.Rows) ([]domain.Charge, error) {
	var charges []domain.Charge
	for rows.Next() {
		var c domain.Charge
		var currency string
		if err := rows.Scan(&c.ChargeID, &c.ID, &c.TransactionID,
			&c.ChargeAmount, &currency, &c.ChargeType, &c.AppliedTimestamp,
			&c.Status); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		c.Currency = domain.Currency(currency)
		charges = append(charges, c)
	}
	return charges, rows.Err()
}
