package repository

import (
	"database/sql"
	"fmt"

	"github.com/billwatch/reconciler/internal/domain"
)

type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// BulkInsert archives a batch of transactions. Records whose
// transaction_id was already archived are skipped; the return value is the
// number of rows actually written.
func (r *TransactionRepo) BulkInsert(txns []domain.Transaction) (int, error) {
	inserted := 0
	sqlTx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer sqlTx.Rollback()

	stmt, err := sqlTx.Prepare(
		`INSERT OR IGNORE INTO transactions
		(transaction_id, record_id, customer_id, amount, currency,
		 service_type, region, timestamp, status)
		VALUES (?,?,?,?,?,?,?,?,?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for i := range txns {
		tx := &txns[i]
		res, err := stmt.Exec(
			tx.TransactionID, tx.ID, tx.CustomerID, tx.Amount,
			string(tx.Currency), tx.ServiceType, tx.Region, tx.Timestamp,
			tx.Status,
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

func (r *TransactionRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

func (r *TransactionRepo) GetByID(transactionID string) (*domain.Transaction, error) {
	row := r.db.QueryRow(
		`SELECT transaction_id, record_id, customer_id, amount, currency,
		 service_type, region, timestamp, status
		 FROM transactions WHERE transaction_id = ?`, transactionID)

	var tx domain.Transaction
	var currency string
	err := row.Scan(&tx.TransactionID, &tx.ID, &tx.CustomerID, &tx.Amount,
		&currency, &tx.ServiceType, &tx.Region, &tx.Timestamp, &tx.Status)
	if err != nil {
		return nil, err
	}
	tx.Currency = domain.Currency(currency)
	return &tx, nil
}

func (r *TransactionRepo) List() ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT transaction_id, record_id, customer_id, amount, currency,
		 service_type, region, timestamp, status
		 FROM transactions ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var currency string
		if err := rows.Scan(&tx.TransactionID, &tx.ID, &tx.CustomerID,
			&tx.Amount, &currency, &tx.ServiceType, &tx.Region,
			&tx.Timestamp, &tx.Status); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		tx.Currency = domain.Currency(currency)
		txns = append(txns, tx)
	}
	return txns, rows.Err()
}
