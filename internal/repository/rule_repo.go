package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/billwatch/reconciler/internal/domain"
)

type RuleRepo struct {
	db *sql.DB
}

func NewRuleRepo(db *sql.DB) *RuleRepo {
	return &RuleRepo{db: db}
}

// Save writes a rule by surrogate id, replacing any previously archived
// version. Used for both create and update mirroring.
func (r *RuleRepo) Save(rule domain.ChargeRule) error {
	_, err := r.db.Exec(
		`INSERT OR REPLACE INTO charge_rules
		(id, transaction_type, sub_type, currency, charge_amount,
		 charge_type, min_amount, max_amount, created_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		rule.ID, rule.TransactionType, rule.SubType, string(rule.Currency),
		rule.ChargeAmount, string(rule.ChargeType),
		nullableFloat(rule.MinAmount), nullableFloat(rule.MaxAmount),
		rule.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save rule: %w", err)
	}
	return nil
}

func (r *RuleRepo) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM charge_rules WHERE id = ?", id)
	return err
}

func (r *RuleRepo) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM charge_rules").Scan(&count)
	return count, err
}

// List returns all archived rules in archival order, which matches the
// rule table's insertion order for rules created through the API.
func (r *RuleRepo) List() ([]domain.ChargeRule, error) {
	rows, err := r.db.Query(
		`SELECT id, transaction_type, sub_type, currency, charge_amount,
		 charge_type, min_amount, max_amount, created_at
		 FROM charge_rules ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var rules []domain.ChargeRule
	for rows.Next() {
		var rule domain.ChargeRule
		var currency, chargeType, createdAt string
		var minAmount, maxAmount sql.NullFloat64
		if err := rows.Scan(&rule.ID, &rule.TransactionType, &rule.SubType,
			&currency, &rule.ChargeAmount, &chargeType, &minAmount,
			&maxAmount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rule.Currency = domain.Currency(currency)
		rule.ChargeType = domain.ChargeType(chargeType)
		if minAmount.Valid {
			v := minAmount.Float64
			rule.MinAmount = &v
		}
		if maxAmount.Valid {
			v := maxAmount.Float64
			rule.MaxAmount = &v
		}
		rule.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
