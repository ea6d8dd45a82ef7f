package domain

import "time"

type ChargeType string

const (
	ChargeFixed      ChargeType = "fixed"
	ChargePercentage ChargeType = "percentage"
)

// ChargeRule is a configured expectation of what a transaction of a given
// type, sub-type and currency should cost. MinAmount/MaxAmount clamp
// percentage charges only; nil means no bound.
type ChargeRule struct {
	ID              string     `json:"id"`
	TransactionType string     `json:"transaction_type"`
	SubType         string     `json:"sub_type"`
	Currency        Currency   `json:"currency"`
	ChargeAmount    float64    `json:"charge_amount"`
	ChargeType      ChargeType `json:"charge_type"`
	MinAmount       *float64   `json:"min_amount,omitempty"`
	MaxAmount       *float64   `json:"max_amount,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// TransactionCategory groups the sub-types offered under one transaction
// type, for rule-management clients.
type TransactionCategory struct {
	Category string   `json:"category"`
	SubTypes []string `json:"sub_types"`
}
