package domain

// Transaction is one canonical customer transaction produced by the
// normalizer. Timestamps are carried as the raw uploaded strings; the
// engine never interprets them.
type Transaction struct {
	ID            string   `json:"id"`
	TransactionID string   `json:"transaction_id"`
	CustomerID    string   `json:"customer_id,omitempty"`
	Amount        float64  `json:"amount"`
	Currency      Currency `json:"currency"`
	ServiceType   string   `json:"service_type,omitempty"`
	Region        string   `json:"region,omitempty"`
	Timestamp     string   `json:"timestamp"`
	Status        string   `json:"status,omitempty"`
}

// Charge is one canonical charge record. TransactionID is a weak reference:
// it may point at a transaction that was never uploaded.
type Charge struct {
	ID               string   `json:"id"`
	ChargeID         string   `json:"charge_id"`
	TransactionID    string   `json:"transaction_id"`
	ChargeAmount     float64  `json:"charge_amount"`
	Currency         Currency `json:"currency"`
	ChargeType       string   `json:"charge_type,omitempty"`
	AppliedTimestamp string   `json:"applied_timestamp"`
	Status           string   `json:"status,omitempty"`
}
