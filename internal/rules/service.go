package rules

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/billwatch/reconciler/internal/domain"
)

// NewRule carries the caller-supplied fields of a charge rule to create;
// the id and creation timestamp are assigned by the service.
type NewRule struct {
	TransactionType string            `json:"transaction_type"`
	SubType         string            `json:"sub_type"`
	Currency        domain.Currency   `json:"currency"`
	ChargeAmount    float64           `json:"charge_amount"`
	ChargeType      domain.ChargeType `json:"charge_type"`
	MinAmount       *float64          `json:"min_amount,omitempty"`
	MaxAmount       *float64          `json:"max_amount,omitempty"`
}

// RulePatch is a partial update; nil fields are left unchanged.
type RulePatch struct {
	TransactionType *string            `json:"transaction_type,omitempty"`
	SubType         *string            `json:"sub_type,omitempty"`
	Currency        *domain.Currency   `json:"currency,omitempty"`
	ChargeAmount    *float64           `json:"charge_amount,omitempty"`
	ChargeType      *domain.ChargeType `json:"charge_type,omitempty"`
	MinAmount       *float64           `json:"min_amount,omitempty"`
	MaxAmount       *float64           `json:"max_amount,omitempty"`
}

// Service holds the configured charge rules and computes expected charges.
// The (type, sub-type, currency) key is deliberately not unique: lookups
// take the first-inserted match, so a later rule with the same key is
// inert until the earlier one is deleted.
type Service struct {
	mu    sync.RWMutex
	rules []domain.ChargeRule
}

// NewService creates an empty rule table.
func NewService() *Service {
	return &Service{}
}

// NewServiceWithDefaults creates a rule table seeded with the deployment's
// default charge schedule.
func NewServiceWithDefaults() *Service {
	s := &Service{}
	for _, r := range defaultRules {
		s.Add(r)
	}
	return s
}

// Rules returns a copy of all rules in insertion order.
func (s *Service) Rules() []domain.ChargeRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChargeRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Get returns the rule with the given id.
func (s *Service) Get(id string) (domain.ChargeRule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rules {
		if s.rules[i].ID == id {
			return s.rules[i], true
		}
	}
	return domain.ChargeRule{}, false
}

// ExpectedCharge computes the charge a transaction should incur. No
// applicable rule is a valid, silent outcome: it returns 0. Fixed rules
// return their amount verbatim; percentage rules compute a fraction of the
// transaction amount, floored to min_amount and then capped to max_amount
// where those bounds are set.
func (s *Service) ExpectedCharge(transactionType, subType string, currency domain.Currency, amount float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rules {
		r := &s.rules[i]
		if r.TransactionType != transactionType || r.SubType != subType || r.Currency != currency {
			continue
		}
		if r.ChargeType == domain.ChargePercentage {
			charge := amount * r.ChargeAmount / 100
			if r.MinAmount != nil {
				charge = math.Max(charge, *r.MinAmount)
			}
			if r.MaxAmount != nil {
				charge = math.Min(charge, *r.MaxAmount)
			}
			return charge
		}
		return r.ChargeAmount
	}
	return 0
}

// Add appends a rule and assigns it a stable id.
func (s *Service) Add(input NewRule) domain.ChargeRule {
	rule := domain.ChargeRule{
		ID:              uuid.NewString(),
		TransactionType: input.TransactionType,
		SubType:         input.SubType,
		Currency:        input.Currency,
		ChargeAmount:    input.ChargeAmount,
		ChargeType:      input.ChargeType,
		MinAmount:       input.MinAmount,
		MaxAmount:       input.MaxAmount,
		CreatedAt:       time.Now().UTC(),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
	return rule
}

// Update applies a partial patch to the rule with the given id. It returns
// the updated rule and false when no rule matches.
func (s *Service) Update(id string, patch RulePatch) (domain.ChargeRule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rules {
		if s.rules[i].ID != id {
			continue
		}
		r := &s.rules[i]
		if patch.TransactionType != nil {
			r.TransactionType = *patch.TransactionType
		}
		if patch.SubType != nil {
			r.SubType = *patch.SubType
		}
		if patch.Currency != nil {
			r.Currency = *patch.Currency
		}
		if patch.ChargeAmount != nil {
			r.ChargeAmount = *patch.ChargeAmount
		}
		if patch.ChargeType != nil {
			r.ChargeType = *patch.ChargeType
		}
		if patch.MinAmount != nil {
			r.MinAmount = patch.MinAmount
		}
		if patch.MaxAmount != nil {
			r.MaxAmount = patch.MaxAmount
		}
		return *r, true
	}
	return domain.ChargeRule{}, false
}

// Delete removes the rule with the given id.
func (s *Service) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rules {
		if s.rules[i].ID == id {
			s.rules = append(s.rules[:i], s.rules[i+1:]...)
			return true
		}
	}
	return false
}
