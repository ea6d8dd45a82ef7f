package rules

import "github.com/billwatch/reconciler/internal/domain"

// TransactionTypes is the catalogue of transaction types and sub-types the
// deployment charges for, exposed to rule-management clients.
var TransactionTypes = []domain.TransactionCategory{
	{Category: "Deposits", SubTypes: []string{"Savings", "Current", "Fixed"}},
	{Category: "Withdrawal", SubTypes: []string{"ATM", "Over-the-counter", "Electronic"}},
	{Category: "Transfers", SubTypes: []string{"Interbank", "Intrabank", "Online Fund", "Wire"}},
	{Category: "Payments", SubTypes: []string{"Utility Bills", "Loan Repayments", "Credit Card", "Merchant"}},
}

// defaultRules is the deployment's standard charge schedule, seeded at
// startup. Insertion order matters: lookups return the first match.
var defaultRules = []NewRule{
	// Deposits - ZiG
	{TransactionType: "Deposits", SubType: "Savings", Currency: domain.CurrencyZiG, ChargeAmount: 0, ChargeType: domain.ChargeFixed},
	{TransactionType: "Deposits", SubType: "Current", Currency: domain.CurrencyZiG, ChargeAmount: 0, ChargeType: domain.ChargeFixed},
	{TransactionType: "Deposits", SubType: "Fixed", Currency: domain.CurrencyZiG, ChargeAmount: 0, ChargeType: domain.ChargeFixed},

	// Withdrawals - ZiG
	{TransactionType: "Withdrawal", SubType: "ATM", Currency: domain.CurrencyZiG, ChargeAmount: 5, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Over-the-counter", Currency: domain.CurrencyZiG, ChargeAmount: 10, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Electronic", Currency: domain.CurrencyZiG, ChargeAmount: 3, ChargeType: domain.ChargeFixed},

	// Transfers - ZiG
	{TransactionType: "Transfers", SubType: "Interbank", Currency: domain.CurrencyZiG, ChargeAmount: 15, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Intrabank", Currency: domain.CurrencyZiG, ChargeAmount: 5, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Online Fund", Currency: domain.CurrencyZiG, ChargeAmount: 8, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Wire", Currency: domain.CurrencyZiG, ChargeAmount: 25, ChargeType: domain.ChargeFixed},

	// Payments - ZiG
	{TransactionType: "Payments", SubType: "Utility Bills", Currency: domain.CurrencyZiG, ChargeAmount: 2, ChargeType: domain.ChargeFixed},
	{TransactionType: "Payments", SubType: "Loan Repayments", Currency: domain.CurrencyZiG, ChargeAmount: 0, ChargeType: domain.ChargeFixed},
	{TransactionType: "Payments", SubType: "Credit Card", Currency: domain.CurrencyZiG, ChargeAmount: 1.5, ChargeType: domain.ChargePercentage},
	{TransactionType: "Payments", SubType: "Merchant", Currency: domain.CurrencyZiG, ChargeAmount: 2.5, ChargeType: domain.ChargePercentage},

	// Deposits - USD
	{TransactionType: "Deposits", SubType: "Savings", Currency: domain.CurrencyUSD, ChargeAmount: 0, ChargeType: domain.ChargeFixed},
	{TransactionType: "Deposits", SubType: "Current", Currency: domain.CurrencyUSD, ChargeAmount: 0, ChargeType: domain.ChargeFixed},
	{TransactionType: "Deposits", SubType: "Fixed", Currency: domain.CurrencyUSD, ChargeAmount: 0, ChargeType: domain.ChargeFixed},

	// Withdrawals - USD
	{TransactionType: "Withdrawal", SubType: "ATM", Currency: domain.CurrencyUSD, ChargeAmount: 2, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Over-the-counter", Currency: domain.CurrencyUSD, ChargeAmount: 5, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Electronic", Currency: domain.CurrencyUSD, ChargeAmount: 1, ChargeType: domain.ChargeFixed},

	// Transfers - USD
	{TransactionType: "Transfers", SubType: "Interbank", Currency: domain.CurrencyUSD, ChargeAmount: 10, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Intrabank", Currency: domain.CurrencyUSD, ChargeAmount: 3, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Online Fund", Currency: domain.CurrencyUSD, ChargeAmount: 5, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Wire", Currency: domain.CurrencyUSD, ChargeAmount: 20, ChargeType: domain.ChargeFixed},

	// Payments - USD
	{TransactionType: "Payments", SubType: "Utility Bills", Currency: domain.CurrencyUSD, ChargeAmount: 1, ChargeType: domain.ChargeFixed},
	{TransactionType: "Payments", SubType: "Loan Repayments", Currency: domain.CurrencyUSD, ChargeAmount: 0, ChargeType: domain.ChargeFixed},
	{TransactionType: "Payments", SubType: "Credit Card", Currency: domain.CurrencyUSD, ChargeAmount: 2, ChargeType: domain.ChargePercentage},
	{TransactionType: "Payments", SubType: "Merchant", Currency: domain.CurrencyUSD, ChargeAmount: 3, ChargeType: domain.ChargePercentage},

	// EUR
	{TransactionType: "Withdrawal", SubType: "ATM", Currency: domain.CurrencyEUR, ChargeAmount: 1.5, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Over-the-counter", Currency: domain.CurrencyEUR, ChargeAmount: 4, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Interbank", Currency: domain.CurrencyEUR, ChargeAmount: 8, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Wire", Currency: domain.CurrencyEUR, ChargeAmount: 15, ChargeType: domain.ChargeFixed},

	// ZAR
	{TransactionType: "Withdrawal", SubType: "ATM", Currency: domain.CurrencyZAR, ChargeAmount: 8, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Over-the-counter", Currency: domain.CurrencyZAR, ChargeAmount: 15, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Interbank", Currency: domain.CurrencyZAR, ChargeAmount: 25, ChargeType: domain.ChargeFixed},

	// GBP
	{TransactionType: "Withdrawal", SubType: "ATM", Currency: domain.CurrencyGBP, ChargeAmount: 1.2, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Over-the-counter", Currency: domain.CurrencyGBP, ChargeAmount: 3.5, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Wire", Currency: domain.CurrencyGBP, ChargeAmount: 12, ChargeType: domain.ChargeFixed},

	// ZMW
	{TransactionType: "Withdrawal", SubType: "ATM", Currency: domain.CurrencyZMW, ChargeAmount: 15, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Over-the-counter", Currency: domain.CurrencyZMW, ChargeAmount: 25, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Interbank", Currency: domain.CurrencyZMW, ChargeAmount: 40, ChargeType: domain.ChargeFixed},

	// MWK
	{TransactionType: "Withdrawal", SubType: "ATM", Currency: domain.CurrencyMWK, ChargeAmount: 500, ChargeType: domain.ChargeFixed},
	{TransactionType: "Withdrawal", SubType: "Over-the-counter", Currency: domain.CurrencyMWK, ChargeAmount: 800, ChargeType: domain.ChargeFixed},
	{TransactionType: "Transfers", SubType: "Interbank", Currency: domain.CurrencyMWK, ChargeAmount: 1200, ChargeType: domain.ChargeFixed},
}
