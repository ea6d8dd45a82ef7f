package domain

import "github.com/dustin/go-humanize"

// Currency is a supported currency code.
type Currency string

const (
	CurrencyZiG Currency = "ZiG"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyZAR Currency = "ZAR"
	CurrencyGBP Currency = "GBP"
	CurrencyZMW Currency = "ZMW"
	CurrencyMWK Currency = "MWK"
)

// CurrencyInfo describes one supported currency.
type CurrencyInfo struct {
	Code   Currency `json:"code"`
	Symbol string   `json:"symbol"`
	Name   string   `json:"name"`
}

// currencies is the closed set of currencies handled by this deployment.
// Declaration order is part of the contract: currency detection resolves
// name-substring ties in this order.
var currencies = []CurrencyInfo{
	{Code: CurrencyZiG, Symbol: "ZiG", Name: "Zimbabwe Gold"},
	{Code: CurrencyUSD, Symbol: "$", Name: "US Dollar"},
	{Code: CurrencyEUR, Symbol: "€", Name: "Euro"},
	{Code: CurrencyZAR, Symbol: "R", Name: "South African Rand"},
	{Code: CurrencyGBP, Symbol: "£", Name: "British Pound"},
	{Code: CurrencyZMW, Symbol: "ZK", Name: "Zambian Kwacha"},
	{Code: CurrencyMWK, Symbol: "MK", Name: "Malawian Kwacha"},
}

var currencyIndex = func() map[Currency]CurrencyInfo {
	idx := make(map[Currency]CurrencyInfo, len(currencies))
	for _, info := range currencies {
		idx[info.Code] = info
	}
	return idx
}()

// LookupCurrency returns the registry entry for a code. The match is exact
// and case-sensitive; callers that cannot resolve a code fall back to USD.
func LookupCurrency(code Currency) (CurrencyInfo, bool) {
	info, ok := currencyIndex[code]
	return info, ok
}

// AllCurrencies returns the supported currencies in declaration order.
func AllCurrencies() []CurrencyInfo {
	out := make([]CurrencyInfo, len(currencies))
	copy(out, currencies)
	return out
}

// FormatAmount renders an amount as {symbol}{amount} with exactly two
// decimal places and thousands grouping. Unknown codes render with the
// code itself as the symbol.
func FormatAmount(amount float64, code Currency) string {
	symbol := string(code)
	if info, ok := currencyIndex[code]; ok {
		symbol = info.Symbol
	}
	return symbol + humanize.FormatFloat("#,###.##", amount)
}
