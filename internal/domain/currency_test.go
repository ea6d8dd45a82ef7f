package domain

import "testing"

func TestLookupCurrency(t *testing.T) {
	info, ok := LookupCurrency(CurrencyZAR)
	if !ok {
		t.Fatal("expected ZAR to be registered")
	}
	if info.Symbol != "R" || info.Name != "South African Rand" {
		t.Errorf("unexpected ZAR info: %+v", info)
	}

	// Codes match case-sensitively; the mixed-case ZiG code is not
	// reachable via its uppercased form.
	if _, ok := LookupCurrency("ZIG"); ok {
		t.Error("expected ZIG lookup to miss")
	}
	if _, ok := LookupCurrency(CurrencyZiG); !ok {
		t.Error("expected ZiG lookup to hit")
	}
	if _, ok := LookupCurrency("XXX"); ok {
		t.Error("expected XXX lookup to miss")
	}
}

func TestAllCurrenciesOrder(t *testing.T) {
	want := []Currency{
		CurrencyZiG, CurrencyUSD, CurrencyEUR, CurrencyZAR,
		CurrencyGBP, CurrencyZMW, CurrencyMWK,
	}
	got := AllCurrencies()
	if len(got) != len(want) {
		t.Fatalf("expected %d currencies, got %d", len(want), len(got))
	}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("position %d: expected %s, got %s", i, code, got[i].Code)
		}
	}
}

func TestAllCurrenciesReturnsCopy(t *testing.T) {
	first := AllCurrencies()
	first[0].Symbol = "mutated"
	if AllCurrencies()[0].Symbol != "ZiG" {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency Currency
		want     string
	}{
		{"usd with grouping", 1234.5, CurrencyUSD, "$1,234.50"},
		{"whole amount pads decimals", 5, CurrencyEUR, "€5.00"},
		{"millions", 1000000, CurrencyZiG, "ZiG1,000,000.00"},
		{"zar symbol", 99.999, CurrencyZAR, "R100.00"},
		{"unknown code falls back to the code", 5, "XXX", "XXX5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.amount, tt.currency); got != tt.want {
				t.Errorf("FormatAmount(%v, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}
