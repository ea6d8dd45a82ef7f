package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/billwatch/reconciler/internal/domain"
	"github.com/billwatch/reconciler/internal/ingestion"
	"github.com/billwatch/reconciler/internal/rules"
	"github.com/billwatch/reconciler/internal/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	records := store.NewRecordStore()
	router := NewRouter(
		records,
		ingestion.NewService(records),
		rules.NewServiceWithDefaults(),
		nil, nil, nil,
	)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestUploadAndAnalysis(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/uploads", `{
		"kind": "transactions",
		"rows": [
			{"transaction_id": "T1", "amount": 100, "currency": "USD"},
			{"transaction_id": "T2", "amount": "abc"}
		]
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}
	var uploadResult struct {
		Accepted int `json:"records_accepted"`
		Rejected int `json:"records_rejected"`
	}
	decodeBody(t, resp, &uploadResult)
	if uploadResult.Accepted != 1 || uploadResult.Rejected != 1 {
		t.Errorf("accepted/rejected = %d/%d, want 1/1", uploadResult.Accepted, uploadResult.Rejected)
	}

	resp = postJSON(t, srv.URL+"/api/v1/uploads", `{
		"kind": "auto",
		"rows": [
			{"transaction_id": "T1", "charge_amount": 60, "charge_type": "fee", "currency": "USD"},
			{"transaction_id": "T1", "charge_amount": 60, "charge_type": "fee", "currency": "USD"}
		]
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("charge upload status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	analysisResp, err := http.Get(srv.URL + "/api/v1/analysis")
	if err != nil {
		t.Fatalf("GET analysis: %v", err)
	}
	var snap domain.AnalysisSnapshot
	decodeBody(t, analysisResp, &snap)

	if snap.TotalTransactions != 1 {
		t.Errorf("total_transactions = %d, want 1", snap.TotalTransactions)
	}
	// T1: overcharge of 20 plus one duplicate.
	if snap.TotalDiscrepancies != 2 {
		t.Errorf("total_discrepancies = %d, want 2 (%+v)", snap.TotalDiscrepancies, snap.Discrepancies)
	}
	if snap.RevenueAtRisk[domain.CurrencyUSD] != 80 {
		t.Errorf("revenue_at_risk[USD] = %v, want 80", snap.RevenueAtRisk[domain.CurrencyUSD])
	}
	if snap.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0 after clamp", snap.Accuracy)
	}
}

func TestUploadUnsupportedKind(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/uploads", `{
		"kind": "spreadsheets",
		"rows": [{"transaction_id": "T1", "amount": 100}]
	}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestUploadRequiresRows(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/uploads", `{"kind": "transactions", "rows": []}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDiscrepancyFilters(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/uploads", `{
		"kind": "transactions",
		"rows": [
			{"transaction_id": "T1", "amount": 100, "currency": "USD"},
			{"transaction_id": "T2", "amount": 50, "currency": "EUR"}
		]
	}`)
	resp.Body.Close()

	// Both transactions have no charges: two missing discrepancies.
	listResp, err := http.Get(srv.URL + "/api/v1/discrepancies?currency=EUR")
	if err != nil {
		t.Fatalf("GET discrepancies: %v", err)
	}
	var list struct {
		Discrepancies []domain.Discrepancy `json:"discrepancies"`
		Total         int                  `json:"total"`
	}
	decodeBody(t, listResp, &list)

	if list.Total != 1 {
		t.Fatalf("filtered total = %d, want 1", list.Total)
	}
	if list.Discrepancies[0].TransactionID != "T2" {
		t.Errorf("filter returned wrong discrepancy: %+v", list.Discrepancies[0])
	}
}

func TestClearRecords(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/api/v1/uploads", `{
		"kind": "transactions",
		"rows": [{"transaction_id": "T1", "amount": 100}]
	}`)
	resp.Body.Close()

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/records", nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE records: %v", err)
	}
	delResp.Body.Close()

	listResp, err := http.Get(srv.URL + "/api/v1/transactions")
	if err != nil {
		t.Fatalf("GET transactions: %v", err)
	}
	var list struct {
		Total int `json:"total"`
	}
	decodeBody(t, listResp, &list)
	if list.Total != 0 {
		t.Errorf("total after clear = %d, want 0", list.Total)
	}
}

func TestChargeRuleCRUD(t *testing.T) {
	srv := testServer(t)

	createResp := postJSON(t, srv.URL+"/api/v1/charge-rules", `{
		"transaction_type": "Transfers",
		"sub_type": "Wire",
		"currency": "ZMW",
		"charge_amount": 50,
		"charge_type": "fixed"
	}`)
	if createResp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want 201", createResp.StatusCode)
	}
	var created domain.ChargeRule
	decodeBody(t, createResp, &created)
	if created.ID == "" {
		t.Fatal("created rule has no id")
	}

	patch := bytes.NewReader([]byte(`{"charge_amount": 55}`))
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/charge-rules/"+created.ID, patch)
	updResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT rule: %v", err)
	}
	if updResp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200", updResp.StatusCode)
	}
	var updated domain.ChargeRule
	decodeBody(t, updResp, &updated)
	if updated.ChargeAmount != 55 || updated.SubType != "Wire" {
		t.Errorf("partial update wrong: %+v", updated)
	}

	req, _ = http.NewRequest(http.MethodPut, srv.URL+"/api/v1/charge-rules/nope", strings.NewReader(`{"charge_amount": 1}`))
	missResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT unknown rule: %v", err)
	}
	missResp.Body.Close()
	if missResp.StatusCode != http.StatusNotFound {
		t.Errorf("update unknown id status = %d, want 404", missResp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/charge-rules/"+created.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE rule: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusOK {
		t.Errorf("delete status = %d, want 200", delResp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/charge-rules/"+created.ID, nil)
	delResp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE rule again: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", delResp.StatusCode)
	}
}

func TestCreateChargeRuleValidation(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad charge_type", `{"transaction_type": "Transfers", "sub_type": "Wire", "currency": "USD", "charge_amount": 5, "charge_type": "weird"}`},
		{"unknown currency", `{"transaction_type": "Transfers", "sub_type": "Wire", "currency": "JPY", "charge_amount": 5, "charge_type": "fixed"}`},
		{"missing type", `{"sub_type": "Wire", "currency": "USD", "charge_amount": 5, "charge_type": "fixed"}`},
		{"negative amount", `{"transaction_type": "Transfers", "sub_type": "Wire", "currency": "USD", "charge_amount": -5, "charge_type": "fixed"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+"/api/v1/charge-rules", tt.body)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestExpectedChargeEndpoint(t *testing.T) {
	srv := testServer(t)

	// Seeded default: Withdrawal/ATM in USD is a fixed 2.
	resp := postJSON(t, srv.URL+"/api/v1/charge-rules/expected", `{
		"transaction_type": "Withdrawal",
		"sub_type": "ATM",
		"currency": "US Dollar",
		"amount": 500
	}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out struct {
		Currency       domain.Currency `json:"currency"`
		ExpectedCharge float64         `json:"expected_charge"`
		Formatted      string          `json:"formatted"`
	}
	decodeBody(t, resp, &out)

	if out.Currency != domain.CurrencyUSD {
		t.Errorf("currency = %s, want USD via name detection", out.Currency)
	}
	if out.ExpectedCharge != 2 {
		t.Errorf("expected_charge = %v, want 2", out.ExpectedCharge)
	}
	if out.Formatted != "$2.00" {
		t.Errorf("formatted = %q, want $2.00", out.Formatted)
	}
}

func TestListCurrencies(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/currencies")
	if err != nil {
		t.Fatalf("GET currencies: %v", err)
	}
	var out struct {
		Currencies []domain.CurrencyInfo `json:"currencies"`
	}
	decodeBody(t, resp, &out)

	if len(out.Currencies) != 7 {
		t.Fatalf("got %d currencies, want 7", len(out.Currencies))
	}
	if out.Currencies[0].Code != domain.CurrencyZiG {
		t.Errorf("first currency = %s, want declaration order starting at ZiG", out.Currencies[0].Code)
	}
}
