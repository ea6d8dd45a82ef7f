package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/billwatch/reconciler/internal/domain"
	"github.com/billwatch/reconciler/internal/ingestion"
	"github.com/billwatch/reconciler/internal/reconciliation"
	"github.com/billwatch/reconciler/internal/repository"
	"github.com/billwatch/reconciler/internal/rules"
	"github.com/billwatch/reconciler/internal/store"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	records      *store.RecordStore
	ingestionSvc *ingestion.Service
	ruleSvc      *rules.Service
	txnRepo      *repository.TransactionRepo
	chargeRepo   *repository.ChargeRepo
	ruleRepo     *repository.RuleRepo
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// --- Upload ---

type uploadRequest struct {
	Kind ingestion.Kind  `json:"kind"`
	Rows []ingestion.Row `json:"rows"`
}

func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Kind == "" {
		req.Kind = ingestion.KindAuto
	}
	if len(req.Rows) == 0 {
		writeError(w, http.StatusBadRequest, "rows are required")
		return
	}

	result, err := h.ingestionSvc.Ingest(r.Context(), req.Rows, req.Kind)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, http.StatusRequestTimeout, err.Error())
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.archive(result)
	writeJSON(w, http.StatusOK, result)
}

// archive mirrors accepted records into the external store. Archival is
// best-effort: a storage problem never fails the upload.
func (h *Handlers) archive(result *ingestion.Result) {
	if h.txnRepo != nil && len(result.Transactions) > 0 {
		if _, err := h.txnRepo.BulkInsert(result.Transactions); err != nil {
			log.Printf("[api] WARNING: archive transactions: %v", err)
		}
	}
	if h.chargeRepo != nil && len(result.Charges) > 0 {
		if _, err := h.chargeRepo.BulkInsert(result.Charges); err != nil {
			log.Printf("[api] WARNING: archive charges: %v", err)
		}
	}
}

// --- ClearRecords ---

func (h *Handlers) ClearRecords(w http.ResponseWriter, r *http.Request) {
	h.records.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// --- Records ---

func (h *Handlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, _ := h.records.Records()
	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": txns,
		"total":        len(txns),
	})
}

func (h *Handlers) ListCharges(w http.ResponseWriter, r *http.Request) {
	_, charges := h.records.Records()
	writeJSON(w, http.StatusOK, map[string]any{
		"charges": charges,
		"total":   len(charges),
	})
}

// --- Analysis ---

func (h *Handlers) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	txns, charges := h.records.Records()
	discrepancies := reconciliation.Reconcile(txns, charges)
	writeJSON(w, http.StatusOK, reconciliation.Snapshot(txns, discrepancies))
}

func (h *Handlers) ListDiscrepancies(w http.ResponseWriter, r *http.Request) {
	txns, charges := h.records.Records()
	discrepancies := reconciliation.Reconcile(txns, charges)

	q := r.URL.Query()
	filtered := make([]domain.Discrepancy, 0, len(discrepancies))
	for _, d := range discrepancies {
		if t := q.Get("type"); t != "" && string(d.Type) != t {
			continue
		}
		if s := q.Get("severity"); s != "" && string(d.Severity) != s {
			continue
		}
		if c := q.Get("currency"); c != "" && string(d.Currency) != c {
			continue
		}
		filtered = append(filtered, d)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"discrepancies": filtered,
		"total":         len(filtered),
	})
}

// --- Reference data ---

func (h *Handlers) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"currencies": domain.AllCurrencies(),
	})
}

func (h *Handlers) ListTransactionTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"transaction_types": rules.TransactionTypes,
	})
}

// --- Charge rules ---

func (h *Handlers) ListChargeRules(w http.ResponseWriter, r *http.Request) {
	ruleList := h.ruleSvc.Rules()
	writeJSON(w, http.StatusOK, map[string]any{
		"charge_rules": ruleList,
		"total":        len(ruleList),
	})
}

func (h *Handlers) CreateChargeRule(w http.ResponseWriter, r *http.Request) {
	var input rules.NewRule
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if input.TransactionType == "" || input.SubType == "" {
		writeError(w, http.StatusBadRequest, "transaction_type and sub_type are required")
		return
	}
	if input.ChargeType != domain.ChargeFixed && input.ChargeType != domain.ChargePercentage {
		writeError(w, http.StatusBadRequest, "charge_type must be fixed or percentage")
		return
	}
	if input.ChargeAmount < 0 {
		writeError(w, http.StatusBadRequest, "charge_amount must not be negative")
		return
	}
	if _, ok := domain.LookupCurrency(input.Currency); !ok {
		writeError(w, http.StatusBadRequest, "unsupported currency: "+string(input.Currency))
		return
	}

	rule := h.ruleSvc.Add(input)
	h.archiveRule(rule)
	writeJSON(w, http.StatusCreated, rule)
}

func (h *Handlers) UpdateChargeRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch rules.RulePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if patch.Currency != nil {
		if _, ok := domain.LookupCurrency(*patch.Currency); !ok {
			writeError(w, http.StatusBadRequest, "unsupported currency: "+string(*patch.Currency))
			return
		}
	}
	if patch.ChargeType != nil &&
		*patch.ChargeType != domain.ChargeFixed && *patch.ChargeType != domain.ChargePercentage {
		writeError(w, http.StatusBadRequest, "charge_type must be fixed or percentage")
		return
	}

	rule, found := h.ruleSvc.Update(id, patch)
	if !found {
		writeError(w, http.StatusNotFound, "charge rule not found")
		return
	}
	h.archiveRule(rule)
	writeJSON(w, http.StatusOK, rule)
}

func (h *Handlers) DeleteChargeRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.ruleSvc.Delete(id) {
		writeError(w, http.StatusNotFound, "charge rule not found")
		return
	}
	if h.ruleRepo != nil {
		if err := h.ruleRepo.Delete(id); err != nil {
			log.Printf("[api] WARNING: archive rule delete: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handlers) archiveRule(rule domain.ChargeRule) {
	if h.ruleRepo == nil {
		return
	}
	if err := h.ruleRepo.Save(rule); err != nil {
		log.Printf("[api] WARNING: archive rule: %v", err)
	}
}

// --- ExpectedCharge ---

type expectedChargeRequest struct {
	TransactionType string  `json:"transaction_type"`
	SubType         string  `json:"sub_type"`
	Currency        string  `json:"currency"`
	Amount          float64 `json:"amount"`
}

func (h *Handlers) ExpectedCharge(w http.ResponseWriter, r *http.Request) {
	var req expectedChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	// Unknown currency strings resolve through the same detection used at
	// ingest, falling back to USD.
	currency := ingestion.DetectCurrency(req.Currency)
	expected := h.ruleSvc.ExpectedCharge(req.TransactionType, req.SubType, currency, req.Amount)

	writeJSON(w, http.StatusOK, map[string]any{
		"currency":        currency,
		"expected_charge": expected,
		"formatted":       domain.FormatAmount(expected, currency),
	})
}
