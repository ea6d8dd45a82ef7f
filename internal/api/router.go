package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/billwatch/reconciler/internal/ingestion"
	"github.com/billwatch/reconciler/internal/repository"
	"github.com/billwatch/reconciler/internal/rules"
	"github.com/billwatch/reconciler/internal/store"
)

// NewRouter creates the Chi router with all API routes mounted. The
// repository arguments may be nil, in which case records and rules are not
// archived.
func NewRouter(
	records *store.RecordStore,
	ingestionSvc *ingestion.Service,
	ruleSvc *rules.Service,
	txnRepo *repository.TransactionRepo,
	chargeRepo *repository.ChargeRepo,
	ruleRepo *repository.RuleRepo,
) http.Handler {
	h := &Handlers{
		records:      records,
		ingestionSvc: ingestionSvc,
		ruleSvc:      ruleSvc,
		txnRepo:      txnRepo,
		chargeRepo:   chargeRepo,
		ruleRepo:     ruleRepo,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json"))

	r.Route("/api/v1", func(r chi.Router) {
		// Ingestion.
		r.Post("/uploads", h.Upload)
		r.Delete("/records", h.ClearRecords)

		// Records.
		r.Get("/transactions", h.ListTransactions)
		r.Get("/charges", h.ListCharges)

		// Analysis.
		r.Get("/analysis", h.GetAnalysis)
		r.Get("/discrepancies", h.ListDiscrepancies)

		// Reference data.
		r.Get("/currencies", h.ListCurrencies)
		r.Get("/transaction-types", h.ListTransactionTypes)

		// Charge rules.
		r.Get("/charge-rules", h.ListChargeRules)
		r.Post("/charge-rules", h.CreateChargeRule)
		r.Put("/charge-rules/{id}", h.UpdateChargeRule)
		r.Delete("/charge-rules/{id}", h.DeleteChargeRule)
		r.Post("/charge-rules/expected", h.ExpectedCharge)
	})

	return r
}
