package main

import (
	"log"
	"net/http"
	"os"

	"github.com/billwatch/reconciler/internal/api"
	"github.com/billwatch/reconciler/internal/ingestion"
	"github.com/billwatch/reconciler/internal/repository"
	"github.com/billwatch/reconciler/internal/rules"
	"github.com/billwatch/reconciler/internal/store"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "billwatch.db"
	}

	log.Printf("Initializing archive database at %s", dbPath)
	db, err := repository.InitDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to init DB: %v", err)
	}
	defer db.Close()

	// Archive repositories (write-through; the engine never reads them).
	txnRepo := repository.NewTransactionRepo(db)
	chargeRepo := repository.NewChargeRepo(db)
	ruleRepo := repository.NewRuleRepo(db)

	// Engine state and services.
	records := store.NewRecordStore()
	ingestionSvc := ingestion.NewService(records)
	ruleSvc := rules.NewServiceWithDefaults()
	log.Printf("Seeded %d default charge rules", len(ruleSvc.Rules()))

	router := api.NewRouter(records, ingestionSvc, ruleSvc, txnRepo, chargeRepo, ruleRepo)

	log.Printf("BillWatch Billing Reconciliation Service")
	log.Printf("Listening on http://localhost:%s", port)
	log.Printf("API base: http://localhost:%s/api/v1", port)
	log.Printf("")
	log.Printf("Endpoints:")
	log.Printf("  POST   /api/v1/uploads")
	log.Printf("  DELETE /api/v1/records")
	log.Printf("  GET    /api/v1/transactions")
	log.Printf("  GET    /api/v1/charges")
	log.Printf("  GET    /api/v1/analysis")
	log.Printf("  GET    /api/v1/discrepancies")
	log.Printf("  GET    /api/v1/currencies")
	log.Printf("  GET    /api/v1/transaction-types")
	log.Printf("  GET    /api/v1/charge-rules")
	log.Printf("  POST   /api/v1/charge-rules")
	log.Printf("  PUT    /api/v1/charge-rules/{id}")
	log.Printf("  DELETE /api/v1/charge-rules/{id}")
	log.Printf("  POST   /api/v1/charge-rules/expected")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
