package router

import (
	"database/sql"
	"net/http"

	"github.com/plmtools/plm-translator/cliparse"
	"github.com/plmtools/plm-translator/handlers"
	"github.com/plmtools/plm-translator/middleware"
	"github.com/plmtools/plm-translator/store"
	"github.com/plmtools/plm-translator/translator"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize services and handlers
	svc := translator.New(translator.Config{
		Key:      cfg.TranslatorKey,
		Endpoint: cfg.TranslatorEndpoint,
		Region:   cfg.TranslatorRegion,
	})
	st := store.New(db, cfg.DatabaseType)

	translateHandler := handlers.NewTranslateHandler(svc)
	resultsHandler := handlers.NewResultsHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Translation surface
	mux.HandleFunc("GET /languages", middleware.WithLogging(translateHandler.GetLanguages))
	mux.HandleFunc("POST /translate", middleware.WithLogging(translateHandler.Translate))
	mux.HandleFunc("GET /azure-user", middleware.WithLogging(translateHandler.GetUser))

	// Test-result persistence
	mux.HandleFunc("POST /save-test-results", middleware.WithLogging(resultsHandler.SaveTestResults))
	mux.HandleFunc("GET /test-results", middleware.WithLogging(resultsHandler.GetTestResults))
	mux.HandleFunc("GET /export-test-results", middleware.WithLogging(resultsHandler.ExportTestResults))
	mux.HandleFunc("DELETE /test-results/{id}", middleware.WithLogging(resultsHandler.DeleteTestResult))

	// Exact root only, so unknown paths 404 and wrong methods 405
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("PLM Translator API v1"))
	})

	return mux
}
