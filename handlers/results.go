package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/plmtools/plm-translator/export"
	"github.com/plmtools/plm-translator/middleware"
	"github.com/plmtools/plm-translator/models"
	"github.com/plmtools/plm-translator/store"
	"github.com/plmtools/plm-translator/validate"
)

type ResultsHandler struct {
	store *store.Store
}

func NewResultsHandler(st *store.Store) *ResultsHandler {
	return &ResultsHandler{store: st}
}

// SaveTestResults handles POST /save-test-results
func (h *ResultsHandler) SaveTestResults(w http.ResponseWriter, r *http.Request) {
	var req models.SaveResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.FailureResponse(w, http.StatusBadRequest, "No data provided")
		return
	}

	ok, msg, accuracy := validate.TestResultData(&req)
	if !ok {
		middleware.FailureResponse(w, http.StatusBadRequest, msg)
		return
	}

	sourceLanguage := req.SourceLanguage
	if sourceLanguage == "" {
		sourceLanguage = "auto"
	}

	rec := models.TestResult{
		Outcome:         req.Outcome,
		Accuracy:        accuracy,
		Observation:     optional(req.Observation),
		TestedBy:        optional(req.TestedBy),
		TextToTranslate: optional(req.SourceText),
		TranslatedText:  optional(req.TranslatedText),
		SourceLanguage:  &sourceLanguage,
		TargetLanguage:  optional(req.TargetLanguage),
		SessionID:       optional(req.SessionID),
	}

	if err := h.store.Save(r.Context(), &rec); err != nil {
		slog.Error("failed to save test result", "error", err)
		middleware.FailureResponse(w, http.StatusInternalServerError, "Failed to save test results: "+err.Error())
		return
	}

	slog.Info("test result saved", "result_id", rec.ID, "outcome", rec.Outcome)

	middleware.JSONResponse(w, http.StatusOK, models.SaveResultResponse{
		Success:  true,
		Message:  "Test results saved successfully to database",
		ResultID: rec.ID,
		Data:     rec,
	})
}

// GetTestResults handles GET /test-results
func (h *ResultsHandler) GetTestResults(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 10)
	outcome := r.URL.Query().Get("outcome")

	items, pagination, err := h.store.List(r.Context(), page, perPage, outcome)
	if err != nil {
		slog.Error("failed to list test results", "error", err)
		middleware.FailureResponse(w, http.StatusInternalServerError, "Failed to retrieve test results: "+err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResultsResponse{
		Success:    true,
		Data:       items,
		Pagination: pagination,
	})
}

// ExportTestResults handles GET /export-test-results
func (h *ResultsHandler) ExportTestResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.All(r.Context())
	if err != nil {
		slog.Error("failed to load test results for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	data, err := export.Workbook(results)
	if errors.Is(err, export.ErrNoResults) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No test results to export")
		return
	}
	if err != nil {
		slog.Error("failed to build export workbook", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("test_results_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)

	slog.Info("test results exported", "rows", len(results), "filename", filename)
}

// DeleteTestResult handles DELETE /test-results/{id}
func (h *ResultsHandler) DeleteTestResult(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Test result not found")
		return
	}

	err = h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Test result not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete test result", "result_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	slog.Info("test result deleted", "result_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Test result deleted successfully",
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// queryInt reads an integer query parameter, keeping the default when
// the parameter is absent or not a number.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
