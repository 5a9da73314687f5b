package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/plmtools/plm-translator/middleware"
	"github.com/plmtools/plm-translator/models"
	"github.com/plmtools/plm-translator/translator"
	"github.com/plmtools/plm-translator/userinfo"
	"github.com/plmtools/plm-translator/validate"
)

type TranslateHandler struct {
	svc *translator.Service
}

func NewTranslateHandler(svc *translator.Service) *TranslateHandler {
	return &TranslateHandler{svc: svc}
}

// GetLanguages handles GET /languages
func (h *TranslateHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	languages := h.svc.SupportedLanguages(r.Context())

	middleware.JSONResponse(w, http.StatusOK, models.LanguagesResponse{
		Success:   true,
		Languages: languages,
	})
}

// Translate handles POST /translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.FailureResponse(w, http.StatusBadRequest, "No data provided")
		return
	}

	if ok, msg := validate.TranslationRequest(&req); !ok {
		middleware.FailureResponse(w, http.StatusBadRequest, msg)
		return
	}

	text := strings.TrimSpace(req.Text)
	targetLanguage := strings.TrimSpace(req.TargetLanguage)

	result, err := h.svc.Translate(r.Context(), text, targetLanguage)
	if err != nil {
		slog.Error("translation failed", "target", targetLanguage, "error", err)
		middleware.FailureResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TranslateResponse{
		Success:        true,
		TranslatedText: result.TranslatedText,
		SourceLanguage: result.SourceLanguage,
		TargetLanguage: result.TargetLanguage,
	})
}

// GetUser handles GET /azure-user. Lookup failures degrade inside
// userinfo, so this always answers 200.
func (h *TranslateHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	info := userinfo.Current()

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{
		Success:   true,
		User:      info.User,
		Username:  info.Username,
		Computer:  info.Computer,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
