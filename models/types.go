package models

import "time"

// Outcome values as submitted by the review UI. Stored as plain strings,
// not enforced at the database level.
const (
	OutcomeSuccess = "Success"
	OutcomeFailure = "Failure"
)

// Request types

type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// SaveResultRequest carries a test-result submission. Accuracy arrives as
// either a JSON number or a string ("95.5"), so it is decoded loosely and
// parsed by the validator.
type SaveResultRequest struct {
	Outcome        string `json:"outcome"`
	Accuracy       any    `json:"accuracy"`
	Observation    string `json:"observation"`
	TestedBy       string `json:"testedBy"`
	SourceText     string `json:"sourceText"`
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	SessionID      string `json:"sessionId"`
}

// Response types

type TranslateResponse struct {
	Success        bool   `json:"success"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

type LanguagesResponse struct {
	Success   bool       `json:"success"`
	Languages []Language `json:"languages"`
}

type SaveResultResponse struct {
	Success  bool       `json:"success"`
	Message  string     `json:"message"`
	ResultID int64      `json:"result_id"`
	Data     TestResult `json:"data"`
}

type ListResultsResponse struct {
	Success    bool         `json:"success"`
	Data       []TestResult `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

type UserResponse struct {
	Success   bool   `json:"success"`
	User      string `json:"user"`
	Username  string `json:"username"`
	Computer  string `json:"computer"`
	Timestamp string `json:"timestamp"`
}

// FailureResponse is the {success:false, error} body returned by the
// translation and save endpoints on any failure.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorResponse is the bare {error} body used by delete and export.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

// Language is one translatable target language as shown in the picker.
// The sentinel entry {key:"", text:"Select Target Language"} is always first.
type Language struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

// TestResult is one manual translation-quality check.
// ID and CreatedAt are assigned by the store and never change.
type TestResult struct {
	ID              int64     `json:"id"`
	Outcome         string    `json:"outcome"`
	Accuracy        float64   `json:"accuracy"`
	Observation     *string   `json:"observation"`
	TestedBy        *string   `json:"tested_by"`
	TextToTranslate *string   `json:"text_to_translate"`
	TranslatedText  *string   `json:"translated_text"`
	SourceLanguage  *string   `json:"source_language"`
	TargetLanguage  *string   `json:"target_language"`
	SessionID       *string   `json:"session_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// UserInfo describes the local identity reported by /azure-user.
type UserInfo struct {
	User     string
	Username string
	Computer string
}
