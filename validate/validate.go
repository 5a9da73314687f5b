package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/plmtools/plm-translator/models"
)

// MaxTranslationChars is the longest text (in characters, not bytes)
// accepted by the translate endpoint.
const MaxTranslationChars = 5000

// TranslationRequest checks a translation payload. Checks run in order;
// the first failing check's message is returned.
func TranslationRequest(req *models.TranslateRequest) (bool, string) {
	if req == nil {
		return false, "No data provided"
	}

	sourceText := strings.TrimSpace(req.Text)
	targetLanguage := strings.TrimSpace(req.TargetLanguage)

	if sourceText == "" {
		return false, "Please enter text to translate"
	}
	if targetLanguage == "" {
		return false, "Please select a target language"
	}
	if utf8.RuneCountInString(sourceText) > MaxTranslationChars {
		return false, "Text is too long. Maximum 5000 characters allowed."
	}

	return true, ""
}

// TestResultData checks a test-result payload and returns the parsed
// accuracy on success. Outcome and accuracy are required; an accuracy of
// exactly zero or an empty string fails the required check, matching the
// submission form's semantics.
func TestResultData(req *models.SaveResultRequest) (bool, string, float64) {
	if req == nil {
		return false, "No data provided", 0
	}

	if req.Outcome == "" {
		return false, "Outcome is required", 0
	}
	if isFalsy(req.Accuracy) {
		return false, "Accuracy is required", 0
	}

	accuracy, ok := parseAccuracy(req.Accuracy)
	if !ok {
		return false, "Accuracy must be a valid number", 0
	}
	if accuracy < 0 || accuracy > 100 {
		return false, "Accuracy must be between 0 and 100", 0
	}

	return true, "", accuracy
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case float64:
		return x == 0
	case json.Number:
		return x.String() == "0" || x.String() == ""
	default:
		return false
	}
}

func parseAccuracy(v any) (float64, bool) {
	var f float64
	var err error

	switch x := v.(type) {
	case float64:
		f = x
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
	case json.Number:
		f, err = x.Float64()
		if err != nil {
			return 0, false
		}
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
