package translator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultLanguagesURL is the Azure global endpoint listing translatable
// languages. It requires no credentials.
const DefaultLanguagesURL = "https://api.cognitive.microsofttranslator.com/languages?api-version=3.0&scope=translation"

const (
	languagesTimeout = 10 * time.Second
	translateTimeout = 30 * time.Second
)

// Error messages are user-facing: handlers return them verbatim in the
// {success:false, error} body.
var (
	ErrNotConfigured = errors.New("Azure Translator service is not configured. Please set the required environment variables.")
	ErrTimeout       = errors.New("Translation request timed out. Please try again.")
)

// Config holds the Azure Translator credentials and endpoints.
type Config struct {
	Key      string
	Endpoint string
	Region   string

	// LanguagesURL overrides DefaultLanguagesURL. Tests point it at a
	// local server.
	LanguagesURL string
}

// IsConfigured reports whether every credential needed for translation
// calls is present.
func (c Config) IsConfigured() bool {
	return c.Key != "" && c.Endpoint != "" && c.Region != ""
}

// Service wraps the Azure Translator API: one-shot translation calls and
// a cached language catalog.
type Service struct {
	cfg           Config
	translateHTTP *resty.Client
	languagesHTTP *resty.Client
	cache         *LanguageCache
}

func New(cfg Config) *Service {
	if cfg.LanguagesURL == "" {
		cfg.LanguagesURL = DefaultLanguagesURL
	}
	return &Service{
		cfg:           cfg,
		translateHTTP: resty.New().SetTimeout(translateTimeout),
		languagesHTTP: resty.New().SetTimeout(languagesTimeout),
		cache:         NewLanguageCache(),
	}
}

// Cache exposes the language cache, mainly so tests can invalidate it.
func (s *Service) Cache() *LanguageCache {
	return s.cache
}

// Result is a successful translation.
type Result struct {
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
}

// azureTranslation mirrors one element of the Azure translate response
// array.
type azureTranslation struct {
	DetectedLanguage struct {
		Language string `json:"language"`
	} `json:"detectedLanguage"`
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Translate issues exactly one round trip to the provider. Callers may
// retry at a higher layer; this method never does.
//
// Failures are classified in order: missing credentials, timeout,
// transport error, unexpected response.
func (s *Service) Translate(ctx context.Context, text, targetLanguage string) (Result, error) {
	if !s.cfg.IsConfigured() {
		return Result{}, ErrNotConfigured
	}

	url := strings.TrimRight(s.cfg.Endpoint, "/") + "/translator/text/v3.0/translate"

	var resp []azureTranslation
	r, err := s.translateHTTP.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"api-version": "3.0",
			"to":          targetLanguage,
		}).
		SetHeader("Ocp-Apim-Subscription-Key", s.cfg.Key).
		SetHeader("Ocp-Apim-Subscription-Region", s.cfg.Region).
		SetHeader("Content-Type", "application/json").
		SetBody([]map[string]string{{"text": text}}).
		SetResult(&resp).
		Post(url)

	if err != nil {
		switch {
		case isTimeout(err):
			return Result{}, ErrTimeout
		case r != nil && r.IsSuccess():
			// 2xx with a body that failed to decode
			return Result{}, fmt.Errorf("Translation failed: %v", err)
		default:
			return Result{}, fmt.Errorf("Translation service error: %v", err)
		}
	}
	if r.IsError() {
		return Result{}, fmt.Errorf("Translation failed: unexpected status %s", r.Status())
	}
	if len(resp) == 0 || len(resp[0].Translations) == 0 {
		return Result{}, errors.New("Translation failed: invalid translation response")
	}

	detected := resp[0].DetectedLanguage.Language
	if detected == "" {
		detected = "auto"
	}

	return Result{
		TranslatedText: resp[0].Translations[0].Text,
		SourceLanguage: detected,
		TargetLanguage: targetLanguage,
	}, nil
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
