package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/plmtools/plm-translator/models"
)

// LanguageCache holds the fetched language catalog for the process
// lifetime. Safe for concurrent readers; a duplicate fetch on a cold
// start is tolerated since the result is identical.
type LanguageCache struct {
	mu        sync.RWMutex
	languages []models.Language
}

func NewLanguageCache() *LanguageCache {
	return &LanguageCache{}
}

func (c *LanguageCache) Get() ([]models.Language, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages, c.languages != nil
}

func (c *LanguageCache) Set(languages []models.Language) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.languages = languages
}

func (c *LanguageCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.languages = nil
}

// SupportedLanguages returns the language catalog: the sentinel entry
// followed by all translatable languages sorted by display name.
//
// The first successful fetch is cached forever. Every failure degrades
// to the fallback list without caching it, so the next call re-attempts
// the fetch. Never returns an error to the caller.
func (s *Service) SupportedLanguages(ctx context.Context) []models.Language {
	if languages, ok := s.cache.Get(); ok {
		return languages
	}

	languages, err := s.fetchLanguages(ctx)
	if err != nil {
		slog.Error("failed to load languages from API", "error", err)
		return fallbackLanguages()
	}

	s.cache.Set(languages)
	return languages
}

func (s *Service) fetchLanguages(ctx context.Context) ([]models.Language, error) {
	var resp struct {
		Translation map[string]struct {
			Name string `json:"name"`
		} `json:"translation"`
	}

	r, err := s.languagesHTTP.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&resp).
		Get(s.cfg.LanguagesURL)
	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, fmt.Errorf("languages request failed: %s", r.Status())
	}
	if resp.Translation == nil {
		return nil, errors.New("invalid API response structure")
	}

	languages := make([]models.Language, 0, len(resp.Translation)+1)
	languages = append(languages, sentinel())
	for code, entry := range resp.Translation {
		name := entry.Name
		if name == "" {
			name = code
		}
		languages = append(languages, models.Language{Key: code, Text: name})
	}

	// Plain code-point ordering on display names, sentinel stays first
	rest := languages[1:]
	sort.Slice(rest, func(i, j int) bool { return rest[i].Text < rest[j].Text })

	return languages, nil
}

func sentinel() models.Language {
	return models.Language{Key: "", Text: "Select Target Language"}
}

// fallbackLanguages is the fixed catalog served when the provider is
// unreachable.
func fallbackLanguages() []models.Language {
	return []models.Language{
		sentinel(),
		{Key: "ar", Text: "Arabic"},
		{Key: "zh", Text: "Chinese (Simplified)"},
		{Key: "da", Text: "Danish"},
		{Key: "nl", Text: "Dutch"},
		{Key: "fi", Text: "Finnish"},
		{Key: "fr", Text: "French"},
		{Key: "de", Text: "German"},
		{Key: "hi", Text: "Hindi"},
		{Key: "it", Text: "Italian"},
		{Key: "ja", Text: "Japanese"},
		{Key: "ko", Text: "Korean"},
		{Key: "no", Text: "Norwegian"},
		{Key: "pl", Text: "Polish"},
		{Key: "pt", Text: "Portuguese"},
		{Key: "ru", Text: "Russian"},
		{Key: "es", Text: "Spanish"},
		{Key: "sv", Text: "Swedish"},
		{Key: "th", Text: "Thai"},
		{Key: "tr", Text: "Turkish"},
	}
}
