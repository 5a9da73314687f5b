package translator

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func configured(endpoint string) Config {
	return Config{
		Key:      "test-key",
		Endpoint: endpoint,
		Region:   "westeurope",
	}
}

func TestTranslate_Success(t *testing.T) {
	var gotPath, gotTo, gotKey, gotRegion string
	var gotBody string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTo = r.URL.Query().Get("to")
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotRegion = r.Header.Get("Ocp-Apim-Subscription-Region")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"detectedLanguage":{"language":"en","score":1.0},"translations":[{"text":"Bonjour","to":"fr"}]}]`))
	}))
	defer srv.Close()

	svc := New(configured(srv.URL))
	result, err := svc.Translate(context.Background(), "Hello", "fr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TranslatedText != "Bonjour" {
		t.Errorf("expected Bonjour, got %q", result.TranslatedText)
	}
	if result.SourceLanguage != "en" {
		t.Errorf("expected detected language en, got %q", result.SourceLanguage)
	}
	if result.TargetLanguage != "fr" {
		t.Errorf("expected target fr, got %q", result.TargetLanguage)
	}

	if gotPath != "/translator/text/v3.0/translate" {
		t.Errorf("unexpected request path %q", gotPath)
	}
	if gotTo != "fr" {
		t.Errorf("expected to=fr, got %q", gotTo)
	}
	if gotKey != "test-key" || gotRegion != "westeurope" {
		t.Errorf("auth headers not set: key=%q region=%q", gotKey, gotRegion)
	}
	if !strings.Contains(gotBody, `"text":"Hello"`) {
		t.Errorf("expected one-element text array body, got %q", gotBody)
	}
}

func TestTranslate_MissingDetectedLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"translations":[{"text":"Hola","to":"es"}]}]`))
	}))
	defer srv.Close()

	svc := New(configured(srv.URL))
	result, err := svc.Translate(context.Background(), "Hello", "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SourceLanguage != "auto" {
		t.Errorf("expected source language to default to auto, got %q", result.SourceLanguage)
	}
}

func TestTranslate_NotConfigured(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no key", Config{Endpoint: srv.URL, Region: "westeurope"}},
		{"no endpoint", Config{Key: "k", Region: "westeurope"}},
		{"no region", Config{Key: "k", Endpoint: srv.URL}},
		{"nothing", Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(tt.cfg)
			_, err := svc.Translate(context.Background(), "Hello", "fr")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "not configured") {
				t.Errorf("expected a not-configured error, got %q", err)
			}
		})
	}

	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected zero network calls, got %d", calls)
	}
}

func TestTranslate_InvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"missing translations", `[{"detectedLanguage":{"language":"en"}}]`},
		{"empty translations", `[{"translations":[]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc := New(configured(srv.URL))
			_, err := svc.Translate(context.Background(), "Hello", "fr")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "Translation failed") {
				t.Errorf("expected a translation-failed error, got %q", err)
			}
		})
	}
}

func TestTranslate_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":401000,"message":"denied"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := New(configured(srv.URL))
	_, err := svc.Translate(context.Background(), "Hello", "fr")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Translation failed") {
		t.Errorf("expected a translation-failed error, got %q", err)
	}
}

func TestTranslate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close() // connection refused from here on

	svc := New(configured(endpoint))
	_, err := svc.Translate(context.Background(), "Hello", "fr")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Translation service error") {
		t.Errorf("expected a transport error, got %q", err)
	}
}
