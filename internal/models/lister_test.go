package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"
)

func newModelsServer(t *testing.T, ids ...string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models") {
			http.NotFound(w, r)
			return
		}

		var data []string
		for _, id := range ids {
			data = append(data, `{"id":"`+id+`","object":"model","owned_by":"openai"}`)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[` + strings.Join(data, ",") + `]}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", "")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestChatModels(t *testing.T) {
	server := newModelsServer(t, "tts-1", "gpt-4o-mini", "dall-e-3", "gpt-4o", "whisper-1", "gpt-4o-audio-preview", "o3-mini")
	lister := NewLister("test-api-key", server.URL+"/v1")

	got, err := lister.ChatModels(context.Background())
	if err != nil {
		t.Fatalf("ChatModels() error = %v", err)
	}

	want := []string{"gpt-4o", "gpt-4o-mini", "o3-mini"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChatModels() = %v, want %v", got, want)
	}
}

func TestListAvailableModels(t *testing.T) {
	server := newModelsServer(t, "gpt-4o-mini")
	lister := NewLister("test-api-key", server.URL+"/v1")

	var buf bytes.Buffer
	if err := lister.ListAvailableModels(context.Background(), &buf); err != nil {
		t.Fatalf("ListAvailableModels() error = %v", err)
	}

	if !strings.Contains(buf.String(), "  gpt-4o-mini\n") {
		t.Errorf("Expected model in output, got %q", buf.String())
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	if !strings.HasPrefix(err.Error(), "OpenAI API key not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	// Skip if no API key
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	var buf bytes.Buffer
	if err := NewLister(apiKey, "").ListAvailableModels(context.Background(), &buf); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
