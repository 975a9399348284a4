package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// CSVHeader is the header row of a complete input file
const CSVHeader = "document_name;text_original;page_number;comment"

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateTestCSV writes an input file with the standard header followed by
// rows and returns its path
func CreateTestCSV(t *testing.T, rows ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.csv")
	content := CSVHeader + "\n" + strings.Join(rows, "\n")
	if len(rows) > 0 {
		content += "\n"
	}
	CreateTestFile(t, path, []byte(content))

	return path
}

// TranslationServer is a fake translation endpoint
type TranslationServer struct {
	*httptest.Server

	// Requests counts received translation requests
	Requests atomic.Int64
}

// NewTranslationServer starts a fake endpoint that answers each form field q
// with translations[q] as plain text. Texts listed in failures get a 500,
// texts listed in delays are answered after the given duration and unknown
// texts are echoed back upper-cased.
func NewTranslationServer(t *testing.T, translations map[string]string, failures []string, delays map[string]time.Duration) *TranslationServer {
	t.Helper()

	failing := make(map[string]bool, len(failures))
	for _, text := range failures {
		failing[text] = true
	}

	ts := &TranslationServer{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.Requests.Add(1)

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		text := r.PostForm.Get("q")
		if d, ok := delays[text]; ok {
			time.Sleep(d)
		}
		if failing[text] {
			http.Error(w, "translation failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if translation, ok := translations[text]; ok {
			w.Write([]byte(translation))
			return
		}
		w.Write([]byte(strings.ToUpper(text)))
	}))
	t.Cleanup(ts.Close)

	return ts
}

// Endpoint returns the translation URL of the fake server
func (ts *TranslationServer) Endpoint() string {
	return ts.URL + "/translate"
}
