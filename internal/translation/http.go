package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrNotText is returned when the endpoint answers with a body that is not UTF-8 text
var ErrNotText = errors.New("response body is not text")

// HTTPTranslator posts form encoded requests to a LibreTranslate style
// endpoint. The language pair is fixed at construction.
type HTTPTranslator struct {
	endpoint string
	source   string
	target   string
	client   *http.Client

	unwrapJSON bool
}

// NewHTTPTranslator creates a translator for endpoint. A nil client uses
// http.DefaultClient.
func NewHTTPTranslator(endpoint, source, target string, client *http.Client) *HTTPTranslator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTranslator{
		endpoint: endpoint,
		source:   source,
		target:   target,
		client:   client,
	}
}

// SetUnwrapJSON makes Translate return the translatedText field of a
// LibreTranslate JSON reply instead of the raw body
func (t *HTTPTranslator) SetUnwrapJSON(unwrap bool) {
	t.unwrapJSON = unwrap
}

// Translate sends text with the fixed source and target language codes and
// returns the response body as the translation
func (t *HTTPTranslator) Translate(ctx context.Context, text string) (string, error) {
	form := url.Values{}
	form.Set("q", text)
	form.Set("source", t.source)
	form.Set("target", t.target)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("translation endpoint returned %s", resp.Status)
	}

	if !utf8.Valid(body) {
		return "", ErrNotText
	}

	if t.unwrapJSON {
		return extractTranslation(body), nil
	}
	return string(body), nil
}

// extractTranslation unwraps LibreTranslate's JSON reply
// {"translatedText": "..."}; any other body is the translation itself.
func extractTranslation(body []byte) string {
	var reply struct {
		TranslatedText *string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &reply); err == nil && reply.TranslatedText != nil {
		return *reply.TranslatedText
	}
	return string(body)
}
