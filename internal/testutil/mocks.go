package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockTranslator mocks a translation backend. It is safe for concurrent use.
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Delays       map[string]time.Duration
	// Delay applies to every text without an entry in Delays
	Delay time.Duration

	mu          sync.Mutex
	calls       []string
	inFlight    int
	maxInFlight int
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.inFlight--
		m.mu.Unlock()
	}()

	delay := m.Delay
	if d, ok := m.Delays[text]; ok {
		delay = d
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// Calls returns the texts passed to Translate in call order
func (m *MockTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MaxInFlight returns the highest number of concurrent Translate calls seen
func (m *MockTranslator) MaxInFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxInFlight
}
