package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/astralfront/supremacy/internal/dependencies/mocks"
	"github.com/astralfront/supremacy/internal/services/credential"
	"github.com/astralfront/supremacy/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, testCredentialConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// testCredentialConfig uses cheap argon2 parameters so tests that hash
// many passwords stay fast
func testCredentialConfig() credential.Config {
	cfg := credential.DefaultConfig()
	cfg.ArgonMemory = 8 * 1024
	cfg.ArgonThreads = 1
	return cfg
}
