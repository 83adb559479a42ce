package factory

import (
	"time"

	"github.com/paddleclub/ladder/internal/dependencies/mocks"
	"github.com/paddleclub/ladder/internal/storage/memory"
	"github.com/paddleclub/ladder/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MockClock controls "now" for deterministic throttle and decay behavior
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local))

	app := newWithDependencies(store, mockClock, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
