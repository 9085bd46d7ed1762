package columns

import (
	"sync"
	"time"
)

// MockTicker is a manually driven implementation of the Ticker
// interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// ScriptedColors is a ColorSource that replays a fixed list of colors,
// cycling when it runs out. Deterministic fixtures for tests.
type ScriptedColors struct {
	colors []int
	next   int
}

func NewScriptedColors(colors ...int) *ScriptedColors {
	return &ScriptedColors{colors: colors}
}

func (s *ScriptedColors) Next() int {
	c := s.colors[s.next%len(s.colors)]
	s.next++
	return c
}

// NewTestGame returns a game driven by a manual ticker.
func NewTestGame(colors ColorSource, opts Options) (*Game, *MockTicker) {
	ticker := NewMockTicker()
	return NewConfigurableGame(ticker, colors, opts), ticker
}

// stationaryCell is a settled block fixture.
func stationaryCell(color int) Cell {
	return Cell{Occupied: true, Color: color, Phase: Stationary}
}

// descendingCell is an active-triplet block fixture.
func descendingCell(color int) Cell {
	return Cell{Occupied: true, Color: color, Phase: Descending}
}
