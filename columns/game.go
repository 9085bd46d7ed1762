package columns

import (
	"sync"
	"time"
)

// Action is a primitive player intent applied between ticks.
type Action string

const (
	ShiftLeft   Action = "left"    // Shifts the triplet one column left.
	ShiftRight  Action = "right"   // Shifts the triplet one column right.
	CycleColors Action = "rotate"  // Cycles the triplet's colors.
	Drop        Action = "drop"    // Releases the triplet to gravity.
	TogglePause Action = "pause"   // Pauses or resumes the game.
	Restart     Action = "restart" // Clears everything, back to Play.
)

// tickInterval is the fixed driver rate. Speed changes come from the
// core's fall limit, never from the ticker.
const tickInterval = time.Second / 60

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// Options is threaded explicitly into the driver; there is no
// package-level options state.
type Options struct {
	// AI computes an advised move for every spawned triplet and
	// exposes it on the snapshot.
	AI bool
	// ShowShadows lets the UI draw where the triplet would land.
	ShowShadows bool
}

// Snapshot is a copy of the game state that is safe to read while the
// game keeps running.
type Snapshot struct {
	Field      *Field
	Score      int
	FallLimit  int
	State      State
	ColorStats [ColorCount]int
	// Advice is the advised move for the current triplet, when the AI
	// option is on and a triplet is active.
	Advice *Move
}

// Game drives a Columns simulation at a fixed tick rate and applies
// player actions atomically between ticks.
type Game struct {
	UpdateCh   chan bool
	GameOverCh chan bool

	actionCh chan Action
	doneCh   chan bool
	cols     *Columns
	colors   ColorSource
	opts     Options
	ticker   Ticker
	advice   *Move
	mu       sync.RWMutex
}

func NewGame(colors ColorSource, opts Options) *Game {
	return NewConfigurableGame(newWrappedTicker(time.Hour), colors, opts)
}

func NewConfigurableGame(ticker Ticker, colors ColorSource, opts Options) *Game {
	return &Game{
		UpdateCh:   make(chan bool, 1),
		GameOverCh: make(chan bool, 1),
		actionCh:   make(chan Action),
		doneCh:     make(chan bool, 1),
		cols:       NewColumns(),
		colors:     colors,
		opts:       opts,
		ticker:     ticker,
	}
}

func (g *Game) Start() {
	g.mu.Lock()
	g.cols.Restart()
	g.advice = nil
	g.mu.Unlock()
	go g.listen()
}

func (g *Game) Stop() {
	g.ticker.Stop()
	g.doneCh <- true
}

func (g *Game) Action(a Action) {
	g.actionCh <- a
}

// Read returns a snapshot of the current game state that is safe to
// read concurrently with the driver.
func (g *Game) Read() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := &Snapshot{
		Field:      g.cols.Field.Clone(),
		Score:      g.cols.Score,
		FallLimit:  g.cols.FallLimit,
		State:      g.cols.State,
		ColorStats: g.cols.ColorStats,
	}
	if g.advice != nil {
		m := *g.advice
		s.Advice = &m
	}
	return s
}

func (g *Game) listen() {
	g.ticker.Reset(tickInterval)
	for {
		select {
		case <-g.ticker.C():
			g.mu.Lock()
			g.tick()
		case a := <-g.actionCh:
			g.mu.Lock()
			g.apply(a)
		case <-g.doneCh:
			return
		}
		g.mu.Unlock()
		// update notifications coalesce; a slow reader never stalls the
		// driver
		select {
		case g.UpdateCh <- true:
		default:
		}
	}
}

func (g *Game) tick() {
	res := g.cols.Tick()
	if !res.SpawnNeeded {
		return
	}
	if !g.cols.SpawnTriplet(g.colors) {
		g.advice = nil
		g.GameOverCh <- true
		return
	}
	g.advice = nil
	if g.opts.AI {
		if m, ok := BestMove(g.cols.Field); ok {
			g.advice = &m
		}
	}
}

func (g *Game) apply(a Action) {
	switch a {
	case ShiftLeft:
		g.cols.TryShift(DirLeft)
	case ShiftRight:
		g.cols.TryShift(DirRight)
	case CycleColors:
		g.cols.Rotate(1)
	case Drop:
		g.cols.ReleaseToGravity()
		g.advice = nil
	case TogglePause:
		g.cols.TogglePause()
	case Restart:
		g.cols.Restart()
		g.advice = nil
	}
}
