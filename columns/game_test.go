package columns

import "testing"

// drive sends n manual ticks and drains the update notifications.
func drive(g *Game, ticker *MockTicker, n int) {
	for range n {
		ticker.Tick()
		<-g.UpdateCh
	}
}

// ticksToSpawn is the number of ticks before the first triplet appears
// on an empty field: the fall counter has to reach the limit once.
const ticksToSpawn = DefaultFallLimit + 1

func TestGameStartResetsTicker(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(0), Options{})
	g.Start()
	defer g.Stop()
	drive(g, ticker, 1)

	if !ticker.IsReset() {
		t.Error("Start() must reset the ticker to the tick interval")
	}
}

func TestGameStopStopsTicker(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(0), Options{})
	g.Start()
	g.Stop()

	if !ticker.IsStop() {
		t.Error("Stop() must stop the ticker")
	}
}

func TestGameSpawnsAfterFallInterval(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(1, 2, 3), Options{})
	g.Start()
	defer g.Stop()

	drive(g, ticker, ticksToSpawn-1)
	if got := len(g.Read().Field.CoordsMatching(isDescending)); got != 0 {
		t.Fatalf("%d descending cells before the fall interval elapsed", got)
	}

	drive(g, ticker, 1)
	snap := g.Read()
	if got := len(snap.Field.CoordsMatching(isDescending)); got != TripletSize {
		t.Fatalf("%d descending cells after spawn, want %d", got, TripletSize)
	}
	for y := range TripletSize {
		if cell := snap.Field.At(SpawnColumn, y); cell.Color != y+1 {
			t.Errorf("spawn cell (%d,%d) color = %d, want %d", SpawnColumn, y, cell.Color, y+1)
		}
	}
}

func TestGameActions(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		check  func(t *testing.T, s *Snapshot)
	}{
		{
			name:   "shift left",
			action: ShiftLeft,
			check: func(t *testing.T, s *Snapshot) {
				if !s.Field.At(SpawnColumn-1, 0).Occupied {
					t.Error("triplet did not move left")
				}
			},
		},
		{
			name:   "shift right",
			action: ShiftRight,
			check: func(t *testing.T, s *Snapshot) {
				if !s.Field.At(SpawnColumn+1, 0).Occupied {
					t.Error("triplet did not move right")
				}
			},
		},
		{
			name:   "cycle colors",
			action: CycleColors,
			check: func(t *testing.T, s *Snapshot) {
				if got := s.Field.At(SpawnColumn, 0).Color; got != 2 {
					t.Errorf("top color after one cycle = %d, want 2", got)
				}
			},
		},
		{
			name:   "drop",
			action: Drop,
			check: func(t *testing.T, s *Snapshot) {
				if got := len(s.Field.CoordsMatching(isDescending)); got != 0 {
					t.Errorf("%d cells still descending after drop", got)
				}
				if got := len(s.Field.CoordsMatching(isFalling)); got != TripletSize {
					t.Errorf("%d cells falling after drop, want %d", got, TripletSize)
				}
			},
		},
		{
			name:   "pause",
			action: TogglePause,
			check: func(t *testing.T, s *Snapshot) {
				if s.State != Pause {
					t.Errorf("State = %v, want Pause", s.State)
				}
			},
		},
		{
			name:   "restart",
			action: Restart,
			check: func(t *testing.T, s *Snapshot) {
				if s.State != Play || *s.Field != (Field{}) {
					t.Error("restart must clear the field and return to Play")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, ticker := NewTestGame(NewScriptedColors(1, 2, 3), Options{})
			g.Start()
			defer g.Stop()
			drive(g, ticker, ticksToSpawn)

			g.Action(tt.action)
			<-g.UpdateCh
			tt.check(t, g.Read())
		})
	}
}

func TestGameOver(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(0), Options{})
	g.Start()
	defer g.Stop()

	g.mu.Lock()
	g.cols.Field.Set(SpawnColumn, 0, stationaryCell(0))
	g.mu.Unlock()

	drive(g, ticker, ticksToSpawn)
	select {
	case <-g.GameOverCh:
	default:
		t.Fatal("blocked spawn must announce game over")
	}
	if got := g.Read().State; got != Over {
		t.Errorf("State = %v, want Over", got)
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(0), Options{})
	g.Start()
	defer g.Stop()

	g.mu.Lock()
	g.cols.State = Over
	g.cols.Score = 7
	g.mu.Unlock()

	g.Action(Restart)
	<-g.UpdateCh

	snap := g.Read()
	if snap.State != Play || snap.Score != 0 {
		t.Errorf("State = %v, Score = %d after restart, want Play and 0", snap.State, snap.Score)
	}
	drive(g, ticker, ticksToSpawn)
	if got := len(g.Read().Field.CoordsMatching(isDescending)); got != TripletSize {
		t.Errorf("%d descending cells after restart, want a fresh triplet", got)
	}
}

func TestGameAdvice(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(2), Options{AI: true})
	g.Start()
	defer g.Stop()

	drive(g, ticker, ticksToSpawn)
	snap := g.Read()
	if snap.Advice == nil {
		t.Fatal("AI option must produce advice for the spawned triplet")
	}

	// an all-same triplet scores in any column, so the advisor keeps
	// the first one
	if snap.Advice.Column != 0 {
		t.Errorf("advised column = %d, want 0", snap.Advice.Column)
	}

	g.Action(Drop)
	<-g.UpdateCh
	if g.Read().Advice != nil {
		t.Error("advice must be withdrawn once the triplet is released")
	}
}

func TestGameAdviceOffByDefault(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(2), Options{})
	g.Start()
	defer g.Stop()

	drive(g, ticker, ticksToSpawn)
	if g.Read().Advice != nil {
		t.Error("advice must stay empty without the AI option")
	}
}

func TestGameReadIsACopy(t *testing.T) {
	g, ticker := NewTestGame(NewScriptedColors(1, 2, 3), Options{})
	g.Start()
	defer g.Stop()
	drive(g, ticker, ticksToSpawn)

	snap := g.Read()
	snap.Field.Set(0, 0, stationaryCell(5))
	if g.Read().Field.At(0, 0).Occupied {
		t.Error("mutating a snapshot leaked into the live game")
	}
}
