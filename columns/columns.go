package columns

import (
	"math/rand/v2"
	"slices"
)

// State is the coarse game state the driver steers by.
type State int

const (
	Play State = iota
	Pause
	// Over is terminal: only Restart leaves it.
	Over
)

// Direction of a horizontal shift.
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// ColorSource produces uniform color indexes in [0, ColorCount).
type ColorSource interface {
	Next() int
}

type pcgColors struct {
	rng *rand.Rand
}

// NewColorSource returns a deterministic ColorSource seeded with the
// two halves of a 128-bit seed, so a game can be replayed exactly.
func NewColorSource(hi, lo uint64) ColorSource {
	return &pcgColors{rng: rand.New(rand.NewPCG(hi, lo))}
}

func (p *pcgColors) Next() int { return p.rng.IntN(ColorCount) }

// TickResult reports what a single tick did.
type TickResult struct {
	// SpawnNeeded means no triplet is active and no run scored: the
	// driver should spawn the next triplet.
	SpawnNeeded bool
	// ScoreDelta is the number of points awarded by runs found this
	// tick.
	ScoreDelta int
}

// Columns holds the full simulation state of one game.
type Columns struct {
	Field      *Field
	Score      int
	FallLimit  int
	ColorStats [ColorCount]int
	State      State

	fallCounter int
}

func NewColumns() *Columns {
	return &Columns{Field: NewField(), FallLimit: DefaultFallLimit}
}

// Tick advances the field by one state-machine step, in strict
// priority: disappearing countdowns first, then free-falling blocks,
// then the descending triplet on its fall-counter schedule. Cascade
// steps force the counter to its limit so the next tick continues
// immediately instead of waiting a full fall interval.
func (c *Columns) Tick() TickResult {
	var res TickResult
	if c.State != Play {
		return res
	}

	if disappearing := c.Field.CoordsMatching(isDisappearing); len(disappearing) > 0 {
		c.Field.stepDisappearing(disappearing)
		c.fallCounter = c.FallLimit
		return res
	}
	if falling := c.Field.CoordsMatching(isFalling); len(falling) > 0 {
		c.Field.stepDown(falling)
		c.fallCounter = c.FallLimit
		return res
	}

	if c.fallCounter == c.FallLimit {
		c.fallCounter = 0
		descending := c.Field.CoordsMatching(isDescending)
		c.Field.stepDown(descending)
		if len(descending) == 0 {
			before := c.Score / speedupDivisor
			res.ScoreDelta = c.Field.markQualifying()
			if res.ScoreDelta > 0 {
				c.Score += res.ScoreDelta
				if c.FallLimit > 1 && c.Score/speedupDivisor > before {
					c.FallLimit--
				}
				c.fallCounter = c.FallLimit - 1
			} else {
				res.SpawnNeeded = true
			}
		}
	}
	c.fallCounter++
	return res
}

// TryShift moves the descending triplet one column over. The shift is
// all-or-nothing: it succeeds only when every descending cell has an
// empty in-bounds neighbor on that side.
func (c *Columns) TryShift(dir Direction) bool {
	if c.State != Play {
		return false
	}
	descending := c.Field.CoordsMatching(isDescending)
	if len(descending) == 0 {
		return false
	}
	dx := int(dir)
	for _, p := range descending {
		nx := p.X + dx
		if nx < 0 || nx >= Width || c.Field.At(nx, p.Y).Occupied {
			return false
		}
	}
	for _, p := range descending {
		c.Field.Swap(p.X, p.Y, p.X+dx, p.Y)
	}
	return true
}

// Rotate cycles the colors of the descending cells times steps. The
// ring runs in grid scan order (top to bottom for a vertical triplet)
// and the front color moves to the back on each step. Positions never
// change.
func (c *Columns) Rotate(times int) {
	if c.State != Play {
		return
	}
	c.Field.rotateDescending(times)
}

// ReleaseToGravity hands the descending triplet over to free fall. The
// player has no further control over it.
func (c *Columns) ReleaseToGravity() {
	if c.State != Play {
		return
	}
	c.Field.releaseDescending()
}

// SpawnTriplet writes a new descending triplet into the top of the
// spawn column. It returns false, and moves the game to Over, when any
// of the spawn cells is blocked; the field is left untouched then.
func (c *Columns) SpawnTriplet(src ColorSource) bool {
	for y := range TripletSize {
		if c.Field.At(SpawnColumn, y).Occupied {
			c.State = Over
			return false
		}
	}
	for y := range TripletSize {
		color := src.Next()
		c.ColorStats[color]++
		c.Field.Set(SpawnColumn, y, Cell{Occupied: true, Color: color, Phase: Descending})
	}
	return true
}

// TogglePause flips between Play and Pause. A finished game stays Over.
func (c *Columns) TogglePause() {
	switch c.State {
	case Play:
		c.State = Pause
	case Pause:
		c.State = Play
	}
}

// Restart clears the field, statistics and score and returns to Play.
func (c *Columns) Restart() {
	c.Field = NewField()
	c.ColorStats = [ColorCount]int{}
	c.Score = 0
	c.FallLimit = DefaultFallLimit
	c.fallCounter = 0
	c.State = Play
}

// stepDown moves each block at coords one row down, or settles it when
// the floor or a settled block is directly below. coords must be in
// bottom-to-top order so a landing block immediately supports the one
// above it within the same pass.
func (f *Field) stepDown(coords []Point) {
	for _, p := range coords {
		if f.Supported(p.X, p.Y) {
			cell := f.At(p.X, p.Y)
			cell.Phase = Stationary
			f.Set(p.X, p.Y, cell)
		} else {
			f.Swap(p.X, p.Y, p.X, p.Y+1)
		}
	}
}

// stepDisappearing counts every blink timer down by one and clears the
// cells whose timer already ran out, releasing the column above each
// cleared cell to gravity.
func (f *Field) stepDisappearing(coords []Point) {
	for _, p := range coords {
		cell := f.At(p.X, p.Y)
		if !cell.Occupied || cell.Phase != Disappearing {
			continue
		}
		if cell.Counter > 0 {
			cell.Counter--
			f.Set(p.X, p.Y, cell)
			continue
		}
		f.Set(p.X, p.Y, Cell{})
		for y := 0; y < p.Y; y++ {
			above := f.At(p.X, y)
			if above.Occupied && above.Phase != Disappearing {
				above.Phase = Falling
				f.Set(p.X, y, above)
			}
		}
	}
}

// markQualifying marks every qualifying run as disappearing and returns
// the score it yields: a run of length n scores n - (MinSequence - 1).
// A cell captured by runs on two axes disappears once but both runs
// score.
func (f *Field) markQualifying() int {
	delta := 0
	for _, seq := range f.Sequences(Sequence.Qualifies) {
		delta += len(seq.Coords) - (MinSequence - 1)
		for _, p := range seq.Coords {
			cell := f.At(p.X, p.Y)
			cell.Phase = Disappearing
			cell.Counter = BlinkCount
			f.Set(p.X, p.Y, cell)
		}
	}
	return delta
}

func (f *Field) releaseDescending() {
	for _, p := range f.CoordsMatching(isDescending) {
		cell := f.At(p.X, p.Y)
		cell.Phase = Falling
		f.Set(p.X, p.Y, cell)
	}
}

func (f *Field) rotateDescending(times int) {
	descending := f.CoordsMatching(isDescending)
	n := len(descending)
	if n == 0 {
		return
	}
	// CoordsMatching is bottom-to-top; the ring runs in scan order.
	slices.Reverse(descending)
	times %= n
	if times < 0 {
		times += n
	}
	colors := make([]int, n)
	for i, p := range descending {
		colors[i] = f.At(p.X, p.Y).Color
	}
	for i, p := range descending {
		cell := f.At(p.X, p.Y)
		cell.Color = colors[(i+times)%n]
		f.Set(p.X, p.Y, cell)
	}
}
