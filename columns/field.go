// Package columns contains the simulation core of the game: the field
// state machine, sequence detection and the move advisor. It knows
// nothing about rendering or input devices; the terminal package drives
// it through primitive intents.
package columns

import "fmt"

// Field dimensions and game constants.
const (
	Width            = 6
	Height           = 18
	ColorCount       = 6
	MinSequence      = 3
	BlinkCount       = 32
	DefaultFallLimit = 32
	TripletSize      = 3

	// SpawnColumn is where new triplets enter the field.
	SpawnColumn = Width / 2

	// every speedupDivisor points the fall limit drops by one
	speedupDivisor = 4
)

// Phase is the lifecycle state of an occupied cell.
type Phase int

const (
	// Stationary blocks are settled: they take part in sequence
	// detection and obstruct anything falling onto them.
	Stationary Phase = iota
	// Descending blocks form the player-controlled triplet.
	Descending
	// Falling blocks free-fall one row per tick until obstructed.
	Falling
	// Disappearing blocks count down a blink timer before clearing.
	// A disappearing block never returns to any other phase.
	Disappearing
)

// Cell is one slot of the playfield. The zero value is an empty cell.
type Cell struct {
	Occupied bool
	Color    int
	Phase    Phase
	// Counter is the remaining blink ticks while Disappearing.
	Counter int
}

// settled reports whether the cell obstructs anything falling onto it.
// Disappearing cells still hold their spot until the countdown ends.
func (c Cell) settled() bool {
	return c.Occupied && (c.Phase == Stationary || c.Phase == Disappearing)
}

// Point is a field coordinate. (0,0) is the top-left cell.
type Point struct {
	X, Y int
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// index maps a coordinate to the backing array. All coordinates inside
// the core come from bounds-checked iteration, so going out of range is
// a bug in the caller, not a runtime condition.
func index(x, y int) int {
	if !inBounds(x, y) {
		panic(fmt.Sprintf("columns: coordinate (%d,%d) out of range", x, y))
	}
	return y*Width + x
}

// Field is the fixed Width x Height playfield.
type Field struct {
	cells [Width * Height]Cell
}

func NewField() *Field { return &Field{} }

func (f *Field) At(x, y int) Cell     { return f.cells[index(x, y)] }
func (f *Field) Set(x, y int, c Cell) { f.cells[index(x, y)] = c }

// Swap exchanges the contents of two cells. All movement in the field
// goes through Swap, so a block is never duplicated mid-move.
func (f *Field) Swap(x1, y1, x2, y2 int) {
	i, j := index(x1, y1), index(x2, y2)
	f.cells[i], f.cells[j] = f.cells[j], f.cells[i]
}

// Clone returns an independent copy of the field. The move advisor
// simulates hypothetical placements on clones only.
func (f *Field) Clone() *Field {
	c := *f
	return &c
}

// Supported reports whether the block at (x,y) rests on the field floor
// or on a settled block.
func (f *Field) Supported(x, y int) bool {
	return y == Height-1 || f.At(x, y+1).settled()
}

// ShadowCoords returns where the descending triplet would come to rest
// if it were released right now. UIs draw the drop shadow there. It
// returns nil when no triplet is active or the triplet is already
// touching down.
func (f *Field) ShadowCoords() []Point {
	descending := f.CoordsMatching(isDescending)
	if len(descending) == 0 {
		return nil
	}
	// all descending cells share one column; the first is the lowest
	low := descending[0]
	drop := 0
	for y := low.Y + 1; y < Height && !f.At(low.X, y).Occupied; y++ {
		drop++
	}
	if drop == 0 {
		return nil
	}
	shadow := make([]Point, 0, len(descending))
	for _, p := range descending {
		shadow = append(shadow, Point{X: p.X, Y: p.Y + drop})
	}
	return shadow
}

// CoordsMatching returns the coordinates of occupied cells satisfying
// pred, ordered bottom to top (reverse row-major). Processing a tick in
// that order moves the lowest block first, so no block is ever moved
// twice within one pass.
func (f *Field) CoordsMatching(pred func(Cell) bool) []Point {
	var pts []Point
	coords := FieldCoords()
	for {
		p, ok := coords.NextBack()
		if !ok {
			break
		}
		if c := f.cells[p.Y*Width+p.X]; c.Occupied && pred(c) {
			pts = append(pts, p)
		}
	}
	return pts
}

// Phase predicates for CoordsMatching.
func isStationary(c Cell) bool   { return c.Phase == Stationary }
func isDescending(c Cell) bool   { return c.Phase == Descending }
func isFalling(c Cell) bool      { return c.Phase == Falling }
func isDisappearing(c Cell) bool { return c.Phase == Disappearing }

// Coords produces every (x,y) pair of a grid in row-major order. It can
// be consumed from the front, the back, or both interleaved; each
// coordinate comes out exactly once.
type Coords struct {
	index, length, width int
}

// FieldCoords returns a Coords over the full field.
func FieldCoords() *Coords { return newCoords(Width, Height) }

func newCoords(width, height int) *Coords {
	return &Coords{length: width * height, width: width}
}

// Len returns the number of coordinates not yet produced.
func (c *Coords) Len() int {
	if c.index >= c.length {
		return 0
	}
	return c.length - c.index
}

// Next produces the next coordinate from the front.
func (c *Coords) Next() (Point, bool) {
	if c.index >= c.length {
		return Point{}, false
	}
	p := c.point(c.index)
	c.index++
	return p, true
}

// NextBack produces the next coordinate from the back.
func (c *Coords) NextBack() (Point, bool) {
	if c.index >= c.length {
		return Point{}, false
	}
	c.length--
	return c.point(c.length), true
}

func (c *Coords) point(i int) Point {
	return Point{X: i % c.width, Y: i / c.width}
}
