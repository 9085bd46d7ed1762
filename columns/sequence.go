package columns

// axes are the four directions a run of blocks can extend in. The delta
// is the positive direction; a run is only collected starting from the
// cell with no same-colored neighbor in the negative direction, so each
// run is found exactly once per axis.
var axes = [4]Point{
	{X: 1, Y: 0},  // horizontal
	{X: 0, Y: 1},  // vertical
	{X: 1, Y: 1},  // diagonal down-right
	{X: -1, Y: 1}, // diagonal down-left
}

// Sequence is a maximal straight run of same-colored stationary cells
// along one axis.
type Sequence struct {
	Coords []Point
	// Extensible means an empty in-bounds cell adjoins one of the
	// run's ends, so a future block could still grow it.
	Extensible bool
}

// Qualifies reports whether the run is long enough to score.
func (s Sequence) Qualifies() bool { return len(s.Coords) >= MinSequence }

// stationaryAt reports whether (x,y) holds a stationary block of the
// given color. Out-of-bounds coordinates simply don't.
func (f *Field) stationaryAt(x, y, color int) bool {
	if !inBounds(x, y) {
		return false
	}
	c := f.At(x, y)
	return c.Occupied && c.Phase == Stationary && c.Color == color
}

// Sequences finds every run of same-colored stationary cells along the
// four axes, bottom to top, and returns those accepted by keep.
// Disappearing cells are no longer stationary and never join a run.
func (f *Field) Sequences(keep func(Sequence) bool) []Sequence {
	var seqs []Sequence
	for _, start := range f.CoordsMatching(isStationary) {
		color := f.At(start.X, start.Y).Color
		for _, axis := range axes {
			if f.stationaryAt(start.X-axis.X, start.Y-axis.Y, color) {
				// not the run's start on this axis
				continue
			}
			seq := Sequence{Coords: []Point{start}}
			x, y := start.X+axis.X, start.Y+axis.Y
			for f.stationaryAt(x, y, color) {
				seq.Coords = append(seq.Coords, Point{X: x, Y: y})
				x += axis.X
				y += axis.Y
			}
			bx, by := start.X-axis.X, start.Y-axis.Y
			seq.Extensible = (inBounds(bx, by) && !f.At(bx, by).Occupied) ||
				(inBounds(x, y) && !f.At(x, y).Occupied)
			if keep(seq) {
				seqs = append(seqs, seq)
			}
		}
	}
	return seqs
}

// TowerHeight counts the contiguous occupied cells in column x from the
// floor upward, stopping at the first empty cell.
func (f *Field) TowerHeight(x int) int {
	h := 0
	for y := Height - 1; y >= 0; y-- {
		if !f.At(x, y).Occupied {
			break
		}
		h++
	}
	return h
}
