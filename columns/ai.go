package columns

// Move is a placement suggestion for the active triplet: rotate the
// colors RotateCount times, shift to Column, then drop.
type Move struct {
	Column      int
	RotateCount int
}

// rating orders candidate placements lexicographically: the score the
// placement yields immediately (cascades included), then the number of
// extensible runs it leaves behind, then the tallest tower (lower is
// better).
type rating struct {
	score      int
	extensible int
	maxTower   int
}

func (r rating) better(o rating) bool {
	if r.score != o.score {
		return r.score > o.score
	}
	if r.extensible != o.extensible {
		return r.extensible > o.extensible
	}
	return r.maxTower < o.maxTower
}

// BestMove exhaustively tries every rotation count and destination
// column for the descending triplet, simulates each placement to rest
// and returns the best-rated move. It is a pure function of the field:
// the live field is never touched, only clones. The second return is
// false when no triplet is active.
//
// Ties go to the first candidate encountered, rotation count ascending,
// then column ascending.
func BestMove(f *Field) (Move, bool) {
	descending := f.CoordsMatching(isDescending)
	if len(descending) == 0 {
		return Move{}, false
	}

	var best Move
	var bestRating rating
	found := false
	for rotateCount := range len(descending) {
		rotated := f.Clone()
		rotated.rotateDescending(rotateCount)
		for column := range Width {
			settled, ok := placeInColumn(rotated, descending, column)
			if !ok {
				continue
			}
			r := rateField(settled)
			if !found || r.better(bestRating) {
				best = Move{Column: column, RotateCount: rotateCount}
				bestRating = r
				found = true
			}
		}
	}
	return best, found
}

// placeInColumn swaps the descending cells into the target column (same
// row each), releases them to gravity and lets them fall to rest. The
// column is rejected when any target cell already holds a block that is
// not part of the descending set itself.
func placeInColumn(f *Field, descending []Point, column int) (*Field, bool) {
	for _, p := range descending {
		if cell := f.At(column, p.Y); cell.Occupied && cell.Phase != Descending {
			return nil, false
		}
	}
	sim := f.Clone()
	for _, p := range descending {
		sim.Swap(p.X, p.Y, column, p.Y)
	}
	sim.releaseDescending()
	sim.dropToRest()
	return sim, true
}

func rateField(f *Field) rating {
	var r rating

	// what would this placement score, cascades and all?
	if len(f.Sequences(Sequence.Qualifies)) > 0 {
		sim := f.Clone()
		for {
			delta := sim.markQualifying()
			if delta == 0 {
				break
			}
			r.score += delta
			sim.removeDisappearing()
			sim.dropToRest()
		}
	}

	for _, seq := range f.Sequences(func(s Sequence) bool {
		return len(s.Coords) >= 2 && !s.Qualifies()
	}) {
		if seq.Extensible {
			r.extensible++
		}
	}

	for x := range Width {
		r.maxTower = max(r.maxTower, f.TowerHeight(x))
	}
	return r
}

// dropToRest repeatedly applies the fall-one-row-or-settle rule to the
// falling blocks until none remain. This is the advisor's
// simulate-to-quiescence step; the live game falls one row per tick
// instead.
func (f *Field) dropToRest() {
	for {
		falling := f.CoordsMatching(isFalling)
		if len(falling) == 0 {
			return
		}
		f.stepDown(falling)
	}
}

// removeDisappearing clears every disappearing cell immediately, with
// no blink delay, releasing the blocks above to gravity. Only
// simulations skip the countdown this way.
func (f *Field) removeDisappearing() {
	for _, p := range f.CoordsMatching(isDisappearing) {
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
