package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anySequence(Sequence) bool { return true }

func atLeast(n int) func(Sequence) bool {
	return func(s Sequence) bool { return len(s.Coords) >= n }
}

func TestSequencesEmptyField(t *testing.T) {
	assert.Empty(t, NewField().Sequences(anySequence))
}

func TestSequencesHorizontalRun(t *testing.T) {
	f := NewField()
	f.Set(1, 17, stationaryCell(4))
	f.Set(2, 17, stationaryCell(4))
	f.Set(3, 17, stationaryCell(4))

	got := f.Sequences(atLeast(MinSequence))
	require.Len(t, got, 1, "a single run must be found exactly once, not re-counted from the far end")
	assert.Equal(t, []Point{{1, 17}, {2, 17}, {3, 17}}, got[0].Coords)
	assert.True(t, got[0].Qualifies())
}

func TestSequencesAxes(t *testing.T) {
	tests := []struct {
		name   string
		coords []Point
	}{
		{"vertical", []Point{{2, 15}, {2, 16}, {2, 17}}},
		{"diagonal down-right", []Point{{1, 12}, {2, 13}, {3, 14}}},
		{"diagonal down-left", []Point{{4, 12}, {3, 13}, {2, 14}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField()
			for _, p := range tt.coords {
				f.Set(p.X, p.Y, stationaryCell(2))
			}
			got := f.Sequences(atLeast(MinSequence))
			require.Len(t, got, 1)
			assert.ElementsMatch(t, tt.coords, got[0].Coords)
		})
	}
}

func TestSequencesExtensible(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(f *Field)
		extensible bool
	}{
		{
			name:       "empty on both ends",
			setup:      func(*Field) {},
			extensible: true,
		},
		{
			name: "different colors on both ends",
			setup: func(f *Field) {
				f.Set(1, 17, stationaryCell(0))
				f.Set(5, 17, stationaryCell(0))
			},
			extensible: false,
		},
		{
			name: "blocked on one end only",
			setup: func(f *Field) {
				f.Set(1, 17, stationaryCell(0))
			},
			extensible: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewField()
			f.Set(2, 17, stationaryCell(4))
			f.Set(3, 17, stationaryCell(4))
			f.Set(4, 17, stationaryCell(4))
			tt.setup(f)

			var horizontal []Sequence
			for _, seq := range f.Sequences(atLeast(MinSequence)) {
				if len(seq.Coords) == 3 && seq.Coords[0] == (Point{2, 17}) {
					horizontal = append(horizontal, seq)
				}
			}
			require.Len(t, horizontal, 1)
			assert.Equal(t, tt.extensible, horizontal[0].Extensible)
		})
	}
}

func TestSequencesAgainstWall(t *testing.T) {
	// a full bottom row of one color is a single horizontal run of
	// length Width and cannot be extended
	f := NewField()
	for x := range Width {
		f.Set(x, 17, stationaryCell(1))
	}
	got := f.Sequences(atLeast(MinSequence))
	require.Len(t, got, 1)
	assert.Len(t, got[0].Coords, Width)
	assert.False(t, got[0].Extensible)
}

func TestSequencesIgnoreNonStationary(t *testing.T) {
	f := NewField()
	f.Set(1, 17, stationaryCell(3))
	f.Set(2, 17, stationaryCell(3))
	falling := stationaryCell(3)
	falling.Phase = Falling
	f.Set(3, 17, falling)

	assert.Empty(t, f.Sequences(atLeast(MinSequence)),
		"a falling block must not complete a run")

	disappearing := stationaryCell(3)
	disappearing.Phase = Disappearing
	disappearing.Counter = BlinkCount
	f.Set(3, 17, disappearing)
	assert.Empty(t, f.Sequences(atLeast(MinSequence)),
		"a disappearing block must not complete a run")
}

func TestSequencesPairFilter(t *testing.T) {
	f := NewField()
	f.Set(2, 17, stationaryCell(5))
	f.Set(3, 17, stationaryCell(5))

	pairs := f.Sequences(atLeast(2))
	require.Len(t, pairs, 1)
	assert.False(t, pairs[0].Qualifies())
	assert.True(t, pairs[0].Extensible)
}

func TestTowerHeight(t *testing.T) {
	f := NewField()
	assert.Equal(t, 0, f.TowerHeight(0))

	f.Set(0, 17, stationaryCell(0))
	f.Set(0, 16, stationaryCell(1))
	assert.Equal(t, 2, f.TowerHeight(0))

	// a gap stops the count even with blocks above it
	f.Set(0, 14, stationaryCell(2))
	assert.Equal(t, 2, f.TowerHeight(0))
}
