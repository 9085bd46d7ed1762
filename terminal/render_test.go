package terminal

import (
	"reflect"
	"strings"
	"testing"

	"columns/columns"
	"columns/proto"
)

func stationary(color int) columns.Cell {
	return columns.Cell{Occupied: true, Color: color, Phase: columns.Stationary}
}

func descending(color int) columns.Cell {
	return columns.Cell{Occupied: true, Color: color, Phase: columns.Descending}
}

func TestLocalField(t *testing.T) {
	f := columns.NewField()
	f.Set(0, columns.Height-1, stationary(2))
	for y := range columns.TripletSize {
		f.Set(columns.SpawnColumn, y, descending(y))
	}
	td := &templateData{Local: &columns.Snapshot{Field: f}}

	want := emptyField()
	want[columns.Height-1][0] = block(2)
	for y := range columns.TripletSize {
		want[y][columns.SpawnColumn] = block(y)
	}
	// the drop shadow marks where the triplet would land
	want[columns.Height-1][columns.SpawnColumn] = "[]"
	want[columns.Height-2][columns.SpawnColumn] = "[]"
	want[columns.Height-3][columns.SpawnColumn] = "[]"

	if got := localField(td); !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	t.Run("NoShadow hides the drop shadow", func(t *testing.T) {
		td.NoShadow = true
		got := localField(td)
		for _, y := range []int{columns.Height - 1, columns.Height - 2, columns.Height - 3} {
			if got[y][columns.SpawnColumn] == "[]" {
				t.Errorf("shadow rendered at row %d despite NoShadow", y)
			}
		}
	})

	t.Run("nil snapshot renders empty spaces", func(t *testing.T) {
		if got := localField(&templateData{}); !reflect.DeepEqual(got, emptyField()) {
			t.Errorf("want empty field, got %v", got)
		}
	})
}

func TestLocalFieldBlink(t *testing.T) {
	blinking := columns.Cell{Occupied: true, Color: 1, Phase: columns.Disappearing}

	f := columns.NewField()
	blinking.Counter = 12 // bit 3 set: hidden frame
	f.Set(0, 0, blinking)
	blinking.Counter = 4 // bit 3 clear: visible frame
	f.Set(1, 0, blinking)
	td := &templateData{Local: &columns.Snapshot{Field: f}}

	got := localField(td)
	if got[0][0] != "  " {
		t.Errorf("cell in the hidden blink frame rendered as %q", got[0][0])
	}
	if got[0][1] != block(1) {
		t.Errorf("cell in the visible blink frame rendered as %q", got[0][1])
	}
}

func TestRemoteField(t *testing.T) {
	cells := make([]int32, columns.Width*columns.Height)
	for i := range cells {
		cells[i] = -1
	}
	cells[0] = 3
	cells[len(cells)-1] = 0
	td := &templateData{
		Remote: &proto.GameMessage{Field: &proto.FieldSnapshot{Cells: cells}},
	}

	want := emptyField()
	want[0][0] = block(3)
	want[columns.Height-1][columns.Width-1] = block(0)
	if got := remoteField(td); !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	t.Run("nil remote renders empty spaces", func(t *testing.T) {
		if got := remoteField(&templateData{}); !reflect.DeepEqual(got, emptyField()) {
			t.Errorf("want empty field, got %v", got)
		}
	})
}

func TestField2Proto(t *testing.T) {
	f := columns.NewField()
	f.Set(0, 0, stationary(4))
	f.Set(columns.Width-1, columns.Height-1, stationary(1))

	got := field2Proto(f)
	cells := got.GetCells()
	if len(cells) != columns.Width*columns.Height {
		t.Fatalf("got %d cells, want %d", len(cells), columns.Width*columns.Height)
	}
	if cells[0] != 4 {
		t.Errorf("cells[0] = %d, want 4", cells[0])
	}
	if last := cells[len(cells)-1]; last != 1 {
		t.Errorf("last cell = %d, want 1", last)
	}
	for i, c := range cells[1 : len(cells)-1] {
		if c != -1 {
			t.Errorf("cells[%d] = %d, want -1 for an empty cell", i+1, c)
		}
	}
}

func TestAdvice(t *testing.T) {
	if got := advice(&templateData{}); strings.TrimSpace(got) != "" {
		t.Errorf("advice without a snapshot = %q, want blank padding", got)
	}
	td := &templateData{Local: &columns.Snapshot{
		Field:  columns.NewField(),
		Advice: &columns.Move{Column: 4, RotateCount: 2},
	}}
	if got := advice(td); !strings.Contains(got, "column 4") || !strings.Contains(got, "cycle 2") {
		t.Errorf("advice = %q", got)
	}
}

func TestVs(t *testing.T) {
	tests := []struct {
		lName, rName string
		want         string
	}{
		{"me", "you", "        me <- vs -> you       "},
		{"areallylongname", "other", " areallylo <- vs -> other     "},
	}
	for _, tt := range tests {
		if got := vs(tt.lName, tt.rName); got != tt.want {
			t.Errorf("vs(%q, %q) = %q, want %q", tt.lName, tt.rName, got, tt.want)
		}
	}
}

func TestTemplateRender(t *testing.T) {
	tmpl, err := loadTemplate()
	if err != nil {
		t.Fatalf("unable to load template: %v", err)
	}
	w := &strings.Builder{}
	td := &templateData{
		Name:  "local",
		Local: &columns.Snapshot{Field: columns.NewField()},
	}
	if err := tmpl.Execute(w, td); err != nil {
		t.Fatalf("unable to execute template: %v", err)
	}
	out := w.String()
	if !strings.Contains(out, "score") {
		t.Error("rendered layout is missing the score line")
	}
	// both boards render every row: 2 border characters each
	if got := strings.Count(out, "|"); got != columns.Height*4 {
		t.Errorf("rendered layout has %d board borders, want %d", got, columns.Height*4)
	}
}
