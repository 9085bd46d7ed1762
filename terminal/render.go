package terminal

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"text/template"

	"columns/columns"
	"columns/proto"
)

const (
	// ASCII colors, in block color-index order.
	Red     = "31"
	Green   = "32"
	Blue    = "34"
	Yellow  = "33"
	Cyan    = "36"
	Magenta = "35"

	resetPos = "\033[H" // Reset cursor position to 0,0
)

//go:embed "layout.tmpl"
var layout string

// colorMap is indexed by a block's color index.
var colorMap = [columns.ColorCount]string{Red, Green, Blue, Yellow, Cyan, Magenta}

type templateData struct {
	Local    *columns.Snapshot
	Remote   *proto.GameMessage
	Name     string
	NoShadow bool

	mu sync.Mutex
}

type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(l *slog.Logger, noShadow bool, name string) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:   os.Stdout,
		logger:   l,
		template: tmp,
		templateData: &templateData{
			Name:     name,
			NoShadow: noShadow,
		},
	}, nil
}

func (r *render) local(s *columns.Snapshot) {
	r.templateData.mu.Lock()
	r.templateData.Local = s
	r.templateData.mu.Unlock()
	r.draw()
}

func (r *render) remote(gm *proto.GameMessage) {
	r.templateData.mu.Lock()
	r.templateData.Remote = gm
	r.templateData.mu.Unlock()
	r.draw()
}

func (r *render) draw() {
	fmt.Fprint(r.writer, resetPos)
	r.templateData.mu.Lock()
	defer r.templateData.mu.Unlock()
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template", slog.String("error", err.Error()))
	}
}

// reset clears the whole screen, dropping any lobby overlay.
func (r *render) reset() {
	r.templateData.mu.Lock()
	r.templateData.Remote = nil
	r.templateData.mu.Unlock()
	fmt.Fprint(r.writer, "\033[2J\033[H")
}

func (r *render) lobby() {
	fmt.Fprint(r.writer, "\033[8;3H+--------------------------------+")
	fmt.Fprint(r.writer, "\033[9;3H|   Welcome to Terminal Columns  |")
	fmt.Fprint(r.writer, "\033[10;3H|                                |")
	fmt.Fprint(r.writer, "\033[11;3H|    (p)lay  (o)nline  (q)uit    |")
	fmt.Fprint(r.writer, "\033[12;3H+--------------------------------+")
}

func (r *render) overlay(msg string) {
	fmt.Fprintf(r.writer, "\033[10;3H|%s|", center(msg, 32))
}

func center(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"localField":  localField,
		"remoteField": remoteField,
		"score":       score,
		"remoteScore": remoteScore,
		"level":       level,
		"colorTally":  colorTally,
		"advice":      advice,
		"remoteName":  remoteName,
		"vs":          vs,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	layout = strings.ReplaceAll(layout, "\n", "\r\n")
	layout = strings.ReplaceAll(layout, "Terminal Columns", "\033[1mTerminal Columns\033[0m")
	return template.New("layout").Funcs(funcMap).Parse(layout)
}

func block(color int) string {
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", colorMap[color])
}

func localField(t *templateData) [columns.Height][columns.Width]string {
	rendered := emptyField()
	if t.Local == nil {
		return rendered
	}
	f := t.Local.Field

	if !t.NoShadow {
		for _, p := range f.ShadowCoords() {
			rendered[p.Y][p.X] = "[]"
		}
	}
	for y := range columns.Height {
		for x := range columns.Width {
			cell := f.At(x, y)
			if !cell.Occupied {
				continue
			}
			// disappearing blocks blink during the countdown
			if cell.Phase == columns.Disappearing && cell.Counter&8 != 0 {
				rendered[y][x] = "  "
				continue
			}
			rendered[y][x] = block(cell.Color)
		}
	}
	return rendered
}

func remoteField(t *templateData) [columns.Height][columns.Width]string {
	rendered := emptyField()
	if t.Remote == nil {
		return rendered
	}
	for i, c := range t.Remote.GetField().GetCells() {
		if i >= columns.Width*columns.Height {
			break
		}
		if c < 0 || int(c) >= columns.ColorCount {
			continue
		}
		rendered[i/columns.Width][i%columns.Width] = block(int(c))
	}
	return rendered
}

func emptyField() [columns.Height][columns.Width]string {
	rendered := [columns.Height][columns.Width]string{}
	for y := range columns.Height {
		for x := range columns.Width {
			rendered[y][x] = "  "
		}
	}
	return rendered
}

func score(t *templateData) int {
	if t.Local == nil {
		return 0
	}
	return t.Local.Score
}

func remoteScore(t *templateData) int64 {
	return t.Remote.GetScore()
}

// level is the number of speedups so far, starting at 1.
func level(t *templateData) int {
	if t.Local == nil {
		return 1
	}
	return columns.DefaultFallLimit - t.Local.FallLimit + 1
}

func colorTally(t *templateData) string {
	if t.Local == nil {
		return ""
	}
	parts := make([]string, 0, columns.ColorCount)
	for i, n := range t.Local.ColorStats {
		parts = append(parts, fmt.Sprintf("\x1b[%sm%3d\x1b[0m", colorMap[i], n))
	}
	return strings.Join(parts, " ")
}

// advice renders the advisor's suggestion for the active triplet. The
// result is padded so a stale suggestion never bleeds through.
func advice(t *templateData) string {
	out := ""
	if t.Local != nil && t.Local.Advice != nil {
		out = fmt.Sprintf("advisor: column %d, cycle %d", t.Local.Advice.Column, t.Local.Advice.RotateCount)
	}
	return fmt.Sprintf("%-28s", out)
}

func remoteName(t *templateData) string {
	if t.Remote == nil {
		return ""
	}
	return t.Remote.GetName()
}

func vs(lName, rName string) string {
	maxL := 9
	l := len(lName)
	switch {
	case l > maxL:
		lName = lName[:maxL]
	case l < maxL:
		lName = strings.Repeat(" ", maxL-len(lName)) + lName
	}

	r := len(rName)
	switch {
	case r > maxL:
		rName = rName[:maxL]
	case r < maxL:
		rName += strings.Repeat(" ", maxL-len(rName))
	}
	return fmt.Sprintf(" %s <- vs -> %s ", lName, rName)
}

// field2Proto flattens a field snapshot for the wire: row-major color
// indexes, -1 for empty cells.
func field2Proto(f *columns.Field) *proto.FieldSnapshot {
	cells := make([]int32, 0, columns.Width*columns.Height)
	for y := range columns.Height {
		for x := range columns.Width {
			cell := f.At(x, y)
			if cell.Occupied {
				cells = append(cells, int32(cell.Color))
			} else {
				cells = append(cells, -1)
			}
		}
	}
	return &proto.FieldSnapshot{Cells: cells}
}
