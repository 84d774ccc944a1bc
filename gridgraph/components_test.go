package gridgraph

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Walled tests ConnectedComponents on a 3×4 grid
// split by a wall column.
//
// Grid:
//
//	S . # .
//	. . # .
//	. . # E
//
// Expected: 2 regions of sizes 6 and 3.
func TestConnectedComponents_Walled(t *testing.T) {
	g, err := Parse(`
S.#.
..#.
..#E
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	comps := g.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	if want := []int{3, 6}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
	if g.Connected(Coord{0, 0}, Coord{2, 3}) {
		t.Error("start and end must be disconnected")
	}
	if !g.Connected(Coord{0, 3}, Coord{2, 3}) {
		t.Error("right column must be connected")
	}
	if g.Connected(Coord{0, 0}, Coord{0, 2}) {
		t.Error("a wall is never connected")
	}
}

// TestConnectedComponents_Diagonal8 shows corner-touching cells join under Conn8.
//
// Grid:
//
//	S #
//	# .
func TestConnectedComponents_Diagonal8(t *testing.T) {
	g4, _ := Parse("S#\n#.")
	if n := len(g4.ConnectedComponents()); n != 2 {
		t.Errorf("Conn4 components = %d; want 2", n)
	}
	g8, _ := Parse("S#\n#.", WithConnectivity(Conn8))
	if n := len(g8.ConnectedComponents()); n != 1 {
		t.Errorf("Conn8 components = %d; want 1", n)
	}
}

// TestParse_Errors covers malformed maps.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "\n  \n", ErrEmptyGrid},
		{"Ragged", "..\n.", ErrNonRectangular},
		{"Symbol", ".?", ErrBadSymbol},
		{"TwoStarts", "S.S", ErrDuplicateRole},
		{"TwoEnds", "SEE", ErrDuplicateRole},
		{"WallOnDefaultStart", "#.E", ErrRoleConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.text); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
		})
	}
}

// TestParse_String round-trips a map through Parse and String.
func TestParse_String(t *testing.T) {
	const text = ".#..\n.S#.\n...E\n"
	g, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := g.String(); got != text {
		t.Errorf("String() =\n%s\nwant\n%s", got, text)
	}
	if g.Stale() {
		t.Error("parsed grid must have fresh neighbors")
	}
	if g.Start().Coord != (Coord{1, 1}) {
		t.Errorf("start = %v; want (1,1)", g.Start().Coord)
	}
	// Marks render and read back as free cells.
	_ = g.SetMark(Coord{0, 0}, MarkPath)
	_ = g.SetMark(Coord{0, 2}, MarkOpen)
	_ = g.SetMark(Coord{0, 3}, MarkClosed)
	dump := g.String()
	if dump[:4] != "*#ox" {
		t.Errorf("marked row = %q; want %q", dump[:4], "*#ox")
	}
	again, err := Parse(dump)
	if err != nil {
		t.Fatalf("Parse(dump) failed: %v", err)
	}
	g.ResetMarks()
	if again.String() != g.String() {
		t.Errorf("re-parsed grid differs:\n%s\nvs\n%s", again, g)
	}
}
