package heatmap

import (
	"reflect"
	"testing"
)

func TestPeriodLabelerLaterWins(t *testing.T) {
	labeler := PeriodLabeler([]Period{
		{Label: "alpha", Start: 0, End: 100},
		{Label: "beta", Start: 50, End: 60},
	})
	tests := []struct {
		day  int
		want string
	}{
		{0, "alpha"},
		{49, "alpha"},
		{55, "beta"},
		{61, "alpha"},
		{101, ""},
	}
	for _, tt := range tests {
		if got := labeler(tt.day); got != tt.want {
			t.Errorf("label(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}
}

func TestRegionsSplitsDisjointSpans(t *testing.T) {
	g := Build(2025, nil)
	labeler := PeriodLabeler([]Period{
		{Label: "q1", Start: 0, End: 89},
		{Label: "q1", Start: 200, End: 250}, // same label, not touching
	})

	regions := Regions(&g, labeler)
	if len(regions) != 2 {
		t.Fatalf("%d regions, want 2 disjoint ones", len(regions))
	}
	if regions[0].Label != "q1" || regions[1].Label != "q1" {
		t.Error("both regions should carry the q1 label")
	}
	if got, want := regions[0].Cells, 90; got != want {
		t.Errorf("first region = %d cells, want %d", got, want)
	}
	if got, want := regions[1].Cells, 51; got != want {
		t.Errorf("second region = %d cells, want %d", got, want)
	}
}

func TestRegionsAdjacentLabelsStaySeparate(t *testing.T) {
	g := Build(2025, nil)
	labeler := PeriodLabeler([]Period{
		{Label: "a", Start: 0, End: 49},
		{Label: "b", Start: 50, End: 99},
	})

	regions := Regions(&g, labeler)
	if len(regions) != 2 {
		t.Fatalf("%d regions, want 2", len(regions))
	}
	if regions[0].Label == regions[1].Label {
		t.Error("adjacent differing labels merged")
	}
}

func TestRegionBordersSingleCell(t *testing.T) {
	g := Build(2025, nil)
	labeler := PeriodLabeler([]Period{{Label: "one", Start: 10, End: 10}})

	regions := Regions(&g, labeler)
	if len(regions) != 1 {
		t.Fatalf("%d regions, want 1", len(regions))
	}
	r := regions[0]
	if r.Cells != 1 {
		t.Fatalf("cells = %d, want 1", r.Cells)
	}
	// A lone cell is bordered on all four sides.
	if len(r.Borders) != 4 {
		t.Fatalf("%d border segments, want 4", len(r.Borders))
	}
	seen := map[Edge]bool{}
	for _, b := range r.Borders {
		seen[b.Edge] = true
	}
	for _, e := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		if !seen[e] {
			t.Errorf("edge %v missing from single-cell outline", e)
		}
	}
}

func TestRegionBordersOnlyOnBoundary(t *testing.T) {
	g := Build(2025, nil)
	// One full column plus neighbors: days 10-30 spans several columns.
	labeler := PeriodLabeler([]Period{{Label: "span", Start: 10, End: 30}})

	regions := Regions(&g, labeler)
	if len(regions) != 1 {
		t.Fatalf("%d regions, want 1", len(regions))
	}
	r := regions[0]

	inRegion := func(col, row int) bool {
		c := g.At(col, row)
		return c.Day >= 10 && c.Day <= 30
	}
	for _, b := range r.Borders {
		if !inRegion(b.Col, b.Row) {
			t.Fatalf("border segment at (%d,%d) outside the region", b.Col, b.Row)
		}
		var ncol, nrow int
		switch b.Edge {
		case EdgeTop:
			ncol, nrow = b.Col, b.Row-1
		case EdgeBottom:
			ncol, nrow = b.Col, b.Row+1
		case EdgeLeft:
			ncol, nrow = b.Col-1, b.Row
		case EdgeRight:
			ncol, nrow = b.Col+1, b.Row
		}
		if inRegion(ncol, nrow) {
			t.Errorf("interior edge emitted at (%d,%d) %v", b.Col, b.Row, b.Edge)
		}
	}
}

func TestRegionsFullYearOuterBoundaryOnly(t *testing.T) {
	g := Build(2024, nil)
	labeler := PeriodLabeler([]Period{{Label: "all", Start: 0, End: 365}})

	regions := Regions(&g, labeler)
	if len(regions) != 1 {
		t.Fatalf("%d regions, want exactly 1 for a fully labeled year", len(regions))
	}
	if got, want := regions[0].Cells, 366; got != want {
		t.Fatalf("cells = %d, want %d", got, want)
	}
	// Every border segment must face outward: a padding cell or out-of-grid.
	for _, b := range regions[0].Borders {
		var ncol, nrow int
		switch b.Edge {
		case EdgeTop:
			ncol, nrow = b.Col, b.Row-1
		case EdgeBottom:
			ncol, nrow = b.Col, b.Row+1
		case EdgeLeft:
			ncol, nrow = b.Col-1, b.Row
		case EdgeRight:
			ncol, nrow = b.Col+1, b.Row
		}
		if g.At(ncol, nrow).Day >= 0 {
			t.Fatalf("internal border at (%d,%d) %v in a single-region year", b.Col, b.Row, b.Edge)
		}
	}
}

func TestRegionsDeterministic(t *testing.T) {
	g := Build(2024, nil)
	labeler := PeriodLabeler([]Period{
		{Label: "a", Start: 0, End: 120},
		{Label: "b", Start: 121, End: 240},
		{Label: "c", Start: 300, End: 365},
	})

	first := Regions(&g, labeler)
	for i := 0; i < 5; i++ {
		if again := Regions(&g, labeler); !reflect.DeepEqual(first, again) {
			t.Fatal("identical input produced different region output")
		}
	}
}

func TestRegionsNilLabeler(t *testing.T) {
	g := Build(2025, nil)
	if regions := Regions(&g, nil); regions != nil {
		t.Errorf("Regions with nil labeler = %v, want nil", regions)
	}
}
