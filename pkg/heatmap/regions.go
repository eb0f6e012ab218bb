package heatmap

// Labeler assigns a period label to a zero-based day-of-year. Days sharing a
// label and touching 4-directionally form one region. An empty label means
// the day belongs to no period.
type Labeler func(day int) string

// Period is a labeled, inclusive day-of-year span.
type Period struct {
	Label string
	Start int
	End   int
}

// PeriodLabeler builds a Labeler from a period list. Later periods win on
// overlap.
func PeriodLabeler(periods []Period) Labeler {
	return func(day int) string {
		label := ""
		for _, p := range periods {
			if day >= p.Start && day <= p.End {
				label = p.Label
			}
		}
		return label
	}
}

// Edge identifies one side of a cell.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// BorderSegment is one cell edge on a region's outline.
type BorderSegment struct {
	Col  int
	Row  int
	Edge Edge
}

// Region is a maximal set of 4-connected cells sharing one label.
type Region struct {
	ID      int
	Label   string
	Cells   int
	Borders []BorderSegment
}

// cellKey addresses a grid cell for the fill bookkeeping.
type cellKey struct {
	col int
	row int
}

// Regions groups the grid's labeled cells with a 4-directional flood fill
// and emits a border segment on every cell edge whose neighbor, in-grid or
// out-of-grid, belongs to a different region.
func Regions(g *Grid, labelOf Labeler) []Region {
	if labelOf == nil {
		return nil
	}

	label := func(col, row int) (string, bool) {
		c := g.At(col, row)
		if c.Day < 0 {
			return "", false
		}
		l := labelOf(c.Day)
		return l, l != ""
	}

	regionOf := make(map[cellKey]int)
	var regions []Region

	for col := 0; col < g.Cols; col++ {
		for row := 0; row < Rows; row++ {
			start := cellKey{col, row}
			if _, seen := regionOf[start]; seen {
				continue
			}
			l, ok := label(col, row)
			if !ok {
				continue
			}

			id := len(regions)
			region := Region{ID: id, Label: l}
			stack := []cellKey{start}
			regionOf[start] = id
			for len(stack) > 0 {
				k := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				region.Cells++
				for _, n := range [4]cellKey{
					{k.col, k.row - 1},
					{k.col, k.row + 1},
					{k.col - 1, k.row},
					{k.col + 1, k.row},
				} {
					if _, seen := regionOf[n]; seen {
						continue
					}
					nl, nok := label(n.col, n.row)
					if !nok || nl != l {
						continue
					}
					regionOf[n] = id
					stack = append(stack, n)
				}
			}
			regions = append(regions, region)
		}
	}

	// Border pass: an edge is on the outline when the adjacent cell is not
	// part of the same region. Scan order keeps the output deterministic.
	for col := 0; col < g.Cols; col++ {
		for row := 0; row < Rows; row++ {
			k := cellKey{col, row}
			id, ok := regionOf[k]
			if !ok {
				continue
			}
			neighbors := [4]struct {
				key  cellKey
				edge Edge
			}{
				{cellKey{col, row - 1}, EdgeTop},
				{cellKey{col, row + 1}, EdgeBottom},
				{cellKey{col - 1, row}, EdgeLeft},
				{cellKey{col + 1, row}, EdgeRight},
			}
			for _, n := range neighbors {
				nid, seen := regionOf[n.key]
				if !seen || nid != id {
					regions[id].Borders = append(regions[id].Borders, BorderSegment{
						Col: col, Row: row, Edge: n.edge,
					})
				}
			}
		}
	}
	return regions
}
