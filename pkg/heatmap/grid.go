// Package heatmap renders a calendar-style contribution grid: 7 weekday
// rows by 53 week columns per year, with five fixed intensity levels and
// optional flood-filled region borders.
package heatmap

import "time"

// Rows is the fixed number of weekday rows (Sunday first).
const Rows = 7

// Cols is the nominal number of week columns per year. A leap year starting
// on Saturday spills into a 54th column; Grid.Cols carries the real count.
const Cols = 53

// levelThresholds bucket daily counts into five intensities:
// 0, 1-3, 4-6, 7-12, 13+.
var levelThresholds = [4]int{1, 4, 7, 13}

// Level maps a daily count to an intensity level in [0,4].
func Level(count int) int {
	level := 0
	for _, min := range levelThresholds {
		if count >= min {
			level++
		}
	}
	return level
}

// DaysInYear returns 366 for Gregorian leap years, else 365.
func DaysInYear(year int) int {
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 366
	}
	return 365
}

// Cell is one grid position. Day is the zero-based day-of-year, or -1 for
// padding cells outside the year.
type Cell struct {
	Day   int
	Count int
	Level int
}

// Grid is one year's heatmap, column-major: week columns of 7 weekday rows.
type Grid struct {
	Year int
	Cols int
	// Cells is indexed [col][row].
	Cells [][Rows]Cell
}

// Build lays out a year's daily counts. Column 0 is aligned so January 1st
// falls on its weekday row; missing or short count data reads as zero, so an
// absent year renders as an all-zero grid of the correct length.
func Build(year int, counts []int) Grid {
	days := DaysInYear(year)
	offset := int(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday())

	cols := (offset + days + Rows - 1) / Rows
	g := Grid{Year: year, Cols: cols, Cells: make([][Rows]Cell, cols)}
	for col := range g.Cells {
		for row := range g.Cells[col] {
			day := col*Rows + row - offset
			if day < 0 || day >= days {
				g.Cells[col][row] = Cell{Day: -1}
				continue
			}
			count := 0
			if day < len(counts) {
				count = counts[day]
			}
			g.Cells[col][row] = Cell{Day: day, Count: count, Level: Level(count)}
		}
	}
	return g
}

// At returns the cell at (col, row) or a padding cell when out of grid.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || col >= g.Cols || row < 0 || row >= Rows {
		return Cell{Day: -1}
	}
	return g.Cells[col][row]
}

// DayCells returns the number of non-padding cells; always DaysInYear(year).
func (g *Grid) DayCells() int {
	n := 0
	for col := range g.Cells {
		for row := range g.Cells[col] {
			if g.Cells[col][row].Day >= 0 {
				n++
			}
		}
	}
	return n
}
