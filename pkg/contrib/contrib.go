// Package contrib loads the contribution data set: a JSON mapping from year
// to an ordered sequence of per-day counts, as produced by the fetch script.
// Absent files and absent years degrade to all-zero data; the heatmap never
// fails on missing input.
package contrib

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/f/foliodesk/pkg/heatmap"
)

// Data maps a year to its per-day contribution counts.
type Data map[int][]int

// Load reads the data file. A missing file is not an error: it yields an
// empty data set.
func Load(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Data{}, nil
		}
		return nil, fmt.Errorf("read contribution data: %w", err)
	}
	return Parse(raw)
}

// Parse decodes the year→counts mapping. Keys are decimal year strings.
func Parse(raw []byte) (Data, error) {
	var byYear map[string][]int
	if err := json.Unmarshal(raw, &byYear); err != nil {
		return nil, fmt.Errorf("parse contribution data: %w", err)
	}
	data := make(Data, len(byYear))
	for key, counts := range byYear {
		year, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("parse contribution data: bad year %q", key)
		}
		data[year] = counts
	}
	return data, nil
}

// Counts returns the per-day counts for a year, padded or synthesized with
// zeros to exactly DaysInYear(year) entries.
func (d Data) Counts(year int) []int {
	days := heatmap.DaysInYear(year)
	counts := make([]int, days)
	copy(counts, d[year])
	return counts
}

// Years returns the data's years, newest first.
func (d Data) Years() []int {
	years := make([]int, 0, len(d))
	for y := range d {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
