// Package aggregate derives chart-ready buckets from activity records.
package aggregate

import (
	"github.com/shibashis07/time-logger/internal/domain"
)

// Bucket is an aggregated (label, total duration) pair for chart rendering.
type Bucket struct {
	Label        string `json:"label"`
	TotalMinutes int    `json:"totalMinutes"`
}

// Buckets groups records by activity name and sums their durations.
// Grouping is case-sensitive with no normalization, and bucket order is the
// first-seen order of each name in the input, not sorted by value.
func Buckets(records []*domain.ActivityRecord) []Bucket {
	buckets := make([]Bucket, 0)
	index := make(map[string]int)

	for _, record := range records {
		if i, seen := index[record.Activity]; seen {
			buckets[i].TotalMinutes += record.DurationMinutes
			continue
		}
		index[record.Activity] = len(buckets)
		buckets = append(buckets, Bucket{
			Label:        record.Activity,
			TotalMinutes: record.DurationMinutes,
		})
	}

	return buckets
}

// TotalMinutes sums the duration of all buckets.
func TotalMinutes(buckets []Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.TotalMinutes
	}
	return total
}

// defaultPalette is the fixed chart color set, cycled when buckets exceed it.
var defaultPalette = []string{
	"#FF6384",
	"#36A2EB",
	"#FFCE56",
	"#8A2BE2",
	"#00FA9A",
}

// Palette returns the chart color palette.
func Palette() []string {
	palette := make([]string, len(defaultPalette))
	copy(palette, defaultPalette)
	return palette
}

// Color returns the palette color for the bucket at the given index,
// wrapping around when the palette is exhausted.
func Color(index int) string {
	if index < 0 {
		index = -index
	}
	return defaultPalette[index%len(defaultPalette)]
}
