package analysis

import (
	"sort"

	"seffaflik/internal/model"
)

// Rank summarizes every value column and sorts descending by Total. Ties
// keep column order.
func Rank(t *model.Table) []ColumnSummary {
	out := make([]ColumnSummary, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, Summarize(t, c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// Top returns at most n entries of ranked; n <= 0 returns all of them.
func Top(ranked []ColumnSummary, n int) []ColumnSummary {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
