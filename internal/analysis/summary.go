package analysis

import (
	"math"
	"sort"

	"seffaflik/internal/model"
)

// ColumnSummary describes one value column of a table. For a fan-out table
// each column is one entity, so summaries can be ranked against each other.
type ColumnSummary struct {
	Column string `json:"column"`

	Count int `json:"count"` // numeric cells
	Nulls int `json:"nulls"` // null or text cells

	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
	P05  float64 `json:"p05"`
	P95  float64 `json:"p95"`

	SpreadP95P05 float64 `json:"spread_p95_p05"`
	Total        float64 `json:"total"`

	// First and Last are the keys of the first and last numeric cells.
	First model.Key `json:"first"`
	Last  model.Key `json:"last"`
}

// Summarize computes statistics over the numeric cells of column. A missing
// column or one without numbers yields a summary with Count 0.
func Summarize(t *model.Table, column string) ColumnSummary {
	s := ColumnSummary{Column: column}
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return s
	}

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, t.Len())
	for _, r := range t.Rows {
		v, ok := r.Cells[idx].Float()
		if !ok {
			s.Nulls++
			continue
		}
		if len(vals) == 0 {
			s.First = r.Key()
		}
		s.Last = r.Key()
		vals = append(vals, v)
		sum += v
		minv = math.Min(minv, v)
		maxv = math.Max(maxv, v)
	}
	if len(vals) == 0 {
		return s
	}
	sort.Float64s(vals)
	s.Count = len(vals)
	s.Min = minv
	s.Max = maxv
	s.Total = sum
	s.Mean = sum / float64(len(vals))
	s.P05 = percentileSorted(vals, 0.05)
	s.P95 = percentileSorted(vals, 0.95)
	s.SpreadP95P05 = s.P95 - s.P05
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
