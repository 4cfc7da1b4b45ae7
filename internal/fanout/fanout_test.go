package fanout

import (
	"context"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"seffaflik/internal/model"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hourly = []string{model.ColDate, model.ColHour}

func entityTable(label string, hours []int64, value float64) *model.Table {
	t := model.NewTable(hourly, []string{label})
	d, _ := model.ParseDate("2021-01-01")
	for _, h := range hours {
		t.AddRow(model.Row{
			Date:  null.TimeFrom(d),
			Hour:  null.IntFrom(h),
			Cells: []model.Cell{model.NumberCell(decimal.NewFromFloat(value))},
		})
	}
	return t
}

func entities(n int) []model.Entity {
	out := make([]model.Entity, n)
	for i := range out {
		out[i] = model.Entity{ID: string(rune('A' + i)), ShortName: string(rune('A' + i))}
	}
	return out
}

// jittered returns each entity's table after a random delay so completion
// order differs from submission order.
func jittered(fetch EntityFetch) EntityFetch {
	return func(ctx context.Context, q model.Query, e model.Entity) *model.Table {
		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
		return fetch(ctx, q, e)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	fetch := jittered(func(_ context.Context, _ model.Query, e model.Entity) *model.Table {
		return entityTable(e.Label(), []int64{0, 1, 2}, float64(e.ID[0]))
	})
	ents := entities(8)

	want := Aggregate(context.Background(), model.Query{}, ents, fetch, hourly, 1)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H"}, want.Columns)
	assert.Equal(t, 3, want.Len())

	for i := 0; i < 10; i++ {
		got := Aggregate(context.Background(), model.Query{}, ents, fetch, hourly, 4)
		assert.Equal(t, want.Columns, got.Columns)
		assert.Equal(t, want.Records(), got.Records())
	}
}

func TestAggregateDisjointKeys(t *testing.T) {
	fetch := func(_ context.Context, _ model.Query, e model.Entity) *model.Table {
		switch e.ID {
		case "A":
			return entityTable("A", []int64{0, 1}, 1)
		case "B":
			return entityTable("B", []int64{2}, 2)
		default:
			return entityTable("C", []int64{1, 3}, 3)
		}
	}
	out := Aggregate(context.Background(), model.Query{}, entities(3), fetch, hourly, 3)
	assert.Equal(t, []string{"A", "B", "C"}, out.Columns)
	assert.Equal(t, [][]string{
		{"2021-01-01", "0", "1", "", ""},
		{"2021-01-01", "1", "1", "", "3"},
		{"2021-01-01", "2", "", "2", ""},
		{"2021-01-01", "3", "", "", "3"},
	}, out.Records())
}

func TestGatherStacksInEntityOrder(t *testing.T) {
	columns := []string{"Entity", "Value"}
	fetch := func(_ context.Context, _ model.Query, e model.Entity) *model.Table {
		if e.ID == "B" {
			return nil
		}
		// finish out of order
		if e.ID == "A" {
			time.Sleep(5 * time.Millisecond)
		}
		tbl := model.NewTable(nil, columns)
		tbl.AddRow(model.Row{Cells: []model.Cell{model.TextCell(e.ID), model.TextCell("1")}})
		tbl.AddRow(model.Row{Cells: []model.Cell{model.TextCell(e.ID), model.TextCell("2")}})
		return tbl
	}
	out := Gather(context.Background(), model.Query{}, entities(3), fetch, nil, columns, 3)
	assert.Equal(t, columns, out.Columns)
	assert.Equal(t, [][]string{{"A", "1"}, {"A", "2"}, {"C", "1"}, {"C", "2"}}, out.Records())

	empty := Gather(context.Background(), model.Query{}, nil, fetch, nil, columns, 3)
	assert.True(t, empty.Empty())
	assert.Equal(t, columns, empty.Columns)
}

func TestAggregateEmptyPolicy(t *testing.T) {
	t.Run("no entities", func(t *testing.T) {
		called := false
		out := Aggregate(context.Background(), model.Query{}, nil, func(context.Context, model.Query, model.Entity) *model.Table {
			called = true
			return nil
		}, hourly, 4)
		assert.False(t, called)
		assert.True(t, out.Empty())
		assert.Empty(t, out.Columns)
		assert.Equal(t, hourly, out.KeyColumns)
	})

	t.Run("all entities empty", func(t *testing.T) {
		out := Aggregate(context.Background(), model.Query{}, entities(3), func(_ context.Context, _ model.Query, e model.Entity) *model.Table {
			if e.ID == "B" {
				return model.NewTable(hourly, []string{"B"})
			}
			return nil
		}, hourly, 2)
		assert.True(t, out.Empty())
		assert.Empty(t, out.Columns)
	})

	t.Run("failed entities are skipped", func(t *testing.T) {
		out := Aggregate(context.Background(), model.Query{}, entities(3), func(_ context.Context, _ model.Query, e model.Entity) *model.Table {
			if e.ID == "B" {
				return nil
			}
			return entityTable(e.Label(), []int64{0}, 1)
		}, hourly, 3)
		assert.Equal(t, []string{"A", "C"}, out.Columns)
	})
}

func TestCollectBoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	fetch := func(_ context.Context, _ model.Query, e model.Entity) *model.Table {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		active.Add(-1)
		return entityTable(e.Label(), []int64{0}, 1)
	}

	results := Collect(context.Background(), model.Query{}, entities(12), fetch, 3)
	require.Len(t, results, 12)
	for i, r := range results {
		assert.Equal(t, string(rune('A'+i)), r.Columns[0], "results are indexed by entity")
	}
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestCollectStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	fetch := func(_ context.Context, _ model.Query, e model.Entity) *model.Table {
		calls.Add(1)
		cancel()
		return entityTable(e.Label(), []int64{0}, 1)
	}

	results := Collect(ctx, model.Query{}, entities(10), fetch, 1)
	assert.Equal(t, int32(1), calls.Load())
	assert.NotNil(t, results[0])
	for _, r := range results[1:] {
		assert.Nil(t, r)
	}
}

func TestFoldSkipsMismatchedKeys(t *testing.T) {
	daily := model.NewTable([]string{model.ColDate}, []string{"D"})
	d, _ := model.ParseDate("2021-01-01")
	daily.AddRow(model.Row{Date: null.TimeFrom(d), Cells: []model.Cell{model.NullCell()}})

	out := Fold([]*model.Table{entityTable("A", []int64{0}, 1), daily}, hourly)
	assert.Equal(t, []string{"A"}, out.Columns)
}
