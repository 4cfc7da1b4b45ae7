// Package fanout runs one fetch per entity on a worker pool and merges the
// per-entity tables, either with an outer join on their date/hour keys or by
// stacking their rows.
package fanout

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"seffaflik/internal/model"
)

// EntityFetch performs one gateway+shaper round trip scoped to a single
// entity. It returns an empty or nil table when the entity has no data or
// its request failed; failures are reported by the fetch itself.
type EntityFetch func(ctx context.Context, q model.Query, e model.Entity) *model.Table

// DefaultWorkers is the pool size used when workers <= 0.
var DefaultWorkers = runtime.GOMAXPROCS(0)

type task struct {
	idx    int
	entity model.Entity
}

// Aggregate fetches every entity concurrently and folds the non-empty
// results, in entity-list order, into one table keyed by keys.
//
// The result never depends on worker completion order. Zero entities, or
// entities that all return nothing, yield model.EmptyTable(keys).
func Aggregate(ctx context.Context, q model.Query, entities []model.Entity, fetch EntityFetch, keys []string, workers int) *model.Table {
	results := Collect(ctx, q, entities, fetch, workers)
	return Fold(results, keys)
}

// Gather fetches every entity concurrently and stacks the non-empty results
// in entity-list order. Only tables laid out as keys+columns are kept.
func Gather(ctx context.Context, q model.Query, entities []model.Entity, fetch EntityFetch, keys, columns []string, workers int) *model.Table {
	return model.Concat(keys, columns, Collect(ctx, q, entities, fetch, workers)...)
}

// Collect runs fetch for each entity and returns the results indexed like
// entities. Entities not started before ctx is done get a nil result.
func Collect(ctx context.Context, q model.Query, entities []model.Entity, fetch EntityFetch, workers int) []*model.Table {
	results := make([]*model.Table, len(entities))
	if len(entities) == 0 {
		return results
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	workers = min(workers, len(entities))

	taskCh := make(chan task, len(entities))
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for t := range taskCh {
				if ctx.Err() != nil {
					continue
				}
				// each worker writes only its own index
				results[t.idx] = fetch(ctx, q, t.entity)
			}
		})
	}

	for i, e := range entities {
		taskCh <- task{idx: i, entity: e}
	}
	close(taskCh)
	wg.Wait()

	return results
}

// Fold outer-joins tables left to right, starting from the empty table.
// Nil, empty and differently keyed tables are skipped.
func Fold(tables []*model.Table, keys []string) *model.Table {
	acc := model.EmptyTable(keys)
	for _, t := range tables {
		if t.Empty() || !slices.Equal(t.KeyColumns, keys) {
			continue
		}
		acc = model.OuterJoin(acc, t)
	}
	return acc
}
