// Package shape converts a decoded API response body into a labeled table
// using a static endpoint descriptor.
package shape

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"seffaflik/internal/model"
	"seffaflik/internal/schema"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// Shape reads body[ep.ArrayKey] and produces a table with ep's output columns.
//
// A missing array, a non-object element, an unparsable timestamp (or one
// without an hour when the endpoint is hourly), or a value field absent from
// every element is a ShapeError. A field absent from only
// some elements yields null cells. An empty array yields an empty table with
// the full column set.
func Shape(body map[string]any, ep schema.Endpoint) (*model.Table, error) {
	raw, ok := body[ep.ArrayKey]
	if !ok {
		return nil, model.NewShapeError("%s: response body has no %q array", ep.Name, ep.ArrayKey)
	}
	items, ok := raw.([]any)
	if !ok {
		if raw == nil {
			items = nil
		} else {
			return nil, model.NewShapeError("%s: %q is %T, not an array", ep.Name, ep.ArrayKey, raw)
		}
	}

	keys := ep.KeyColumns()
	columns := ep.ValueColumns()
	table := model.NewTable(keys, columns)

	sources := make([]string, len(columns))
	seen := make([]bool, len(columns))
	dateOnly := make([]bool, len(columns))
	for i, c := range columns {
		sources[i] = ep.SourceField(c)
		dateOnly[i] = slices.Contains(ep.DateColumns, c)
	}
	wantDate, wantHour := false, false
	for _, k := range keys {
		switch k {
		case model.ColDate:
			wantDate = true
		case model.ColHour:
			wantHour = true
		}
	}

	for n, it := range items {
		rec, ok := it.(map[string]any)
		if !ok {
			return nil, model.NewShapeError("%s: element %d is %T, not an object", ep.Name, n, it)
		}
		row := model.Row{Cells: make([]model.Cell, len(columns))}
		if len(keys) > 0 {
			date, hour, err := splitTimestamp(rec[ep.TimestampField], wantHour)
			if err != nil {
				return nil, model.NewShapeError("%s: element %d field %q: %v", ep.Name, n, ep.TimestampField, err)
			}
			if wantDate {
				row.Date = null.TimeFrom(date)
			}
			if wantHour {
				row.Hour = null.IntFrom(hour)
			}
		}
		for i, src := range sources {
			v, present := field(rec, src)
			if !present {
				row.Cells[i] = model.NullCell()
				continue
			}
			seen[i] = true
			cell, err := toCell(v)
			if err != nil {
				return nil, model.NewShapeError("%s: element %d field %q: %v", ep.Name, n, src, err)
			}
			if dateOnly[i] && cell.Text.Valid {
				if cell, err = datePart(cell.Text.String); err != nil {
					return nil, model.NewShapeError("%s: element %d field %q: %v", ep.Name, n, src, err)
				}
			}
			if m, ok := ep.ValueMaps[columns[i]]; ok && cell.Text.Valid {
				if label, ok := m[cell.Text.String]; ok {
					cell = model.TextCell(label)
				}
			}
			row.Cells[i] = cell
		}
		table.AddRow(row)
	}

	if len(items) > 0 {
		for i, ok := range seen {
			if !ok {
				return nil, model.NewShapeError("%s: field %q missing from every record", ep.Name, sources[i])
			}
		}
	}
	return table, nil
}

// field reads a possibly dotted path such as "id.donem".
func field(rec map[string]any, path string) (any, bool) {
	cur := rec
	for {
		name, rest, nested := strings.Cut(path, ".")
		v, ok := cur[name]
		if !ok || !nested {
			return v, ok
		}
		if cur, ok = v.(map[string]any); !ok {
			return nil, false
		}
		path = rest
	}
}

func datePart(s string) (model.Cell, error) {
	if len(s) < 10 {
		return model.Cell{}, fmt.Errorf("timestamp %q too short", s)
	}
	if _, err := model.ParseDate(s[:10]); err != nil {
		return model.Cell{}, fmt.Errorf("timestamp %q: bad date", s)
	}
	return model.TextCell(s[:10]), nil
}

// splitTimestamp takes the date from the first ten characters and the hour
// from characters 11-12 of an ISO-8601 timestamp such as 2021-01-01T05:00:00+03:00.
// The wall-clock values are kept as written; no zone conversion happens.
// A date-only timestamp is accepted only when no hour is wanted.
func splitTimestamp(v any, wantHour bool) (time.Time, int64, error) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, 0, fmt.Errorf("timestamp is %T, not a string", v)
	}
	if len(s) < 10 {
		return time.Time{}, 0, fmt.Errorf("timestamp %q too short", s)
	}
	date, err := model.ParseDate(s[:10])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("timestamp %q: bad date", s)
	}
	if len(s) < 13 {
		if wantHour {
			return time.Time{}, 0, fmt.Errorf("timestamp %q has no hour", s)
		}
		return date, 0, nil
	}
	hour, err := strconv.ParseInt(s[11:13], 10, 64)
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, 0, fmt.Errorf("timestamp %q: bad hour", s)
	}
	return date, hour, nil
}

func toCell(v any) (model.Cell, error) {
	switch x := v.(type) {
	case nil:
		return model.NullCell(), nil
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return model.Cell{}, fmt.Errorf("number %q: %w", x, err)
		}
		return model.NumberCell(d), nil
	case float64:
		return model.NumberCell(decimal.NewFromFloat(x)), nil
	case int:
		return model.NumberCell(decimal.NewFromInt(int64(x))), nil
	case int64:
		return model.NumberCell(decimal.NewFromInt(x)), nil
	case string:
		return model.TextCell(x), nil
	case bool:
		return model.TextCell(strconv.FormatBool(x)), nil
	default:
		return model.Cell{}, fmt.Errorf("unsupported value of type %T", v)
	}
}
