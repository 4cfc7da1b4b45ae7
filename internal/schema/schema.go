// Package schema holds the static endpoint descriptors that drive the record
// shaper. Each descriptor is plain data: where to fetch, which array to read,
// how to derive the date/hour key, and how to label and order the columns.
package schema

import (
	"fmt"
	"slices"
	"sort"

	"seffaflik/internal/model"
)

// HourExtraction says whether the hour is derived from the timestamp.
type HourExtraction int

const (
	HourNone HourExtraction = iota
	HourFromTimestamp
)

// ParamKind describes the query parameters an endpoint takes.
type ParamKind int

const (
	// ParamsNone: no query parameters.
	ParamsNone ParamKind = iota
	// ParamsRange: startDate, endDate.
	ParamsRange
	// ParamsRangeEntity: startDate, endDate and an EIC-style entity code.
	ParamsRangeEntity
	// ParamsRangeID: startDate, endDate and a numeric id (plant, organization).
	ParamsRangeID
	// ParamsRangePeriod: startDate, endDate and a period enum.
	ParamsRangePeriod
	// ParamsDate: a single date sent under DateParam.
	ParamsDate
	// ParamsEntity: only an entity code, no dates.
	ParamsEntity
	// ParamsDateID: a single date under DateParam and an id under EntityParam.
	ParamsDateID
)

func (k ParamKind) String() string {
	switch k {
	case ParamsNone:
		return "none"
	case ParamsRange:
		return "range"
	case ParamsRangeEntity:
		return "range+entity"
	case ParamsRangeID:
		return "range+id"
	case ParamsRangePeriod:
		return "range+period"
	case ParamsDate:
		return "date"
	case ParamsEntity:
		return "entity"
	case ParamsDateID:
		return "date+id"
	default:
		return "unknown"
	}
}

// Endpoint is one series descriptor.
type Endpoint struct {
	Name     string // catalog key, e.g. "ptf"
	Title    string // human-readable description
	Category string // market, production, consumption, transmission
	Path     string // relative to the API base URL
	ArrayKey string // key under "body" holding the records

	// TimestampField holds a combined "YYYY-MM-DDTHH:..." timestamp; empty
	// for reference lists that have no time key.
	TimestampField string
	Hour           HourExtraction

	// Renames maps source fields to output columns. A dotted source such as
	// "id.donem" reads a field of a nested object.
	Renames       map[string]string
	OutputColumns []string
	// DateColumns are value columns carrying timestamps; only the date part
	// is kept.
	DateColumns []string
	// ValueMaps translates text values of an output column, e.g. API enums to labels.
	ValueMaps map[string]map[string]string

	Params      ParamKind
	EntityParam string // query name for the entity/id filter
	DateParam   string // query name for ParamsDate, default "period"
	// Static query parameters appended to every request.
	Static map[string]string
	// DefaultDayOffset shifts the default date of a date-scoped series,
	// e.g. 1 for tomorrow.
	DefaultDayOffset int
}

// SingleDate reports whether the endpoint takes one date instead of a range.
func (e Endpoint) SingleDate() bool {
	return e.Params == ParamsDate || e.Params == ParamsDateID
}

// KeyColumns returns the leading Tarih/Saat columns of OutputColumns.
func (e Endpoint) KeyColumns() []string {
	var out []string
	for _, c := range e.OutputColumns {
		if c != model.ColDate && c != model.ColHour {
			break
		}
		out = append(out, c)
	}
	return out
}

// ValueColumns returns OutputColumns without the key columns.
func (e Endpoint) ValueColumns() []string {
	return e.OutputColumns[len(e.KeyColumns()):]
}

// SourceField returns the JSON field feeding an output column, or "".
func (e Endpoint) SourceField(column string) string {
	for src, dst := range e.Renames {
		if dst == column {
			return src
		}
	}
	return ""
}

// Validate reports descriptor mistakes. These are programming errors.
func (e Endpoint) Validate() error {
	if e.Name == "" || e.Path == "" || e.ArrayKey == "" {
		return fmt.Errorf("schema %q: name, path and array key are required", e.Name)
	}
	if len(e.OutputColumns) == 0 {
		return fmt.Errorf("schema %q: no output columns", e.Name)
	}
	keys := e.KeyColumns()
	seen := map[string]bool{}
	for i, c := range e.OutputColumns {
		if seen[c] {
			return fmt.Errorf("schema %q: duplicate output column %q", e.Name, c)
		}
		seen[c] = true
		if i >= len(keys) && (c == model.ColDate || c == model.ColHour) {
			return fmt.Errorf("schema %q: key column %q must lead the output columns", e.Name, c)
		}
	}
	if len(keys) > 0 && e.TimestampField == "" {
		return fmt.Errorf("schema %q: key columns need a timestamp field", e.Name)
	}
	hasHour := false
	for _, k := range keys {
		if k == model.ColHour {
			hasHour = true
		}
	}
	if hasHour != (e.Hour == HourFromTimestamp) {
		return fmt.Errorf("schema %q: Saat column and hour extraction disagree", e.Name)
	}
	targets := map[string]bool{}
	for src, dst := range e.Renames {
		if !seen[dst] {
			return fmt.Errorf("schema %q: rename %q -> %q targets no output column", e.Name, src, dst)
		}
		if targets[dst] {
			return fmt.Errorf("schema %q: two fields rename to %q", e.Name, dst)
		}
		targets[dst] = true
	}
	for _, c := range e.ValueColumns() {
		if !targets[c] {
			return fmt.Errorf("schema %q: output column %q has no source field", e.Name, c)
		}
	}
	for c := range e.ValueMaps {
		if !targets[c] {
			return fmt.Errorf("schema %q: value map for unknown column %q", e.Name, c)
		}
	}
	values := e.ValueColumns()
	for _, c := range e.DateColumns {
		if !slices.Contains(values, c) {
			return fmt.Errorf("schema %q: date column %q is not a value column", e.Name, c)
		}
	}
	if e.DefaultDayOffset != 0 && !e.SingleDate() {
		return fmt.Errorf("schema %q: default day offset needs a single-date endpoint", e.Name)
	}
	switch e.Params {
	case ParamsRangeEntity, ParamsRangeID, ParamsEntity, ParamsDateID:
		if e.EntityParam == "" {
			return fmt.Errorf("schema %q: entity parameter name missing", e.Name)
		}
	}
	return nil
}

// Registry indexes endpoints by name.
type Registry struct {
	byName map[string]Endpoint
	names  []string
}

// NewRegistry validates every endpoint and panics on a malformed descriptor.
func NewRegistry(endpoints []Endpoint) *Registry {
	r := &Registry{byName: make(map[string]Endpoint, len(endpoints))}
	for _, e := range endpoints {
		if err := e.Validate(); err != nil {
			panic(err)
		}
		if _, dup := r.byName[e.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate endpoint %q", e.Name))
		}
		r.byName[e.Name] = e
		r.names = append(r.names, e.Name)
	}
	sort.Strings(r.names)
	return r
}

func (r *Registry) Lookup(name string) (Endpoint, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// MustLookup is for names known at compile time.
func (r *Registry) MustLookup(name string) Endpoint {
	e, ok := r.byName[name]
	if !ok {
		panic(fmt.Sprintf("schema: unknown endpoint %q", name))
	}
	return e
}

// All returns the endpoints sorted by name.
func (r *Registry) All() []Endpoint {
	out := make([]Endpoint, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

var defaultRegistry = NewRegistry(catalog)

// Default is the built-in transparency catalog.
func Default() *Registry {
	return defaultRegistry
}
