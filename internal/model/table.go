package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
)

// Key column labels used by every time-indexed table.
const (
	ColDate = "Tarih"
	ColHour = "Saat"
)

// DateLayout is the calendar date format accepted by the API and returned in tables.
const DateLayout = "2006-01-02"

// Cell is a single table value: a number, a piece of text, or null.
type Cell struct {
	Number decimal.NullDecimal
	Text   null.String
}

func NumberCell(d decimal.Decimal) Cell {
	return Cell{Number: decimal.NewNullDecimal(d)}
}

func TextCell(s string) Cell {
	return Cell{Text: null.StringFrom(s)}
}

func NullCell() Cell {
	return Cell{}
}

func (c Cell) IsNull() bool {
	return !c.Number.Valid && !c.Text.Valid
}

// Float returns the numeric value as float64. ok is false for text and null cells.
func (c Cell) Float() (v float64, ok bool) {
	if !c.Number.Valid {
		return 0, false
	}
	return c.Number.Decimal.InexactFloat64(), true
}

// String renders the cell for CSV and terminal output. Null renders as "".
func (c Cell) String() string {
	switch {
	case c.Number.Valid:
		return c.Number.Decimal.String()
	case c.Text.Valid:
		return c.Text.String
	default:
		return ""
	}
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch {
	case c.Number.Valid:
		return []byte(c.Number.Decimal.String()), nil
	case c.Text.Valid:
		return json.Marshal(c.Text.String)
	default:
		return []byte("null"), nil
	}
}

// Row is one shaped record. Date and Hour are only meaningful when the owning
// table lists them in KeyColumns.
type Row struct {
	Date  null.Time
	Hour  null.Int
	Cells []Cell
}

// Key identifies a row for joining and sorting. Hour is -1 when absent.
type Key struct {
	Date string `json:"date"`
	Hour int64  `json:"hour"`
}

func (r Row) Key() Key {
	k := Key{Hour: -1}
	if r.Date.Valid {
		k.Date = r.Date.Time.Format(DateLayout)
	}
	if r.Hour.Valid {
		k.Hour = r.Hour.Int64
	}
	return k
}

// Less orders keys by date, then hour. A missing hour sorts first.
func (k Key) Less(o Key) bool {
	if k.Date != o.Date {
		return k.Date < o.Date
	}
	return k.Hour < o.Hour
}

// Table is a labeled, optionally date/hour-indexed result set.
//
// KeyColumns is an ordered subset of {Tarih, Saat}; Columns are the value
// columns and every Row carries exactly len(Columns) cells.
type Table struct {
	KeyColumns []string
	Columns    []string
	Rows       []Row
}

func NewTable(keyColumns, columns []string) *Table {
	return &Table{
		KeyColumns: append([]string(nil), keyColumns...),
		Columns:    append([]string(nil), columns...),
		Rows:       []Row{},
	}
}

// EmptyTable is the identity element of OuterJoin for the given key columns.
func EmptyTable(keyColumns []string) *Table {
	return NewTable(keyColumns, nil)
}

// Header returns key columns followed by value columns.
func (t *Table) Header() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.KeyColumns)+len(t.Columns))
	out = append(out, t.KeyColumns...)
	return append(out, t.Columns...)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return t.Len() == 0
}

func (t *Table) HasDate() bool {
	return t != nil && containsString(t.KeyColumns, ColDate)
}

func (t *Table) HasHour() bool {
	return t != nil && containsString(t.KeyColumns, ColHour)
}

// ColumnIndex returns the position of a value column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the cells of a value column, or nil if absent.
func (t *Table) Column(name string) []Cell {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]Cell, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Cells[idx]
	}
	return out
}

// AddRow appends a row; cells must line up with Columns.
func (t *Table) AddRow(r Row) {
	if len(r.Cells) != len(t.Columns) {
		panic(fmt.Sprintf("model: row has %d cells, table has %d columns", len(r.Cells), len(t.Columns)))
	}
	t.Rows = append(t.Rows, r)
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := NewTable(t.KeyColumns, t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = Row{Date: r.Date, Hour: r.Hour, Cells: append([]Cell(nil), r.Cells...)}
	}
	return out
}

// Rename changes a value column label in place. It reports whether the column existed.
func (t *Table) Rename(from, to string) bool {
	idx := t.ColumnIndex(from)
	if idx < 0 {
		return false
	}
	t.Columns[idx] = to
	return true
}

// Select keeps the key columns plus the named value columns, in the given order.
// Unknown names are skipped.
func (t *Table) Select(columns ...string) *Table {
	idx := make([]int, 0, len(columns))
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		if i := t.ColumnIndex(c); i >= 0 {
			idx = append(idx, i)
			names = append(names, c)
		}
	}
	out := NewTable(t.KeyColumns, names)
	for _, r := range t.Rows {
		cells := make([]Cell, len(idx))
		for j, i := range idx {
			cells[j] = r.Cells[i]
		}
		out.Rows = append(out.Rows, Row{Date: r.Date, Hour: r.Hour, Cells: cells})
	}
	return out
}

// Derive appends a computed value column.
func (t *Table) Derive(name string, fn func(Row) Cell) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i].Cells = append(t.Rows[i].Cells, fn(t.Rows[i]))
	}
}

// Difference appends name = minuend - subtrahend. The result is null when
// either operand is not numeric.
func (t *Table) Difference(name, minuend, subtrahend string) {
	a, b := t.ColumnIndex(minuend), t.ColumnIndex(subtrahend)
	t.Derive(name, func(r Row) Cell {
		if a < 0 || b < 0 || !r.Cells[a].Number.Valid || !r.Cells[b].Number.Valid {
			return NullCell()
		}
		return NumberCell(r.Cells[a].Number.Decimal.Sub(r.Cells[b].Number.Decimal))
	})
}

// Sum appends name = the sum of columns. The result is null when any operand
// is not numeric.
func (t *Table) Sum(name string, columns ...string) {
	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = t.ColumnIndex(c)
	}
	t.Derive(name, func(r Row) Cell {
		total := decimal.Zero
		for _, i := range idx {
			if i < 0 || !r.Cells[i].Number.Valid {
				return NullCell()
			}
			total = total.Add(r.Cells[i].Number.Decimal)
		}
		return NumberCell(total)
	})
}

// FillNull replaces null cells of a value column.
func (t *Table) FillNull(column string, v Cell) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return
	}
	for i := range t.Rows {
		if t.Rows[i].Cells[idx].IsNull() {
			t.Rows[i].Cells[idx] = v
		}
	}
}

// SortByKey orders rows by (date, hour) ascending, keeping input order for ties.
func (t *Table) SortByKey() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Key().Less(t.Rows[j].Key())
	})
}

// Records renders the table as header-aligned strings, without the header row.
func (t *Table) Records() [][]string {
	out := make([][]string, 0, t.Len())
	if t == nil {
		return out
	}
	for _, r := range t.Rows {
		rec := make([]string, 0, len(t.KeyColumns)+len(r.Cells))
		for _, k := range t.KeyColumns {
			rec = append(rec, keyString(r, k))
		}
		for _, c := range r.Cells {
			rec = append(rec, c.String())
		}
		out = append(out, rec)
	}
	return out
}

// Values returns one row as header-aligned cells. Key columns become text
// (date) or numeric (hour) cells.
func (t *Table) Values(i int) []Cell {
	r := t.Rows[i]
	out := make([]Cell, 0, len(t.KeyColumns)+len(r.Cells))
	for _, k := range t.KeyColumns {
		switch {
		case k == ColDate && r.Date.Valid:
			out = append(out, TextCell(r.Date.Time.Format(DateLayout)))
		case k == ColHour && r.Hour.Valid:
			out = append(out, NumberCell(decimal.NewFromInt(r.Hour.Int64)))
		default:
			out = append(out, NullCell())
		}
	}
	return append(out, r.Cells...)
}

type tableJSON struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
	Count   int      `json:"count"`
}

func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{Columns: t.Header(), Rows: make([][]Cell, 0, t.Len())}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	for i := 0; i < t.Len(); i++ {
		out.Rows = append(out.Rows, t.Values(i))
	}
	out.Count = len(out.Rows)
	return json.Marshal(out)
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func keyString(r Row, column string) string {
	switch column {
	case ColDate:
		if r.Date.Valid {
			return r.Date.Time.Format(DateLayout)
		}
	case ColHour:
		if r.Hour.Valid {
			return strconv.FormatInt(r.Hour.Int64, 10)
		}
	}
	return ""
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
