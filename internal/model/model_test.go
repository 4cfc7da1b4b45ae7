package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourlyRow(date string, hour int64, values ...float64) Row {
	d, _ := ParseDate(date)
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NumberCell(decimal.NewFromFloat(v))
	}
	return Row{Date: null.TimeFrom(d), Hour: null.IntFrom(hour), Cells: cells}
}

func hourlyTable(column string, rows ...Row) *Table {
	t := NewTable([]string{ColDate, ColHour}, []string{column})
	for _, r := range rows {
		t.AddRow(r)
	}
	return t
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "12.5", NumberCell(decimal.RequireFromString("12.50")).String())
	assert.Equal(t, "Enerji Fazlası", TextCell("Enerji Fazlası").String())
	assert.Equal(t, "", NullCell().String())
	assert.True(t, NullCell().IsNull())

	v, ok := NumberCell(decimal.NewFromInt(3)).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	_, ok = TextCell("x").Float()
	assert.False(t, ok)
}

func TestRowKeyOrdering(t *testing.T) {
	a := hourlyRow("2021-01-01", 23).Key()
	b := hourlyRow("2021-01-02", 0).Key()
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	dateOnly := Row{Date: hourlyRow("2021-01-02", 0).Date}.Key()
	assert.Equal(t, int64(-1), dateOnly.Hour)
	assert.True(t, dateOnly.Less(b), "a missing hour sorts first")
}

func TestAddRowPanicsOnWidthMismatch(t *testing.T) {
	tbl := NewTable(nil, []string{"a", "b"})
	assert.Panics(t, func() { tbl.AddRow(Row{Cells: []Cell{NullCell()}}) })
}

func TestTableRecordsAndJSON(t *testing.T) {
	tbl := hourlyTable("PTF", hourlyRow("2021-01-01", 0, 1000), hourlyRow("2021-01-01", 1, 999.5))

	assert.Equal(t, []string{ColDate, ColHour, "PTF"}, tbl.Header())
	assert.Equal(t, [][]string{
		{"2021-01-01", "0", "1000"},
		{"2021-01-01", "1", "999.5"},
	}, tbl.Records())

	raw, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"columns": ["Tarih", "Saat", "PTF"],
		"rows": [["2021-01-01", 0, 1000], ["2021-01-01", 1, 999.5]],
		"count": 2
	}`, string(raw))
}

func TestEmptyTableJSON(t *testing.T) {
	raw, err := json.Marshal(EmptyTable(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"columns": [], "rows": [], "count": 0}`, string(raw))
}

func TestSelectRenameDifference(t *testing.T) {
	tbl := NewTable([]string{ColDate, ColHour}, []string{"Alış", "Satış", "Diğer"})
	tbl.AddRow(hourlyRow("2021-01-01", 0, 10, 4, 1))
	r := hourlyRow("2021-01-01", 1, 0, 0, 0)
	r.Cells[1] = NullCell()
	tbl.AddRow(r)

	tbl.Difference("Net", "Alış", "Satış")
	assert.Equal(t, "6", tbl.Rows[0].Cells[3].String())
	assert.True(t, tbl.Rows[1].Cells[3].IsNull())

	sel := tbl.Select("Net", "missing", "Alış")
	assert.Equal(t, []string{"Net", "Alış"}, sel.Columns)
	assert.Equal(t, "6", sel.Rows[0].Cells[0].String())

	assert.True(t, sel.Rename("Net", "Fark"))
	assert.False(t, sel.Rename("Net", "Fark"))
	assert.Equal(t, []string{"Fark", "Alış"}, sel.Columns)

	tbl.FillNull("Satış", NumberCell(decimal.Zero))
	assert.Equal(t, "0", tbl.Rows[1].Cells[1].String())
}

func TestSumNullOperand(t *testing.T) {
	tbl := NewTable([]string{ColDate, ColHour}, []string{"Blok", "Saatlik"})
	tbl.AddRow(hourlyRow("2021-01-01", 0, 1.5, 2))
	r := hourlyRow("2021-01-01", 1, 3, 0)
	r.Cells[1] = NullCell()
	tbl.AddRow(r)

	tbl.Sum("Toplam", "Blok", "Saatlik")
	assert.Equal(t, "3.5", tbl.Rows[0].Cells[2].String())
	assert.True(t, tbl.Rows[1].Cells[2].IsNull())
}

func TestConcatKeepsOrderAndSkipsMismatched(t *testing.T) {
	columns := []string{"Org", "Birim"}
	a := NewTable(nil, columns)
	a.AddRow(Row{Cells: []Cell{TextCell("B"), TextCell("b1")}})
	a.AddRow(Row{Cells: []Cell{TextCell("B"), TextCell("b2")}})
	b := NewTable(nil, columns)
	b.AddRow(Row{Cells: []Cell{TextCell("A"), TextCell("a1")}})
	other := NewTable(nil, []string{"Org"})
	other.AddRow(Row{Cells: []Cell{TextCell("X")}})

	out := Concat(nil, columns, a, nil, NewTable(nil, columns), other, b)

	assert.Equal(t, [][]string{{"B", "b1"}, {"B", "b2"}, {"A", "a1"}}, out.Records())
	out.Rows[0].Cells[0] = NullCell()
	assert.Equal(t, "B", a.Rows[0].Cells[0].String(), "inputs are not modified")
	assert.True(t, Concat(nil, columns).Empty())
}

func TestCloneIsDeep(t *testing.T) {
	tbl := hourlyTable("v", hourlyRow("2021-01-01", 0, 1))
	c := tbl.Clone()
	c.Rows[0].Cells[0] = NullCell()
	c.Columns[0] = "w"
	assert.Equal(t, "1", tbl.Rows[0].Cells[0].String())
	assert.Equal(t, "v", tbl.Columns[0])
}

func TestOuterJoin(t *testing.T) {
	left := hourlyTable("A", hourlyRow("2021-01-01", 0, 1), hourlyRow("2021-01-01", 1, 2))
	right := hourlyTable("B", hourlyRow("2021-01-01", 1, 20), hourlyRow("2021-01-01", 2, 30))

	out := OuterJoin(left, right)

	assert.Equal(t, []string{"A", "B"}, out.Columns)
	assert.Equal(t, [][]string{
		{"2021-01-01", "0", "1", ""},
		{"2021-01-01", "1", "2", "20"},
		{"2021-01-01", "2", "", "30"},
	}, out.Records())
	assert.Equal(t, 2, left.Len(), "inputs are not modified")
}

func TestInnerJoinDropsUnmatched(t *testing.T) {
	left := hourlyTable("A", hourlyRow("2021-01-01", 0, 1), hourlyRow("2021-01-01", 1, 2))
	right := hourlyTable("B", hourlyRow("2021-01-01", 1, 20))

	out := Join(left, right, JoinInner)
	assert.Equal(t, [][]string{{"2021-01-01", "1", "2", "20"}}, out.Records())
}

func TestJoinIdentity(t *testing.T) {
	tbl := hourlyTable("A", hourlyRow("2021-01-02", 0, 1), hourlyRow("2021-01-01", 0, 2))
	id := EmptyTable([]string{ColDate, ColHour})

	for name, out := range map[string]*Table{
		"left identity":  OuterJoin(id, tbl),
		"right identity": OuterJoin(tbl, id),
		"nil left":       OuterJoin(nil, tbl),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, []string{"A"}, out.Columns)
			assert.Equal(t, "2021-01-01", out.Records()[0][0], "result is sorted by key")
		})
	}

	assert.True(t, OuterJoin(nil, nil).Empty())
}

func TestJoinCollidingNames(t *testing.T) {
	a := hourlyTable("X", hourlyRow("2021-01-01", 0, 1))
	b := hourlyTable("X", hourlyRow("2021-01-01", 0, 2))
	c := hourlyTable("X", hourlyRow("2021-01-01", 0, 3))

	out := OuterJoin(OuterJoin(a, b), c)
	assert.Equal(t, []string{"X", "X (2)", "X (3)"}, out.Columns)
	assert.Equal(t, [][]string{{"2021-01-01", "0", "1", "2", "3"}}, out.Records())
}

func TestJoinKeyMismatchPanics(t *testing.T) {
	hourly := hourlyTable("A", hourlyRow("2021-01-01", 0, 1))
	daily := NewTable([]string{ColDate}, []string{"B"})
	daily.AddRow(Row{Date: hourlyRow("2021-01-01", 0).Date, Cells: []Cell{NullCell()}})
	assert.Panics(t, func() { OuterJoin(hourly, daily) })
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("series ptf: %w", &Error{Kind: KindAuthentication, Code: "UNAUTHORIZED", StatusCode: 401})

	assert.True(t, errors.Is(err, ErrAuthentication))
	assert.False(t, errors.Is(err, ErrRequest))
	assert.True(t, errors.Is(err, &Error{Kind: KindAuthentication, Code: "UNAUTHORIZED"}))
	assert.False(t, errors.Is(err, &Error{Kind: KindAuthentication, Code: "MISSING_API_KEY"}))
	assert.Equal(t, KindAuthentication, KindOf(err))
	assert.Equal(t, ErrorKind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "AuthenticationError", KindAuthentication.String())

	v := NewValidationError("DATE_FORMAT", "bad date %q", "2021-13-01")
	assert.Equal(t, `bad date "2021-13-01"`, v.Error())
	assert.True(t, errors.Is(v, ErrValidation))

	wrapped := &Error{Kind: KindConnectivity, Message: "could not connect", Err: errors.New("refused")}
	assert.Equal(t, "could not connect: refused", wrapped.Error())
}

func TestQueryDefaults(t *testing.T) {
	// 22:30 UTC is already the next day in Istanbul
	now := time.Date(2021, 3, 1, 22, 30, 0, 0, time.UTC)
	today := Today(now)
	assert.Equal(t, "2021-03-02", today)

	q := Query{Start: "2021-01-01"}.WithDefaults(today)
	assert.Equal(t, "2021-01-01", q.Start)
	assert.Equal(t, "2021-03-02", q.End)
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want Period
		api  string
	}{
		{"saatlik", PeriodHourly, ""},
		{"Günlük", PeriodDaily, "DAILY"},
		{" aylik ", PeriodMonthly, "MONTHLY"},
		{"YILLIK", PeriodYearly, "YEAR"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, ok := ParsePeriod(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.api, p.APIValue())
		})
	}
	_, ok := ParsePeriod("weekly")
	assert.False(t, ok)
}

func TestShiftDays(t *testing.T) {
	assert.Equal(t, "2021-01-01", ShiftDays("2020-12-31", 1))
	assert.Equal(t, "2021-02-28", ShiftDays("2021-03-01", -1))
	assert.Equal(t, "2021-01-01", ShiftDays("2021-01-01", 0))
	assert.Equal(t, "01.01.2021", ShiftDays("01.01.2021", 1))
}

func TestParseVolumeType(t *testing.T) {
	for in, want := range map[string]VolumeType{"": VolumeNet, "net": VolumeNet, "arz": VolumeSupply, "Demand": VolumeDemand} {
		got, ok := ParseVolumeType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseVolumeType("both")
	assert.False(t, ok)
}

func TestEntityLabel(t *testing.T) {
	assert.Equal(t, "ENJSA", Entity{ID: "1", Name: "Enerjisa", ShortName: "ENJSA"}.Label())
	assert.Equal(t, "Enerjisa", Entity{ID: "1", Name: "Enerjisa"}.Label())
	assert.Equal(t, "1", Entity{ID: "1"}.Label())
	assert.True(t, EntityPlants.Valid())
	assert.False(t, EntityKind("regions").Valid())
}
