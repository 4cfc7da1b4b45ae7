package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"seffaflik/internal/model"

	"github.com/guregu/null/v6"
	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smf() *model.Table {
	t := model.NewTable([]string{model.ColDate, model.ColHour}, []string{"SMF", "Sistem Yönü"})
	d, _ := model.ParseDate("2021-01-01")
	t.AddRow(model.Row{Date: null.TimeFrom(d), Hour: null.IntFrom(0), Cells: []model.Cell{
		model.NumberCell(decimal.RequireFromString("1250.75")), model.TextCell("Enerji Açığı"),
	}})
	t.AddRow(model.Row{Date: null.TimeFrom(d), Hour: null.IntFrom(1), Cells: []model.Cell{
		model.NullCell(), model.TextCell("Dengede"),
	}})
	return t
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatTable},
		{"CSV", FormatCSV},
		{" json ", FormatJSON},
		{"parquet", FormatParquet},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := ParseFormat("xlsx")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, smf()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Tarih", "Saat", "SMF", "Sistem Yönü"},
		{"2021-01-01", "0", "1250.75", "Enerji Açığı"},
		{"2021-01-01", "1", "", "Dengede"},
	}, records)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, smf()))
	assert.Contains(t, buf.String(), "Enerji Açığı", "non-ASCII text is not escaped")

	var doc struct {
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
		Count   int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, []any{"2021-01-01", 1.0, nil, "Dengede"}, doc.Rows[1])
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, smf()))
	out := buf.String()
	assert.Contains(t, out, "1250.75")
	assert.Contains(t, out, "Dengede")
}

func TestLong(t *testing.T) {
	recs := Long(smf())
	require.Len(t, recs, 4)

	assert.Equal(t, "SMF", recs[0].Column)
	require.NotNil(t, recs[0].Value)
	assert.Equal(t, 1250.75, *recs[0].Value)
	assert.Equal(t, "2021-01-01", *recs[0].Date)
	assert.Equal(t, int32(0), *recs[0].Hour)

	assert.Equal(t, "Enerji Açığı", *recs[1].Text)
	assert.Nil(t, recs[2].Value, "null cells keep both value and text empty")
	assert.Nil(t, recs[2].Text)
}

func TestWriteFileParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smf.parquet")
	require.NoError(t, WriteFile(path, FormatParquet, smf()))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[LongRecord](file)
	defer reader.Close()

	rows := make([]LongRecord, reader.NumRows())
	n, err := reader.Read(rows)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, 4, n)
	assert.Equal(t, Long(smf()), rows)
}

func TestParquetSchema(t *testing.T) {
	schema := parquet.SchemaOf(new(LongRecord))
	for _, col := range []string{"date", "hour", "column", "value", "text"} {
		_, ok := schema.Lookup(col)
		assert.True(t, ok, "column %s", col)
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), FormatCSV, smf())
	assert.Error(t, err)
}
