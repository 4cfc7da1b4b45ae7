package export

import (
	"fmt"
	"io"

	"seffaflik/internal/model"

	"github.com/parquet-go/parquet-go"
)

// LongRecord is one cell of a table in long (tidy) form. Wide tables have
// per-call column sets, so Parquet output uses this fixed schema instead.
type LongRecord struct {
	Date   *string  `parquet:"date,optional,snappy"`
	Hour   *int32   `parquet:"hour,optional,snappy"`
	Column string   `parquet:"column,snappy"`
	Value  *float64 `parquet:"value,optional,snappy"`
	Text   *string  `parquet:"text,optional,snappy"`
}

// Long flattens t into one record per value cell, row by row.
func Long(t *model.Table) []LongRecord {
	out := make([]LongRecord, 0, t.Len()*len(t.Columns))
	for _, r := range t.Rows {
		var date *string
		var hour *int32
		if t.HasDate() && r.Date.Valid {
			d := r.Date.Time.Format(model.DateLayout)
			date = &d
		}
		if t.HasHour() && r.Hour.Valid {
			h := int32(r.Hour.Int64)
			hour = &h
		}
		for i, c := range r.Cells {
			rec := LongRecord{Date: date, Hour: hour, Column: t.Columns[i]}
			if v, ok := c.Float(); ok {
				rec.Value = &v
			} else if c.Text.Valid {
				s := c.Text.String
				rec.Text = &s
			}
			out = append(out, rec)
		}
	}
	return out
}

// WriteParquet writes t in long form.
func WriteParquet(w io.Writer, t *model.Table) error {
	writer := parquet.NewGenericWriter[LongRecord](w)
	if _, err := writer.Write(Long(t)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish parquet file: %w", err)
	}
	return nil
}
