// Package export writes tables as CSV, JSON, Parquet or a terminal table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"seffaflik/internal/model"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

type Format string

const (
	FormatTable   Format = "table"
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatCSV, FormatJSON, FormatParquet:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, csv, json or parquet)", s)
	}
}

// Write renders t to w in format.
func Write(w io.Writer, format Format, t *model.Table) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatJSON:
		return WriteJSON(w, t)
	case FormatParquet:
		return WriteParquet(w, t)
	case FormatTable, "":
		return Render(w, t)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteFile creates path and writes t to it.
func WriteFile(path string, format Format, t *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(f, format, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes a header row followed by one record per row. Null cells
// are empty.
func WriteCSV(w io.Writer, t *model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header()); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Records()); err != nil {
		return err
	}
	return cw.Error()
}

// WriteJSON writes {"columns": [...], "rows": [[...]], "count": n}.
func WriteJSON(w io.Writer, t *model.Table) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Render prints t as an aligned terminal table.
func Render(w io.Writer, t *model.Table) error {
	table := tablewriter.NewWriter(w)
	table.Header(t.Header())
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	if err := table.Bulk(t.Records()); err != nil {
		return err
	}
	return table.Render()
}
