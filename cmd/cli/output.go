package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"seffaflik/internal/analysis"
	"seffaflik/internal/export"
	"seffaflik/internal/model"
	"seffaflik/internal/schema"
	"seffaflik/internal/transparency"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// emit writes t in the --output format to stdout or --out.
func emit(t *model.Table) error {
	format, err := export.ParseFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	warn := color.New(color.FgYellow).SprintFunc()
	if t.Empty() {
		fmt.Fprintln(os.Stderr, warn("No data returned. Check the dates, the entity and the API key."))
	}

	if path := viper.GetString("out"); path != "" {
		if err := export.WriteFile(path, format, t); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, color.GreenString("Wrote %d rows to %s", t.Len(), path))
		return nil
	}
	if format == export.FormatParquet && term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write parquet to a terminal; use --out")
	}
	if format == export.FormatTable && tooWide(t) {
		fmt.Fprintln(os.Stderr, warn("Table is wider than the terminal; consider --output csv."))
	}
	return export.Write(os.Stdout, format, t)
}

// tooWide estimates the rendered header width against the terminal.
func tooWide(t *model.Table) bool {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return false
	}
	total := 1
	for _, h := range t.Header() {
		total += len([]rune(h)) + 3
	}
	return total > width
}

func catalogTable() *model.Table {
	t := model.NewTable(nil, []string{"Name", "Kind", "Category", "Parameters", "Title"})
	for _, ep := range schema.Default().All() {
		t.AddRow(textRow(ep.Name, "series", ep.Category, ep.Params.String(), ep.Title))
	}
	for _, c := range transparency.Composites() {
		t.AddRow(textRow(c.Name, "composite", c.Category, "range", c.Title))
	}
	for _, f := range transparency.FanOuts() {
		params := "range"
		switch {
		case f.Listing():
			params = "date"
		case f.Volume:
			params = "range+volume-type"
		}
		t.AddRow(textRow(f.Name, "fan-out", string(f.Entities), params, f.Title))
	}
	return t
}

func entityKindArgs() []string {
	out := make([]string, len(model.EntityKinds))
	for i, k := range model.EntityKinds {
		out[i] = string(k)
	}
	return out
}

func entityTable(entities []model.Entity) *model.Table {
	t := model.NewTable(nil, []string{"Id", "Name", "Code", "Short Name", "Status"})
	for _, e := range entities {
		t.AddRow(textRow(e.ID, e.Name, e.Code, e.ShortName, e.Status))
	}
	return t
}

func rankTable(t *model.Table, limit int) *model.Table {
	if limit <= 0 {
		limit = 10
	}
	out := model.NewTable(nil, []string{"Rank", "Entity", "Total", "Mean", "Max", "Count"})
	for i, s := range analysis.Top(analysis.Rank(t), limit) {
		out.AddRow(model.Row{Cells: []model.Cell{
			model.TextCell(strconv.Itoa(i + 1)),
			model.TextCell(s.Column),
			number(s.Total),
			number(s.Mean),
			number(s.Max),
			model.NumberCell(decimal.NewFromInt(int64(s.Count))),
		}})
	}
	return out
}

func textRow(values ...string) model.Row {
	cells := make([]model.Cell, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			cells[i] = model.NullCell()
			continue
		}
		cells[i] = model.TextCell(v)
	}
	return model.Row{Cells: cells}
}

func number(v float64) model.Cell {
	return model.NumberCell(decimal.NewFromFloat(v).Round(2))
}
