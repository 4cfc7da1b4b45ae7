package transparency

import (
	"context"
	"sort"

	"seffaflik/internal/model"

	"github.com/shopspring/decimal"
)

// Composite is an hourly series assembled from other catalog series by an
// inner join on Tarih and Saat. Hours missing from any part are dropped.
type Composite struct {
	Name     string
	Title    string
	Category string
	Columns  []string

	parts []part
}

// part fetches one catalog series and reduces it to a single value column.
type part func(s *Service, ctx context.Context, q model.Query) *model.Table

var composites map[string]Composite

// composites is filled in init because its parts call Series, which reads
// composites; a map literal initializer would form an initialization cycle.
func init() {
	composites = map[string]Composite{
		"fiyatlar": {
			Name: "fiyatlar", Title: "Hourly PTF, intraday AOF and SMF side by side", Category: "market",
			Columns: []string{"PTF", "AOF", "SMF"},
			parts: []part{
				column("ptf", "PTF", "PTF"),
				column("gip-aof", "AOF", "AOF"),
				column("smf", "SMF", "SMF"),
			},
		},
		"piyasa-hacmi-saatlik": {
			Name: "piyasa-hacmi-saatlik", Title: "Hourly market volumes (İA, GÖP, GİP, DGP)", Category: "market",
			Columns: []string{"İA", "GÖP", "GİP", "DGP"},
			parts: []part{
				column("ia-satis", "Arz Miktarı", "İA"),
				column("gop-hacim", "Eşleşme Miktarı", "GÖP"),
				intradayVolume,
				balancingVolume,
			},
		},
	}
}

// hourlyComposites routes period-aware series to their hourly composite when
// the query asks for hourly figures.
var hourlyComposites = map[string]string{
	"piyasa-hacmi": "piyasa-hacmi-saatlik",
}

// Composites lists the composite series sorted by name.
func Composites() []Composite {
	out := make([]Composite, 0, len(composites))
	for _, c := range composites {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func LookupComposite(name string) (Composite, bool) {
	c, ok := composites[name]
	return c, ok
}

// HasHourlyComposite reports whether hourly queries of series are served by
// a composite rather than rejected.
func HasHourlyComposite(series string) bool {
	_, ok := composites[hourlyComposites[series]]
	return ok
}

func (c Composite) empty() *model.Table {
	return model.NewTable(hourly, c.Columns)
}

// composite fetches the parts one after another. The first empty part ends
// the run, since the inner join would discard everything anyway.
func (s *Service) composite(ctx context.Context, c Composite, q model.Query) *model.Table {
	q = q.WithDefaults(s.today())
	q.Period = ""
	if !s.checker().DateRange(q.Start, q.End) {
		return c.empty()
	}
	var acc *model.Table
	for _, p := range c.parts {
		t := p(s, ctx, q)
		if t.Empty() {
			return c.empty()
		}
		if acc == nil {
			acc = t
			continue
		}
		acc = model.Join(acc, t, model.JoinInner)
	}
	if acc == nil {
		return c.empty()
	}
	return acc
}

func column(series, from, to string) part {
	return func(s *Service, ctx context.Context, q model.Query) *model.Table {
		t := s.Series(ctx, series, q)
		if t.Empty() {
			return nil
		}
		out := t.Select(from)
		out.Rename(from, to)
		return out
	}
}

// intradayVolume adds block and hourly matches; a missing side counts as zero.
func intradayVolume(s *Service, ctx context.Context, q model.Query) *model.Table {
	t := s.Series(ctx, "gip-hacim", q)
	if t.Empty() {
		return nil
	}
	zero := model.NumberCell(decimal.Zero)
	t.FillNull("Blok Eşleşme Miktarı", zero)
	t.FillNull("Saatlik Eşleşme Miktarı", zero)
	t.Sum("GİP", "Blok Eşleşme Miktarı", "Saatlik Eşleşme Miktarı")
	return t.Select("GİP")
}

// balancingVolume is delivered up-regulation minus delivered down-regulation.
func balancingVolume(s *Service, ctx context.Context, q model.Query) *model.Table {
	t := s.Series(ctx, "dgp-hacim", q)
	if t.Empty() {
		return nil
	}
	t.Difference("DGP", "Teslim Edilen YAL", "Teslim Edilen YAT")
	return t.Select("DGP")
}
