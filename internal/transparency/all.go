package transparency

import (
	"context"
	"sort"

	"seffaflik/internal/model"

	"github.com/shopspring/decimal"
)

// FanOut describes an all-entities aggregation. Joined fan-outs outer-join
// one value column per entity on Keys. Listing fan-outs (Columns set) stack
// every entity's rows for a single date instead.
type FanOut struct {
	Name     string
	Title    string
	Entities model.EntityKind
	Keys     []string
	// Volume reports whether the query's Volume (NET/ARZ/TALEP) applies.
	Volume bool
	// Columns is the row layout of a listing fan-out.
	Columns []string
	// Source overrides the entity list series, e.g. plants valid at a date.
	Source string

	perEntity func(s *Service, ctx context.Context, q model.Query, e model.Entity) *model.Table
}

var hourly = []string{model.ColDate, model.ColHour}

var fanOuts = map[string]FanOut{
	"kgup": {
		Name: "kgup", Title: "KGÜP total of every organization",
		Entities: model.EntityOrganizations, Keys: hourly,
		perEntity: totalOf("kgup", byCode),
	},
	"eak": {
		Name: "eak", Title: "Available capacity total of every organization",
		Entities: model.EntityOrganizations, Keys: hourly,
		perEntity: totalOf("eak", byCode),
	},
	"gop-hacim": {
		Name: "gop-hacim", Title: "Day-ahead matched volume of every organization",
		Entities: model.EntityOrganizations, Keys: hourly, Volume: true,
		perEntity: dayAheadVolume,
	},
	"ia-hacim": {
		Name: "ia-hacim", Title: "Bilateral contract volume of every organization",
		Entities: model.EntityOrganizations, Keys: hourly, Volume: true,
		perEntity: bilateralVolume,
	},
	"santral-uretim": {
		Name: "santral-uretim", Title: "Real-time generation of every power plant",
		Entities: model.EntityPlants, Keys: hourly,
		perEntity: totalOf("gerceklesen-uretim-santral", byID),
	},
	"dsg-dengesizlik": {
		Name: "dsg-dengesizlik", Title: "Imbalance quantities of every balance-responsible group",
		Entities: model.EntityBalanceGroups, Keys: []string{model.ColDate},
		perEntity: groupImbalance,
	},
	"santral-uevcb": {
		Name: "santral-uevcb", Title: "Settlement units (UEVÇB) of every power plant at a date",
		Entities: model.EntityPlants, Source: "santraller", Columns: plantUnitColumns,
		perEntity: listOf("santral-uevcb", byID, plantCells, plantUnitColumns),
	},
	"organizasyon-uevcb": {
		Name: "organizasyon-uevcb", Title: "Settlement units (UEVÇB) of every KGÜP organization",
		Entities: model.EntityOrganizations, Columns: organizationUnitColumns,
		perEntity: listOf("organizasyon-uevcb", byCode, organizationCells, organizationUnitColumns),
	},
	"dagitim-profil-gruplari": {
		Name: "dagitim-profil-gruplari", Title: "Subscriber profile groups of every distribution region at a date",
		Entities: model.EntityDistributions, Columns: profileGroupColumns,
		perEntity: listOf("profil-abone-grubu", byID, distributionCells, profileGroupColumns),
	},
}

var (
	plantUnitColumns = []string{"Santral Id", "Santral Adı", "Santral EIC Kodu", "Santral Kısa Adı",
		"UEVÇB Id", "UEVÇB Adı", "UEVÇB EIC Kodu"}
	organizationUnitColumns = []string{"Org Id", "Org Adı", "Org EIC Kodu", "Org Kısa Adı", "Org Durum",
		"UEVÇB Id", "UEVÇB Adı", "UEVÇB EIC Kodu"}
	profileGroupColumns = []string{"Dağıtım Id", "Dağıtım Şirket Adı", "Id", "Profil Adı"}
)

func plantCells(e model.Entity) []string {
	return []string{e.ID, e.Name, e.Code, e.ShortName}
}

func organizationCells(e model.Entity) []string {
	return []string{e.ID, e.Name, e.Code, e.ShortName, e.Status}
}

func distributionCells(e model.Entity) []string { return []string{e.ID, e.Name} }

// Listing reports whether f stacks rows instead of joining columns.
func (f FanOut) Listing() bool { return len(f.Columns) > 0 }

func (f FanOut) empty() *model.Table {
	return model.NewTable(f.Keys, f.Columns)
}

// FanOuts lists the available aggregations sorted by name.
func FanOuts() []FanOut {
	out := make([]FanOut, 0, len(fanOuts))
	for _, f := range fanOuts {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func LookupFanOut(name string) (FanOut, bool) {
	f, ok := fanOuts[name]
	return f, ok
}

// All runs the named fan-out. The entity list is fetched once, before any
// per-entity request. Entities without data are left out of the result.
func (s *Service) All(ctx context.Context, name string, q model.Query) *model.Table {
	f, ok := fanOuts[name]
	if !ok {
		s.reportUnknown("fan-out", name)
		return model.EmptyTable(nil)
	}
	q = q.WithDefaults(s.today())
	if f.Listing() {
		if !s.checker().Date(q.Start) {
			return f.empty()
		}
		q.End = q.Start
	} else if !s.checker().DateRange(q.Start, q.End) {
		return f.empty()
	}
	if f.Volume && !s.checker().VolumeType(q.Volume) {
		return f.empty()
	}
	var entities []model.Entity
	if f.Source != "" {
		entities = tableEntities(s.Series(ctx, f.Source, model.Query{Start: q.Start, End: q.End}))
	} else {
		entities = s.Entities(ctx, f.Entities, q)
	}
	return s.AllFor(ctx, f, q, entities)
}

// AllFor runs f over a caller-supplied entity list, e.g. a saved snapshot.
func (s *Service) AllFor(ctx context.Context, f FanOut, q model.Query, entities []model.Entity) *model.Table {
	fetch := func(ctx context.Context, q model.Query, e model.Entity) *model.Table {
		return f.perEntity(s, ctx, q, e)
	}
	if f.Listing() {
		return s.gather(ctx, q, entities, fetch, f.Columns)
	}
	return s.aggregate(ctx, q, entities, fetch, f.Keys)
}

func byCode(e model.Entity) string { return e.Code }
func byID(e model.Entity) string   { return e.ID }

// totalOf fetches series for one entity and keeps its Toplam column under
// the entity's label.
func totalOf(series string, filter func(model.Entity) string) func(*Service, context.Context, model.Query, model.Entity) *model.Table {
	return func(s *Service, ctx context.Context, q model.Query, e model.Entity) *model.Table {
		q.Entity = filter(e)
		t := s.Series(ctx, series, q)
		if t.Empty() {
			return nil
		}
		out := t.Select("Toplam")
		out.Rename("Toplam", e.Label())
		return out
	}
}

// listOf fetches series for one entity and prefixes each of its rows with
// the entity's own fields. columns is the resulting layout.
func listOf(series string, filter func(model.Entity) string, describe func(model.Entity) []string, columns []string) func(*Service, context.Context, model.Query, model.Entity) *model.Table {
	return func(s *Service, ctx context.Context, q model.Query, e model.Entity) *model.Table {
		q.Entity = filter(e)
		t := s.Series(ctx, series, q)
		if t.Empty() {
			return nil
		}
		prefix := describe(e)
		if len(prefix)+len(t.Columns) != len(columns) {
			return nil
		}
		out := model.NewTable(nil, columns)
		for _, r := range t.Rows {
			cells := make([]model.Cell, 0, len(columns))
			for _, v := range prefix {
				cells = append(cells, model.TextCell(v))
			}
			cells = append(cells, r.Cells...)
			out.AddRow(model.Row{Cells: cells})
		}
		return out
	}
}

func dayAheadVolume(s *Service, ctx context.Context, q model.Query, e model.Entity) *model.Table {
	q.Entity = e.Code
	t := s.Series(ctx, "gop-hacim-organizasyon", q)
	if t.Empty() {
		return nil
	}
	return pickVolume(t, q.Volume, "Talep Eşleşme Miktarı", "Arz Eşleşme Miktarı", e.Label())
}

// bilateralVolume combines sell and buy quantities. A side with no rows for
// an hour counts as zero.
func bilateralVolume(s *Service, ctx context.Context, q model.Query, e model.Entity) *model.Table {
	q.Entity = e.Code
	sell := s.Series(ctx, "ia-satis", q)
	buy := s.Series(ctx, "ia-alis", q)
	if sell.Empty() && buy.Empty() {
		return nil
	}
	t := model.OuterJoin(buy, sell)
	zero := model.NumberCell(decimal.Zero)
	t.FillNull("Talep Miktarı", zero)
	t.FillNull("Arz Miktarı", zero)
	return pickVolume(t, q.Volume, "Talep Miktarı", "Arz Miktarı", e.Label())
}

// pickVolume keeps the demand side, the supply side, or NET = demand - supply.
func pickVolume(t *model.Table, volume, demand, supply, label string) *model.Table {
	kind, _ := model.ParseVolumeType(volume)
	var col string
	switch kind {
	case model.VolumeSupply:
		col = supply
	case model.VolumeDemand:
		col = demand
	default:
		col = "NET"
		t = t.Clone()
		t.Difference(col, demand, supply)
	}
	out := t.Select(col)
	out.Rename(col, label)
	return out
}

func groupImbalance(s *Service, ctx context.Context, q model.Query, e model.Entity) *model.Table {
	q.Entity = e.ID
	t := s.Series(ctx, "dsg-dengesizlik-miktari", q)
	if t.Empty() {
		return nil
	}
	out := t.Select("Pozitif Dengesizlik Miktarı (MWh)", "Negatif Dengesizlik Miktarı (MWh)")
	out.Rename("Pozitif Dengesizlik Miktarı (MWh)", e.Label()+" Pozitif")
	out.Rename("Negatif Dengesizlik Miktarı (MWh)", e.Label()+" Negatif")
	return out
}
