// Package transparency is the library surface: one generic call per catalog
// series, the all-entities fan-outs, and the reference lists they iterate.
//
// Public methods never return errors for expected failures. They return an
// empty table and leave exactly one structured log entry behind.
package transparency

import (
	"context"
	"errors"
	"net/url"
	"time"

	"seffaflik/internal/fanout"
	"seffaflik/internal/model"
	"seffaflik/internal/schema"
	"seffaflik/internal/shape"
	"seffaflik/internal/validate"

	"github.com/sirupsen/logrus"
)

// Fetcher is the request gateway. It logs its own failures.
type Fetcher interface {
	Fetch(ctx context.Context, path string, params url.Values) (map[string]any, error)
}

type Service struct {
	Fetcher  Fetcher
	Registry *schema.Registry
	Log      logrus.FieldLogger
	Workers  int // fan-out pool size; 0 means GOMAXPROCS
	Now      func() time.Time

	validator *validate.Validator
}

func New(f Fetcher, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		Fetcher:   f,
		Registry:  schema.Default(),
		Log:       log,
		Now:       time.Now,
		validator: validate.New(log),
	}
}

// Catalog lists every series the service can fetch.
func (s *Service) Catalog() []schema.Endpoint {
	return s.Registry.All()
}

// Endpoint looks up a series descriptor.
func (s *Service) Endpoint(name string) (schema.Endpoint, bool) {
	return s.Registry.Lookup(name)
}

// Series fetches one catalog series or composite. Empty dates mean today,
// shifted by the series' default day offset for single-date series.
func (s *Service) Series(ctx context.Context, name string, q model.Query) *model.Table {
	ep, ok := s.Registry.Lookup(name)
	if !ok {
		if c, ok := composites[name]; ok {
			return s.composite(ctx, c, q)
		}
		s.reportUnknown("series", name)
		return model.EmptyTable(nil)
	}
	q = s.defaults(ep, q)
	if c, ok := s.hourlyComposite(ep, q); ok {
		return s.composite(ctx, c, q)
	}
	if !s.valid(ep, q) {
		return emptyFor(ep)
	}
	t, err := s.fetch(ctx, ep, q)
	if err != nil {
		s.report(ep.Name, err)
		return emptyFor(ep)
	}
	return t
}

// Entities returns the current reference list of kind.
func (s *Service) Entities(ctx context.Context, kind model.EntityKind, q model.Query) []model.Entity {
	name, ok := entitySeries[kind]
	if !ok {
		s.reportUnknown("entity kind", string(kind))
		return []model.Entity{}
	}
	return tableEntities(s.Series(ctx, name, q))
}

// entitySeries names the reference-list series for each entity kind.
var entitySeries = map[model.EntityKind]string{
	model.EntityOrganizations: "organizasyonlar",
	model.EntityPlants:        "gercek-zamanli-santraller",
	model.EntityBalanceGroups: "dsg-listesi",
	model.EntityDistributions: "dagitim-bolgeleri",
}

func tableEntities(t *model.Table) []model.Entity {
	out := make([]model.Entity, 0, t.Len())
	get := func(r model.Row, col string) string {
		if i := t.ColumnIndex(col); i >= 0 {
			return r.Cells[i].String()
		}
		return ""
	}
	nameColumn := "Adı"
	if t.ColumnIndex(nameColumn) < 0 {
		nameColumn = "Dağıtım Şirket Adı"
	}
	for _, r := range t.Rows {
		out = append(out, model.Entity{
			ID:        get(r, "Id"),
			Name:      get(r, nameColumn),
			Code:      get(r, "EIC Kodu"),
			ShortName: get(r, "Kısa Adı"),
			Status:    get(r, "Durum"),
		})
	}
	return out
}

func (s *Service) today() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return model.Today(now())
}

func (s *Service) checker() *validate.Validator {
	if s.validator == nil {
		return validate.New(s.Log)
	}
	return s.validator
}

func (s *Service) defaults(ep schema.Endpoint, q model.Query) model.Query {
	return Defaults(ep, q, s.today())
}

// Defaults fills the empty parts of q for ep as of today.
func Defaults(ep schema.Endpoint, q model.Query, today string) model.Query {
	if ep.SingleDate() {
		today = model.ShiftDays(today, ep.DefaultDayOffset)
	}
	q = q.WithDefaults(today)
	if ep.Params == schema.ParamsRangePeriod && q.Period == "" {
		q.Period = string(model.PeriodDaily)
	}
	return q
}

func (s *Service) hourlyComposite(ep schema.Endpoint, q model.Query) (Composite, bool) {
	if ep.Params != schema.ParamsRangePeriod {
		return Composite{}, false
	}
	if p, ok := model.ParsePeriod(q.Period); !ok || p != model.PeriodHourly {
		return Composite{}, false
	}
	c, ok := composites[hourlyComposites[ep.Name]]
	return c, ok
}

func (s *Service) valid(ep schema.Endpoint, q model.Query) bool {
	v := s.checker()
	switch ep.Params {
	case schema.ParamsRange:
		return v.DateRange(q.Start, q.End)
	case schema.ParamsRangeEntity:
		return v.DateRangeWithEntity(q.Start, q.End, q.Entity)
	case schema.ParamsRangeID:
		return v.DateRangeWithID(q.Start, q.End, q.Entity)
	case schema.ParamsRangePeriod:
		return v.DateRangeWithPeriod(q.Start, q.End, q.Period) &&
			v.Report(validate.CheckPublishedPeriod(q.Period))
	case schema.ParamsDate:
		return v.Date(q.Start)
	case schema.ParamsDateID:
		return v.DateWithID(q.Start, q.Entity)
	case schema.ParamsEntity:
		return v.Entity(q.Entity)
	default:
		return true
	}
}

// Params builds the query string for ep. q must already be validated.
func Params(ep schema.Endpoint, q model.Query) url.Values {
	p := url.Values{}
	switch ep.Params {
	case schema.ParamsRange:
		p.Set("startDate", q.Start)
		p.Set("endDate", q.End)
	case schema.ParamsRangeEntity, schema.ParamsRangeID:
		p.Set("startDate", q.Start)
		p.Set("endDate", q.End)
		p.Set(ep.EntityParam, q.Entity)
	case schema.ParamsRangePeriod:
		p.Set("startDate", q.Start)
		p.Set("endDate", q.End)
		name := ep.EntityParam
		if name == "" {
			name = "period"
		}
		period, _ := model.ParsePeriod(q.Period)
		if v := period.APIValue(); v != "" {
			p.Set(name, v)
		}
	case schema.ParamsDate, schema.ParamsDateID:
		name := ep.DateParam
		if name == "" {
			name = "period"
		}
		p.Set(name, q.Start)
		if ep.Params == schema.ParamsDateID {
			p.Set(ep.EntityParam, q.Entity)
		}
	case schema.ParamsEntity:
		p.Set(ep.EntityParam, q.Entity)
	}
	for k, v := range ep.Static {
		p.Set(k, v)
	}
	for k, v := range q.Extra {
		p.Set(k, v)
	}
	return p
}

// gatewayError marks failures the gateway has already logged.
type gatewayError struct{ err error }

func (e gatewayError) Error() string { return e.err.Error() }
func (e gatewayError) Unwrap() error { return e.err }

func (s *Service) fetch(ctx context.Context, ep schema.Endpoint, q model.Query) (*model.Table, error) {
	body, err := s.Fetcher.Fetch(ctx, ep.Path, Params(ep, q))
	if err != nil {
		return nil, gatewayError{err}
	}
	return shape.Shape(body, ep)
}

func (s *Service) report(series string, err error) {
	var ge gatewayError
	if errors.As(err, &ge) {
		return
	}
	kind := model.KindOf(err)
	if kind == 0 {
		kind = model.KindRequest
	}
	s.Log.WithFields(logrus.Fields{
		"error_kind": kind.String(),
		"series":     series,
	}).Error(err.Error())
}

func (s *Service) reportUnknown(what, name string) {
	s.Log.WithFields(logrus.Fields{
		"error_kind": model.KindValidation.String(),
		"constraint": "UNKNOWN_NAME",
	}).Warnf("unknown %s %q", what, name)
}

func emptyFor(ep schema.Endpoint) *model.Table {
	return model.NewTable(ep.KeyColumns(), ep.ValueColumns())
}

// gather runs fetch over entities on the worker pool and stacks the rows.
func (s *Service) gather(ctx context.Context, q model.Query, entities []model.Entity, fetch fanout.EntityFetch, columns []string) *model.Table {
	start := time.Now()
	t := fanout.Gather(ctx, q, entities, fetch, nil, columns, s.Workers)
	s.Log.WithFields(logrus.Fields{
		"entities": len(entities),
		"rows":     t.Len(),
		"duration": time.Since(start),
	}).Debug("listing fan-out complete")
	return t
}

// aggregate runs fetch over entities on the service's worker pool.
func (s *Service) aggregate(ctx context.Context, q model.Query, entities []model.Entity, fetch fanout.EntityFetch, keys []string) *model.Table {
	start := time.Now()
	t := fanout.Aggregate(ctx, q, entities, fetch, keys, s.Workers)
	s.Log.WithFields(logrus.Fields{
		"entities": len(entities),
		"rows":     t.Len(),
		"columns":  len(t.Columns),
		"duration": time.Since(start),
	}).Debug("fan-out complete")
	return t
}
