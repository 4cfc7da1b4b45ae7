package transparency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"seffaflik/internal/data"
	"seffaflik/internal/model"
	"seffaflik/internal/schema"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves canned bodies keyed by "path?entity" and records calls.
type fakeFetcher struct {
	mu     sync.Mutex
	bodies map[string]string
	fail   map[string]error
	calls  []url.Values
	entity string // query parameter used to select per-entity bodies
}

func (f *fakeFetcher) Fetch(_ context.Context, path string, params url.Values) (map[string]any, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()

	key := path
	if f.entity != "" && params.Get(f.entity) != "" {
		key += "?" + params.Get(f.entity)
	}
	if err, ok := f.fail[key]; ok {
		return nil, err
	}
	raw, ok := f.bodies[key]
	if !ok {
		raw = `{}`
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}

func newTestService(f Fetcher) (*Service, *test.Hook) {
	log, hook := test.NewNullLogger()
	s := New(f, log)
	s.Now = func() time.Time { return time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC) }
	return s, hook
}

func ptfList(days int) string {
	var recs []string
	for d := 1; d <= days; d++ {
		for h := 0; h < 24; h++ {
			recs = append(recs, fmt.Sprintf(`{"date": "2021-01-%02dT%02d:00:00.000+0300", "price": %d}`, d, h, 100*d+h))
		}
	}
	return `{"dayAheadMCPList": [` + strings.Join(recs, ",") + `]}`
}

func TestSeriesTwoDaysOfPrices(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"market/day-ahead-mcp": ptfList(2)}}
	s, hook := newTestService(f)

	table := s.Series(context.Background(), "ptf", model.Query{Start: "2021-01-01", End: "2021-01-02"})

	assert.Equal(t, []string{"Tarih", "Saat", "PTF"}, table.Header())
	require.Equal(t, 48, table.Len())
	assert.Equal(t, []string{"2021-01-02", "23", "223"}, table.Records()[47])
	assert.Empty(t, hook.AllEntries())

	require.Len(t, f.calls, 1)
	assert.Equal(t, "2021-01-01", f.calls[0].Get("startDate"))
	assert.Equal(t, "2021-01-02", f.calls[0].Get("endDate"))
}

func TestSeriesDefaultsToToday(t *testing.T) {
	f := &fakeFetcher{}
	s, _ := newTestService(f)
	s.Series(context.Background(), "smf", model.Query{})
	require.Len(t, f.calls, 1)
	assert.Equal(t, "2021-01-01", f.calls[0].Get("startDate"))
	assert.Equal(t, "2021-01-01", f.calls[0].Get("endDate"))
}

func TestSeriesInvalidInputMakesNoRequest(t *testing.T) {
	f := &fakeFetcher{}
	s, hook := newTestService(f)

	table := s.Series(context.Background(), "ptf", model.Query{Start: "2021-01-02", End: "2021-01-01"})
	assert.True(t, table.Empty())
	assert.Equal(t, []string{"Tarih", "Saat", "PTF"}, table.Header())
	assert.Empty(t, f.calls)

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "ValidationFailure", hook.LastEntry().Data["error_kind"])
	assert.Equal(t, "DATE_ORDER", hook.LastEntry().Data["constraint"])
}

func TestSeriesUnknownName(t *testing.T) {
	s, hook := newTestService(&fakeFetcher{})
	table := s.Series(context.Background(), "nope", model.Query{})
	assert.True(t, table.Empty())
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "UNKNOWN_NAME", hook.LastEntry().Data["constraint"])
}

func TestSeriesShapeFailureLoggedOnce(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"market/day-ahead-mcp": `{"unexpected": []}`}}
	s, hook := newTestService(f)

	table := s.Series(context.Background(), "ptf", model.Query{})
	assert.True(t, table.Empty())
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "ShapeError", hook.LastEntry().Data["error_kind"])
	assert.Equal(t, "ptf", hook.LastEntry().Data["series"])
}

func TestSeriesAuthFailureThroughGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	log, hook := test.NewNullLogger()
	s := New(data.NewClient("wrong", srv.URL, log), log)

	table := s.Series(context.Background(), "ptf", model.Query{Start: "2021-01-01", End: "2021-01-01"})
	assert.True(t, table.Empty())

	require.Len(t, hook.AllEntries(), 1, "the gateway logs, the service does not repeat it")
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "AuthenticationError", entry.Data["error_kind"])
}

func TestParams(t *testing.T) {
	reg := schema.Default()
	q := model.Query{Start: "2021-01-01", End: "2021-01-31", Entity: "40X000000000104H", Period: "aylık"}

	p := Params(reg.MustLookup("kgup"), q)
	assert.Equal(t, "40X000000000104H", p.Get("organizationEIC"))
	assert.True(t, p.Has("uevcbEIC"))
	assert.Equal(t, "", p.Get("uevcbEIC"))

	p = Params(reg.MustLookup("piyasa-hacmi"), q)
	assert.Equal(t, "MONTHLY", p.Get("period"))

	p = Params(reg.MustLookup("santraller"), q)
	assert.Equal(t, url.Values{"period": {"2021-01-01"}}, p)

	p = Params(reg.MustLookup("organizasyonlar"), q)
	assert.Empty(t, p)

	q.Entity = "641"
	p = Params(reg.MustLookup("santral-uevcb"), q)
	assert.Equal(t, url.Values{"period": {"2021-01-01"}, "powerPlantId": {"641"}}, p)

	q.Entity = "40X000000000104H"
	p = Params(reg.MustLookup("organizasyon-uevcb"), q)
	assert.Equal(t, url.Values{"organizationEIC": {"40X000000000104H"}}, p)

	q.Extra = map[string]string{"orderType": "YAL"}
	p = Params(reg.MustLookup("kisit-maliyeti"), q)
	assert.Equal(t, "YAL", p.Get("orderType"), "extra parameters override static ones")
}

func TestSingleDateDefaultsHonorDayOffset(t *testing.T) {
	f := &fakeFetcher{}
	s, _ := newTestService(f)

	s.Series(context.Background(), "kptf", model.Query{})
	s.Series(context.Background(), "santraller", model.Query{})
	s.Series(context.Background(), "kptf", model.Query{Start: "2020-12-31"})
	require.Len(t, f.calls, 3)
	assert.Equal(t, "2021-01-02", f.calls[0].Get("period"), "interim prices are for tomorrow")
	assert.Equal(t, "2021-01-01", f.calls[1].Get("period"))
	assert.Equal(t, "2020-12-31", f.calls[2].Get("period"))

	q := Defaults(schema.Default().MustLookup("kptf"), model.Query{}, "2021-12-31")
	assert.Equal(t, "2022-01-01", q.Start)
}

func TestEntityScopedValidation(t *testing.T) {
	f := &fakeFetcher{}
	s, hook := newTestService(f)

	s.Series(context.Background(), "organizasyon-uevcb", model.Query{})
	assert.Empty(t, f.calls)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "ENTITY_REQUIRED", hook.LastEntry().Data["constraint"])

	s.Series(context.Background(), "profil-abone-grubu", model.Query{Start: "2021-1-1", Entity: "7"})
	assert.Empty(t, f.calls)
	assert.Equal(t, "DATE_FORMAT", hook.LastEntry().Data["constraint"])

	s.Series(context.Background(), "profil-abone-grubu", model.Query{Entity: "7"})
	require.Len(t, f.calls, 1)
	assert.Equal(t, "7", f.calls[0].Get("distributionId"))
}

func TestPeriodDefaultsToDaily(t *testing.T) {
	f := &fakeFetcher{}
	s, _ := newTestService(f)
	s.Series(context.Background(), "piyasa-hacmi", model.Query{Start: "2021-01-01", End: "2021-01-01"})
	require.Len(t, f.calls, 1)
	assert.Equal(t, "DAILY", f.calls[0].Get("period"))
}

func TestEntities(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{
		"production/dpp-organization": `{"organizations": [
			{"organizationId": 1, "organizationName": "Alfa Enerji", "organizationETSOCode": "EIC-A",
			 "organizationShortName": "ALFA", "organizationStatus": "Active"}
		]}`,
	}}
	s, _ := newTestService(f)

	got := s.Entities(context.Background(), model.EntityOrganizations, model.Query{})
	assert.Equal(t, []model.Entity{{ID: "1", Name: "Alfa Enerji", Code: "EIC-A", ShortName: "ALFA", Status: "Active"}}, got)

	assert.Empty(t, s.Entities(context.Background(), model.EntityKind("regions"), model.Query{}))
}

func TestDistributionEntities(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{
		"consumption/distribution": `{"distributionList": [{"id": 7, "name": "Boğaziçi EDAŞ"}]}`,
	}}
	s, _ := newTestService(f)

	got := s.Entities(context.Background(), model.EntityDistributions, model.Query{})
	assert.Equal(t, []model.Entity{{ID: "7", Name: "Boğaziçi EDAŞ"}}, got)
}

func TestCatalogAndEndpoint(t *testing.T) {
	s, _ := newTestService(&fakeFetcher{})
	assert.NotEmpty(t, s.Catalog())
	ep, ok := s.Endpoint("smf")
	require.True(t, ok)
	assert.Equal(t, "market/smp", ep.Path)
}
