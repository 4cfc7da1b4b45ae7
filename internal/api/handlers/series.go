package handlers

import (
	"net/http"

	"seffaflik/internal/api/models"
	"seffaflik/internal/model"
	"seffaflik/internal/schema"
	"seffaflik/internal/transparency"
	"seffaflik/internal/validate"

	"github.com/gin-gonic/gin"
)

// SeriesHandler serves the catalog and single-series queries.
type SeriesHandler struct {
	provider *Provider
}

func NewSeriesHandler(p *Provider) *SeriesHandler {
	return &SeriesHandler{provider: p}
}

// ListSeries handles GET /api/v1/series
func (h *SeriesHandler) ListSeries(c *gin.Context) {
	resp := models.CatalogResponse{}
	for _, ep := range schema.Default().All() {
		resp.Series = append(resp.Series, models.SeriesInfo{
			Name:     ep.Name,
			Title:    ep.Title,
			Category: ep.Category,
			Params:   ep.Params.String(),
			Columns:  ep.OutputColumns,
		})
	}
	for _, c := range transparency.Composites() {
		resp.Series = append(resp.Series, models.SeriesInfo{
			Name:     c.Name,
			Title:    c.Title,
			Category: c.Category,
			Params:   "composite",
			Columns:  append([]string{model.ColDate, model.ColHour}, c.Columns...),
		})
	}
	for _, f := range transparency.FanOuts() {
		resp.FanOuts = append(resp.FanOuts, models.FanOutInfo{
			Name:     f.Name,
			Title:    f.Title,
			Entities: string(f.Entities),
			Keys:     f.Keys,
			Columns:  f.Columns,
			Volume:   f.Volume,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// GetSeries handles GET /api/v1/series/:name
func (h *SeriesHandler) GetSeries(c *gin.Context) {
	name := c.Param("name")
	ep, ok := schema.Default().Lookup(name)
	_, composite := transparency.LookupComposite(name)
	if !ok && !composite {
		notFound(c, "series", name)
		return
	}

	var req models.SeriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	q := model.Query{Start: req.StartDate, End: req.EndDate, Entity: req.Entity, Period: req.Period}
	var err *model.Error
	if composite {
		q = q.WithDefaults(model.Today(timeNow()))
		err = validate.CheckDateRange(q.Start, q.End)
	} else {
		err = checkSeriesQuery(ep, q)
	}
	if err != nil {
		invalidQuery(c, err)
		return
	}

	svc := h.provider.ForKey(apiKey(c, req.APIKey))
	c.JSON(http.StatusOK, svc.Series(c.Request.Context(), name, q))
}

// checkSeriesQuery rejects malformed input up front so the client gets a
// 400 instead of an empty table. Empty dates are allowed (today).
func checkSeriesQuery(ep schema.Endpoint, q model.Query) *model.Error {
	q = transparency.Defaults(ep, q, model.Today(timeNow()))
	switch ep.Params {
	case schema.ParamsRange, schema.ParamsRangeEntity, schema.ParamsRangeID:
		return validate.CheckDateRange(q.Start, q.End)
	case schema.ParamsRangePeriod:
		if err := validate.CheckDateRangeWithPeriod(q.Start, q.End, q.Period); err != nil {
			return err
		}
		if transparency.HasHourlyComposite(ep.Name) {
			return nil
		}
		return validate.CheckPublishedPeriod(q.Period)
	case schema.ParamsDate:
		return validate.CheckDate(q.Start)
	case schema.ParamsDateID:
		return validate.CheckDateWithID(q.Start, q.Entity)
	case schema.ParamsEntity:
		return validate.CheckEntity(q.Entity)
	}
	return nil
}
