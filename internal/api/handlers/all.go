package handlers

import (
	"net/http"
	"time"

	"seffaflik/internal/api/models"
	"seffaflik/internal/model"
	"seffaflik/internal/transparency"
	"seffaflik/internal/validate"

	"github.com/gin-gonic/gin"
)

var timeNow = time.Now

type AllHandler struct {
	provider *Provider
}

func NewAllHandler(p *Provider) *AllHandler {
	return &AllHandler{provider: p}
}

// GetAll handles GET /api/v1/all/:name
func (h *AllHandler) GetAll(c *gin.Context) {
	var req models.AllRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, ok := h.run(c, c.Param("name"), req)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, t)
}

// run validates the request and performs the fan-out. It writes the error
// response itself and reports false on failure.
func (h *AllHandler) run(c *gin.Context, name string, req models.AllRequest) (*model.Table, bool) {
	f, ok := transparency.LookupFanOut(name)
	if !ok {
		notFound(c, "fan-out", name)
		return nil, false
	}
	q := model.Query{Start: req.StartDate, End: req.EndDate, Volume: req.VolumeType}.WithDefaults(model.Today(timeNow()))
	check := validate.CheckDateRange(q.Start, q.End)
	if f.Listing() {
		check = validate.CheckDate(q.Start)
	}
	if check != nil {
		invalidQuery(c, check)
		return nil, false
	}
	if f.Volume {
		if err := validate.CheckVolumeType(q.Volume); err != nil {
			invalidQuery(c, err)
			return nil, false
		}
	}
	svc := h.provider.ForKey(apiKey(c, req.APIKey))
	return svc.All(c.Request.Context(), name, q), true
}
