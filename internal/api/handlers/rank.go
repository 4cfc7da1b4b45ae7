package handlers

import (
	"net/http"

	"seffaflik/internal/analysis"
	"seffaflik/internal/api/models"
	"seffaflik/internal/model"
	"seffaflik/internal/transparency"

	"github.com/gin-gonic/gin"
)

// RankHandler ranks the entity columns of a fan-out.
type RankHandler struct {
	all *AllHandler
}

func NewRankHandler(p *Provider) *RankHandler {
	return &RankHandler{all: NewAllHandler(p)}
}

// RankEntities handles GET /api/v1/rank/:name
func (h *RankHandler) RankEntities(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}
	if f, ok := transparency.LookupFanOut(c.Param("name")); ok && f.Listing() {
		invalidQuery(c, model.NewValidationError("NOT_RANKABLE", "fan-out %q lists rows and has no entity columns", f.Name))
		return
	}
	t, ok := h.all.run(c, c.Param("name"), req.AllRequest)
	if !ok {
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	ranked := analysis.Top(analysis.Rank(t), limit)

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{Rank: i + 1, ColumnSummary: r}
	}
	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
