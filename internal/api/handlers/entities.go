package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"seffaflik/internal/api/models"
	"seffaflik/internal/data"
	"seffaflik/internal/model"
	"seffaflik/internal/validate"

	"github.com/gin-gonic/gin"
)

type EntityHandler struct {
	provider *Provider
}

func NewEntityHandler(p *Provider) *EntityHandler {
	return &EntityHandler{provider: p}
}

// ListEntities handles GET /api/v1/entities/:kind
func (h *EntityHandler) ListEntities(c *gin.Context) {
	kind := model.EntityKind(c.Param("kind"))
	if !kind.Valid() {
		notFound(c, "entity kind", string(kind))
		return
	}
	var req models.EntitiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, err)
		return
	}

	if req.Source == "file" {
		list, err := loadEntitySnapshot(kind)
		if err != nil {
			abortWith(c, http.StatusInternalServerError, "ENTITIES_LOAD_ERROR",
				fmt.Sprintf("Failed to load entities: %v", err), nil)
			return
		}
		c.JSON(http.StatusOK, models.EntitiesResponse{
			Kind:      string(kind),
			Source:    "file",
			UpdatedAt: list.UpdatedAt,
			Entities:  list.Entities,
			Count:     len(list.Entities),
		})
		return
	}

	q := model.Query{Start: req.StartDate, End: req.EndDate}.WithDefaults(model.Today(timeNow()))
	if err := validate.CheckDateRange(q.Start, q.End); err != nil {
		invalidQuery(c, err)
		return
	}
	entities := h.provider.ForKey(apiKey(c, req.APIKey)).Entities(c.Request.Context(), kind, q)
	c.JSON(http.StatusOK, models.EntitiesResponse{
		Kind:     string(kind),
		Source:   "live",
		Entities: entities,
		Count:    len(entities),
	})
}

// loadEntitySnapshot reads the file written by update-entities. A missing
// file is an empty list, not an error.
func loadEntitySnapshot(kind model.EntityKind) (*data.EntityList, error) {
	list, err := data.LoadEntities(data.DefaultEntitiesPath(kind))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &data.EntityList{Kind: kind, Entities: []model.Entity{}}, nil
		}
		return nil, err
	}
	return list, nil
}
