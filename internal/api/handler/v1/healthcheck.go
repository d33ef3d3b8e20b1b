package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kasirgo/pos-api/internal/api/handler/v1/response"
)

type HealthcheckHandler struct {
	db *gorm.DB
}

func NewHealthcheckHandler(db *gorm.DB) *HealthcheckHandler {
	return &HealthcheckHandler{
		db: db,
	}
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Description  Reports whether the API and its database are reachable
// @Tags         healthcheck
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  response.Err
// @Router       / [get]
func (h *HealthcheckHandler) HandleHealthcheck(ctx *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		err = fmt.Errorf("v1.HandleHealthcheck -> h.db.DB -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	if err = sqlDB.PingContext(ctx.Request.Context()); err != nil {
		response.RenderErr(ctx, response.ErrServiceUnavailable("database unavailable"))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
