package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/coincatalog/internal/catalog/application"
	"github.com/davicafu/coincatalog/pkg/utils"
)

// StatsHandler expone las estadísticas de uso de los listados.
type StatsHandler struct {
	recorder *application.QueryRecorder
	log      *zap.Logger
}

func NewStatsHandler(recorder *application.QueryRecorder, log *zap.Logger) *StatsHandler {
	return &StatsHandler{recorder: recorder, log: log}
}

type orderByStatsQuery struct {
	Resource string `form:"resource" binding:"required,oneof=countries coins banknotes"`
	Days     int    `form:"days" binding:"min=1,max=365"`
	Limit    int    `form:"limit" binding:"min=1,max=50"`
}

// TopOrderBy endpoint GET /api/stats/order-by?resource=coins&days=7&limit=5
func (h *StatsHandler) TopOrderBy(c *gin.Context) {
	q := orderByStatsQuery{Days: 7, Limit: 5}
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -q.Days)
	stats, err := h.recorder.TopOrderBy(c.Request.Context(), q.Resource, since, q.Limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, stats)
}
