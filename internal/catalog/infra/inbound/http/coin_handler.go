package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/coincatalog/internal/catalog/application"
	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	"github.com/davicafu/coincatalog/pkg/utils"
)

// collectableHandler guarda lo común a los handlers de monedas y billetes.
type collectableHandler struct {
	exporters Exporters
	log       *zap.Logger
}

// CoinHandler encapsula los endpoints HTTP relacionados con Coin.
type CoinHandler struct {
	collectableHandler
	service *application.CoinService
}

func NewCoinHandler(service *application.CoinService, exporters Exporters, log *zap.Logger) *CoinHandler {
	return &CoinHandler{
		collectableHandler: collectableHandler{exporters: exporters, log: log},
		service:            service,
	}
}

// CreateCoin endpoint POST /api/coins
func (h *CoinHandler) CreateCoin(c *gin.Context) {
	var req coinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	coin, err := h.service.CreateCoin(c.Request.Context(), req.toDomain())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, catalogDomain.NewCoinView(coin))
}

// GetCoin endpoint GET /api/coins/:id?fields=
func (h *CoinHandler) GetCoin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	shaped, err := h.service.GetCoinShaped(c.Request.Context(), id, c.Query("fields"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, shaped)
}

// UpdateCoin endpoint PUT /api/coins/:id
func (h *CoinHandler) UpdateCoin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req coinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	coin, err := h.service.UpdateCoin(c.Request.Context(), id, req.toDomain())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, catalogDomain.NewCoinView(coin))
}

// DeleteCoin endpoint DELETE /api/coins/:id
func (h *CoinHandler) DeleteCoin(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCoin(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCoins endpoint GET /api/coins
func (h *CoinHandler) ListCoins(c *gin.Context) {
	params := catalogDomain.NewCollectableParameters()
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListCoins(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	writePage(c, page)
}

// ExportCoins endpoint GET /api/coins/export?format=xlsx|pdf. Ignora la
// paginación.
func (h *CoinHandler) ExportCoins(c *gin.Context) {
	w, ok := h.exporters.writer(c)
	if !ok {
		return
	}
	params := catalogDomain.NewCollectableParameters()
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	data, err := h.service.ExportCoins(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.sendExport(c, w, data)
}
