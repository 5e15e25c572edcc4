package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/coincatalog/internal/catalog/application"
	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	"github.com/davicafu/coincatalog/pkg/utils"
)

// BanknoteHandler encapsula los endpoints HTTP relacionados con Banknote.
type BanknoteHandler struct {
	collectableHandler
	service *application.BanknoteService
}

func NewBanknoteHandler(service *application.BanknoteService, exporters Exporters, log *zap.Logger) *BanknoteHandler {
	return &BanknoteHandler{
		collectableHandler: collectableHandler{exporters: exporters, log: log},
		service:            service,
	}
}

// CreateBanknote endpoint POST /api/banknotes
func (h *BanknoteHandler) CreateBanknote(c *gin.Context) {
	var req banknoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	banknote, err := h.service.CreateBanknote(c.Request.Context(), req.toDomain())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, catalogDomain.NewBanknoteView(banknote))
}

// GetBanknote endpoint GET /api/banknotes/:id?fields=
func (h *BanknoteHandler) GetBanknote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	shaped, err := h.service.GetBanknoteShaped(c.Request.Context(), id, c.Query("fields"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, shaped)
}

// UpdateBanknote endpoint PUT /api/banknotes/:id
func (h *BanknoteHandler) UpdateBanknote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req banknoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	banknote, err := h.service.UpdateBanknote(c.Request.Context(), id, req.toDomain())
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, catalogDomain.NewBanknoteView(banknote))
}

// DeleteBanknote endpoint DELETE /api/banknotes/:id
func (h *BanknoteHandler) DeleteBanknote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBanknote(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBanknotes endpoint GET /api/banknotes
func (h *BanknoteHandler) ListBanknotes(c *gin.Context) {
	params := catalogDomain.NewCollectableParameters()
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListBanknotes(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	writePage(c, page)
}

// ExportBanknotes endpoint GET /api/banknotes/export?format=xlsx|pdf. Ignora la
// paginación.
func (h *BanknoteHandler) ExportBanknotes(c *gin.Context) {
	w, ok := h.exporters.writer(c)
	if !ok {
		return
	}
	params := catalogDomain.NewCollectableParameters()
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	data, err := h.service.ExportBanknotes(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.sendExport(c, w, data)
}
