package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davicafu/coincatalog/internal/catalog/application"
	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	"github.com/davicafu/coincatalog/pkg/utils"
)

// CountryHandler encapsula los endpoints HTTP relacionados con Country.
type CountryHandler struct {
	service *application.CountryService
	log     *zap.Logger
}

func NewCountryHandler(service *application.CountryService, log *zap.Logger) *CountryHandler {
	return &CountryHandler{service: service, log: log}
}

type countryRequest struct {
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required,len=2"`
	Continent string `json:"continent"`
}

// --- Handlers CRUD ---

// CreateCountry endpoint POST /api/countries
func (h *CountryHandler) CreateCountry(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	country, err := h.service.CreateCountry(c.Request.Context(), req.Name, req.Code, req.Continent)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, catalogDomain.NewCountryView(country))
}

// GetCountry endpoint GET /api/countries/:id?fields=
func (h *CountryHandler) GetCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	shaped, err := h.service.GetCountryShaped(c.Request.Context(), id, c.Query("fields"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, shaped)
}

// UpdateCountry endpoint PUT /api/countries/:id
func (h *CountryHandler) UpdateCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	country, err := h.service.UpdateCountry(c.Request.Context(), id, req.Name, req.Code, req.Continent)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, catalogDomain.NewCountryView(country))
}

// DeleteCountry endpoint DELETE /api/countries/:id
func (h *CountryHandler) DeleteCountry(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCountry(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCountries endpoint GET /api/countries con filtros, paginación,
// ordenación y selección de campos.
func (h *CountryHandler) ListCountries(c *gin.Context) {
	params := catalogDomain.NewCountryParameters()
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	page, err := h.service.ListCountries(c.Request.Context(), params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	writePage(c, page)
}

// parseID responde 400 si el parámetro :id no es un UUID.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendBadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}
