package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/coincatalog/internal/catalog/application"
	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
	"github.com/davicafu/coincatalog/pkg/utils"
)

// respondError traduce los errores de dominio a respuestas HTTP. Solo los
// errores no reconocidos se registran como fallos del servidor.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, sharedQuery.ErrUnknownField):
		utils.SendInvalidField(c, err.Error())
	case errors.Is(err, catalogDomain.ErrCountryNotFound),
		errors.Is(err, catalogDomain.ErrCoinNotFound),
		errors.Is(err, catalogDomain.ErrBanknoteNotFound):
		utils.SendNotFound(c, err.Error())
	case errors.Is(err, catalogDomain.ErrInvalidCountry),
		errors.Is(err, catalogDomain.ErrInvalidCoin),
		errors.Is(err, catalogDomain.ErrInvalidBanknote):
		utils.SendBadRequest(c, err.Error())
	case errors.Is(err, catalogDomain.ErrCountryAlreadyExists),
		errors.Is(err, catalogDomain.ErrCountryInUse):
		utils.SendConflict(c, err.Error())
	case errors.Is(err, application.ErrAnalyticsDisabled):
		utils.SendServiceUnavailable(c, err.Error())
	default:
		log.Error("❌ Request failed",
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		utils.SendInternalServerError(c, "internal server error")
	}
}
