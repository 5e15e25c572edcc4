package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers agrupa los handlers del catálogo para registrar sus rutas.
type Handlers struct {
	Countries *CountryHandler
	Coins     *CoinHandler
	Banknotes *BanknoteHandler
	Stats     *StatsHandler
}

// NewEngine crea el engine de gin con los middlewares comunes y /health.
func NewEngine(log *zap.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(log), CORS(corsOrigins))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// RegisterCatalogRoutes registra las rutas HTTP del catálogo bajo /api.
func RegisterCatalogRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")

	countries := api.Group("/countries")
	{
		countries.POST("", h.Countries.CreateCountry)
		countries.GET("", h.Countries.ListCountries)
		countries.GET("/:id", h.Countries.GetCountry)
		countries.PUT("/:id", h.Countries.UpdateCountry)
		countries.DELETE("/:id", h.Countries.DeleteCountry)
	}

	coins := api.Group("/coins")
	{
		coins.POST("", h.Coins.CreateCoin)
		coins.GET("", h.Coins.ListCoins)
		coins.GET("/export", h.Coins.ExportCoins)
		coins.GET("/:id", h.Coins.GetCoin)
		coins.PUT("/:id", h.Coins.UpdateCoin)
		coins.DELETE("/:id", h.Coins.DeleteCoin)
	}

	banknotes := api.Group("/banknotes")
	{
		banknotes.POST("", h.Banknotes.CreateBanknote)
		banknotes.GET("", h.Banknotes.ListBanknotes)
		banknotes.GET("/export", h.Banknotes.ExportBanknotes)
		banknotes.GET("/:id", h.Banknotes.GetBanknote)
		banknotes.PUT("/:id", h.Banknotes.UpdateBanknote)
		banknotes.DELETE("/:id", h.Banknotes.DeleteBanknote)
	}

	if h.Stats != nil {
		api.GET("/stats/order-by", h.Stats.TopOrderBy)
	}
}
