package http

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/davicafu/coincatalog/internal/catalog/application"
	"github.com/davicafu/coincatalog/pkg/utils"
)

const defaultExportFormat = "xlsx"

// ExportWriter serializa un listado exportado en un formato de fichero.
type ExportWriter interface {
	ContentType() string
	Extension() string
	Write(w io.Writer, data *application.ExportData) error
}

// Exporters indexa los writers por el valor del parámetro format.
type Exporters map[string]ExportWriter

func (e Exporters) writer(c *gin.Context) (ExportWriter, bool) {
	format := strings.ToLower(c.DefaultQuery("format", defaultExportFormat))
	w, ok := e[format]
	if !ok {
		utils.SendBadRequest(c, fmt.Sprintf("unsupported export format %q", format))
	}
	return w, ok
}

func (h *collectableHandler) sendExport(c *gin.Context, w ExportWriter, data *application.ExportData) {
	c.Header("Content-Type", w.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.%s", data.Title, w.Extension()))
	c.Status(http.StatusOK)
	if err := w.Write(c.Writer, data); err != nil {
		h.log.Error("❌ Export failed", zap.String("request_id", GetRequestID(c)), zap.Error(err))
	}
}
