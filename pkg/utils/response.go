package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Códigos de error estables que ven los clientes.
const (
	CodeBadRequest   = "bad_request"
	CodeInvalidField = "invalid_field"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeUnavailable  = "unavailable"
	CodeInternal     = "internal_error"
)

// ErrorResponse define la estructura estándar para las respuestas de error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SendSuccess envía una respuesta exitosa con un payload de datos.
func SendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendError envía una respuesta de error con un formato estandarizado.
func SendError(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"error": ErrorResponse{
			Code:    code,
			Message: message,
		},
	})
}

// --- Helpers específicos para errores comunes ---

func SendBadRequest(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, CodeBadRequest, message)
}

func SendInvalidField(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, CodeInvalidField, message)
}

func SendNotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, CodeNotFound, message)
}

func SendConflict(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, CodeConflict, message)
}

func SendServiceUnavailable(c *gin.Context, message string) {
	SendError(c, http.StatusServiceUnavailable, CodeUnavailable, message)
}

func SendInternalServerError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, CodeInternal, message)
}
