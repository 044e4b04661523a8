package controllers

import (
	"errors"
	"net/http"

	"marketplace/logging"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

// RespondError responde em texto puro, como o front espera.
func RespondError(c *gin.Context, msg string, code int) {
	c.String(code, msg)
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondMessage(c *gin.Context, msg string) {
	c.String(http.StatusOK, msg)
}

// RespondServiceError traduz o erro da camada de serviço no status HTTP.
func RespondServiceError(c *gin.Context, err error, notFound string) {
	var verr *services.ValidationError
	var cerr *services.ConflictError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case services.IsNotFound(err):
		RespondError(c, notFound, http.StatusNotFound)
	case errors.As(err, &cerr):
		RespondError(c, cerr.Message, http.StatusConflict)
	default:
		logging.Logger().WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("erro inesperado")
		RespondError(c, err.Error(), http.StatusInternalServerError)
	}
}
