package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParamFunc lê e converte um parâmetro de rota; responde 400 quando inválido.
type ParamFunc func(c *gin.Context, name string) (any, bool)

// ParamID lê um id inteiro positivo da rota.
func ParamID(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)

	switch {
	case raw == "":
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
	case err != nil || id <= 0:
		RespondError(c, name+" inválido", http.StatusBadRequest)
	default:
		return id, true
	}
	return 0, false
}

func IntParam(c *gin.Context, name string) (any, bool) {
	return ParamID(c, name)
}

func StringParam(c *gin.Context, name string) (any, bool) {
	v := strings.TrimSpace(c.Param(name))
	if v == "" {
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
		return nil, false
	}
	return v, true
}
