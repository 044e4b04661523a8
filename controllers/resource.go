package controllers

import (
	"encoding/json"
	"net/http"

	dbpkg "marketplace/db"
	"marketplace/services"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// sanitizer é implementado por modelos com campos que não podem sair na resposta.
type sanitizer interface {
	Sanitize()
}

// Resource monta os handlers padrão (findAll, findById, add, update, delete)
// de um recurso em cima do serviço dele.
type Resource[T any] struct {
	service func(db *gorm.DB) *services.CRUD[T]
	key     ParamFunc
}

func NewResource[T any](service func(db *gorm.DB) *services.CRUD[T], key ParamFunc) *Resource[T] {
	return &Resource[T]{service: service, key: key}
}

func (r *Resource[T]) crud(c *gin.Context) (*services.CRUD[T], bool) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db não configurado no contexto", http.StatusInternalServerError)
		return nil, false
	}
	return r.service(db), true
}

// GET /R/findAll
func (r *Resource[T]) List(c *gin.Context) {
	svc, ok := r.crud(c)
	if !ok {
		return
	}

	list, err := svc.List()
	if err != nil {
		RespondServiceError(c, err, svc.Definition().NotFound)
		return
	}

	RespondSuccess(c, sanitizeAll(list))
}

// GET /R/findById/:id
func (r *Resource[T]) FindByID(c *gin.Context) {
	key, ok := r.key(c, "id")
	if !ok {
		return
	}
	svc, ok := r.crud(c)
	if !ok {
		return
	}

	entity, err := svc.Get(key)
	if err != nil {
		RespondServiceError(c, err, svc.Definition().NotFound)
		return
	}

	RespondSuccess(c, sanitize(entity))
}

// POST /R/add
func (r *Resource[T]) Create(c *gin.Context) {
	var entity T
	if err := c.ShouldBindJSON(&entity); err != nil {
		RespondError(c, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	svc, ok := r.crud(c)
	if !ok {
		return
	}

	if err := svc.Create(&entity); err != nil {
		RespondServiceError(c, err, svc.Definition().NotFound)
		return
	}

	RespondCreated(c, sanitize(&entity))
}

// PATCH /R/update/:id
func (r *Resource[T]) Update(c *gin.Context) {
	key, ok := r.key(c, "id")
	if !ok {
		return
	}

	var payload map[string]json.RawMessage
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	svc, ok := r.crud(c)
	if !ok {
		return
	}

	if _, err := svc.Update(key, payload); err != nil {
		RespondServiceError(c, err, svc.Definition().NotFound)
		return
	}

	RespondMessage(c, svc.Definition().Updated)
}

// DELETE /R/delete/:id
func (r *Resource[T]) Delete(c *gin.Context) {
	key, ok := r.key(c, "id")
	if !ok {
		return
	}
	svc, ok := r.crud(c)
	if !ok {
		return
	}

	if err := svc.Delete(key); err != nil {
		RespondServiceError(c, err, svc.Definition().NotFound)
		return
	}

	RespondMessage(c, svc.Definition().Deleted)
}

// FindBy responde a lista de linhas com column igual ao parâmetro.
func (r *Resource[T]) FindBy(param, column string, parse ParamFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := parse(c, param)
		if !ok {
			return
		}
		svc, ok := r.crud(c)
		if !ok {
			return
		}

		list, err := svc.FindBy(column, value)
		if err != nil {
			RespondServiceError(c, err, svc.Definition().NotFound)
			return
		}
		RespondSuccess(c, sanitizeAll(list))
	}
}

// Search é a busca parcial (contém), sem diferenciar maiúsculas.
func (r *Resource[T]) Search(param, column string) gin.HandlerFunc {
	return func(c *gin.Context) {
		term, ok := StringParam(c, param)
		if !ok {
			return
		}
		svc, ok := r.crud(c)
		if !ok {
			return
		}

		list, err := svc.Search(column, term.(string))
		if err != nil {
			RespondServiceError(c, err, svc.Definition().NotFound)
			return
		}
		RespondSuccess(c, sanitizeAll(list))
	}
}

// SearchExact compara o valor inteiro, sem diferenciar maiúsculas.
func (r *Resource[T]) SearchExact(param, column string) gin.HandlerFunc {
	return func(c *gin.Context) {
		term, ok := StringParam(c, param)
		if !ok {
			return
		}
		svc, ok := r.crud(c)
		if !ok {
			return
		}

		list, err := svc.SearchExact(column, term.(string))
		if err != nil {
			RespondServiceError(c, err, svc.Definition().NotFound)
			return
		}
		RespondSuccess(c, sanitizeAll(list))
	}
}

// DeleteBy apaga todas as linhas do parâmetro (ex: todos os itens do carrinho de um usuário).
func (r *Resource[T]) DeleteBy(param, column string, parse ParamFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := parse(c, param)
		if !ok {
			return
		}
		svc, ok := r.crud(c)
		if !ok {
			return
		}

		if _, err := svc.DeleteBy(column, value); err != nil {
			RespondServiceError(c, err, svc.Definition().NotFound)
			return
		}
		RespondMessage(c, svc.Definition().Deleted)
	}
}

func sanitize[T any](entity *T) *T {
	if s, ok := any(entity).(sanitizer); ok {
		s.Sanitize()
	}
	return entity
}

func sanitizeAll[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	for i := range list {
		sanitize(&list[i])
	}
	return list
}
