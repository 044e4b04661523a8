package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"marketplace/logging"
	"marketplace/metrics"
	"marketplace/repository"

	"github.com/jinzhu/gorm"
)

// Unique é uma checagem de duplicidade feita antes de gravar.
// A restrição no banco continua valendo.
type Unique[T any] struct {
	Column  string
	Value   func(*T) string
	Message string
}

// Definition descreve um recurso: mensagens, campos atualizáveis e regras.
type Definition[T any] struct {
	Name     string // ex: "Plano"
	NotFound string // ex: "Plano não encontrado."
	Updated  string // ex: "Plano atualizado com sucesso."
	Deleted  string
	Order    string
	Preload  []string

	// Updatable são as chaves JSON aceitas no PATCH; qualquer outra é rejeitada.
	Updatable []string
	Uniques   []Unique[T]
	// Conflicts traduz a coluna violada (achada na mensagem do driver) numa mensagem.
	Conflicts map[string]string

	// Normalize limpa a entidade (trim, só dígitos...) antes da validação.
	Normalize    func(entity *T)
	BeforeCreate func(db *gorm.DB, entity *T) error
	BeforeUpdate func(db *gorm.DB, entity *T, changed []string) error
	// BeforeDelete roda na mesma transação do delete.
	BeforeDelete func(tx *gorm.DB, entity *T) error
}

type CRUD[T any] struct {
	db   *gorm.DB
	repo *repository.Repository[T]
	def  Definition[T]
}

func NewCRUD[T any](db *gorm.DB, def Definition[T]) *CRUD[T] {
	return &CRUD[T]{db: db, repo: repository.New[T](db, def.Preload...), def: def}
}

func (s *CRUD[T]) Definition() Definition[T] {
	return s.def
}

func (s *CRUD[T]) List() ([]T, error) {
	return s.repo.FindAll(s.def.Order)
}

func (s *CRUD[T]) Get(key any) (*T, error) {
	return s.repo.FindByID(key)
}

func (s *CRUD[T]) Create(entity *T) error {
	s.normalize(entity)
	if err := Validate(entity); err != nil {
		return err
	}
	if s.def.BeforeCreate != nil {
		if err := s.def.BeforeCreate(s.db, entity); err != nil {
			return err
		}
	}
	if err := s.checkUniques(entity, nil); err != nil {
		return err
	}
	if err := s.repo.Create(entity); err != nil {
		return s.conflict(err)
	}

	logging.Logger().WithField("recurso", s.def.Name).
		WithField("chave", s.repo.KeyOf(entity)).
		Info("criado")
	metrics.RecordWrite(s.def.Name, "create")
	return nil
}

// Update aplica só as chaves do payload (todas precisam estar em Updatable),
// valida a entidade inteira de novo e grava.
func (s *CRUD[T]) Update(key any, payload map[string]json.RawMessage) (*T, error) {
	entity, err := s.repo.FindByID(key)
	if err != nil {
		return nil, err
	}

	changed, err := s.apply(entity, payload)
	if err != nil {
		return nil, err
	}
	s.normalize(entity)
	if err := Validate(entity); err != nil {
		return nil, err
	}
	if s.def.BeforeUpdate != nil {
		if err := s.def.BeforeUpdate(s.db, entity, changed); err != nil {
			return nil, err
		}
	}
	if err := s.checkUniques(entity, s.repo.KeyOf(entity)); err != nil {
		return nil, err
	}
	if err := s.repo.Save(entity); err != nil {
		return nil, s.conflict(err)
	}

	logging.Logger().WithField("recurso", s.def.Name).
		WithField("chave", key).
		WithField("campos", changed).
		Info("atualizado")
	metrics.RecordWrite(s.def.Name, "update")
	return entity, nil
}

func (s *CRUD[T]) Delete(key any) error {
	entity, err := s.repo.FindByID(key)
	if err != nil {
		return err
	}
	var before func(tx *gorm.DB) error
	if s.def.BeforeDelete != nil {
		before = func(tx *gorm.DB) error {
			return s.def.BeforeDelete(tx, entity)
		}
	}
	if err := s.repo.Delete(entity, before); err != nil {
		return s.conflict(err)
	}

	logging.Logger().WithField("recurso", s.def.Name).
		WithField("chave", key).
		Info("deletado")
	metrics.RecordWrite(s.def.Name, "delete")
	return nil
}

// DeleteBy apaga todas as linhas em que column = value. Nenhuma linha -> ErrNotFound.
func (s *CRUD[T]) DeleteBy(column string, value any) (int64, error) {
	n, err := s.repo.DeleteWhere(column+" = ?", value)
	if err != nil {
		return 0, s.conflict(err)
	}
	if n == 0 {
		return 0, ErrNotFound
	}

	logging.Logger().WithField("recurso", s.def.Name).
		WithField(column, value).
		WithField("total", n).
		Info("deletado")
	metrics.RecordWrite(s.def.Name, "delete")
	return n, nil
}

// FindBy busca por igualdade simples (ids, chaves estrangeiras).
func (s *CRUD[T]) FindBy(column string, value any) ([]T, error) {
	return s.found(s.repo.FindWhere(s.def.Order, column+" = ?", value))
}

// Search busca parcial, sem diferenciar maiúsculas/minúsculas.
func (s *CRUD[T]) Search(column, term string) ([]T, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return s.found(s.repo.FindWhere(s.def.Order, "LOWER("+column+") LIKE ? ESCAPE '\\'", pattern))
}

// curingas digitados pelo usuário valem como texto
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SearchExact busca por igualdade sem diferenciar maiúsculas/minúsculas.
func (s *CRUD[T]) SearchExact(column, term string) ([]T, error) {
	return s.found(s.repo.FindWhere(s.def.Order, "LOWER("+column+") = ?", strings.ToLower(term)))
}

// buscas secundárias nunca devolvem lista vazia: vazio é ErrNotFound
func (s *CRUD[T]) found(out []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *CRUD[T]) normalize(entity *T) {
	if s.def.Normalize != nil {
		s.def.Normalize(entity)
	}
}

func (s *CRUD[T]) apply(entity *T, payload map[string]json.RawMessage) ([]string, error) {
	if len(payload) == 0 {
		return nil, invalid("payload", "nenhum campo para atualizar")
	}

	allowed := make(map[string]struct{}, len(s.def.Updatable))
	for _, k := range s.def.Updatable {
		allowed[k] = struct{}{}
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rejected := map[string]string{}
	for _, k := range keys {
		if _, ok := allowed[k]; !ok {
			rejected[k] = "campo não pode ser atualizado"
		}
	}
	if len(rejected) > 0 {
		return nil, &ValidationError{Fields: rejected}
	}

	// uma chave por vez: o erro de decodificação fica no campo certo
	for _, k := range keys {
		var buf bytes.Buffer
		key, _ := json.Marshal(k)
		buf.WriteByte('{')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(payload[k])
		buf.WriteByte('}')
		if err := json.Unmarshal(buf.Bytes(), entity); err != nil {
			rejected[k] = "valor inválido"
		}
	}
	if len(rejected) > 0 {
		return nil, &ValidationError{Fields: rejected}
	}
	return keys, nil
}

func (s *CRUD[T]) checkUniques(entity *T, self any) error {
	pk := s.repo.PrimaryKey()
	for _, u := range s.def.Uniques {
		value := strings.TrimSpace(u.Value(entity))
		if value == "" {
			continue
		}

		query := "LOWER(" + u.Column + ") = ?"
		args := []any{strings.ToLower(value)}
		if self != nil {
			query += " AND " + pk + " <> ?"
			args = append(args, self)
		}

		exists, err := s.repo.Exists(query, args...)
		if err != nil {
			return err
		}
		if exists {
			return &ConflictError{Message: u.Message}
		}
	}
	return nil
}

// conflict transforma IntegrityError em ConflictError, com mensagem por campo
// quando a coluna aparece na mensagem do driver.
func (s *CRUD[T]) conflict(err error) error {
	var ie *repository.IntegrityError
	if !errors.As(err, &ie) {
		return err
	}

	driverMsg := ie.Error()
	lower := strings.ToLower(driverMsg)

	columns := make([]string, 0, len(s.def.Conflicts))
	for col := range s.def.Conflicts {
		columns = append(columns, col)
	}
	// colunas mais longas primeiro ("username" antes de "name")
	sort.Slice(columns, func(i, j int) bool { return len(columns[i]) > len(columns[j]) })

	if strings.Contains(lower, "unique") || strings.Contains(lower, "duplicate") {
		for _, col := range columns {
			if strings.Contains(lower, col) {
				return &ConflictError{Message: s.def.Conflicts[col], Err: err}
			}
		}
	}
	return &ConflictError{Message: fmt.Sprintf("Violação de integridade: %s", driverMsg), Err: err}
}
