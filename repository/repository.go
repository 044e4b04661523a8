package repository

import (
	"github.com/jinzhu/gorm"
)

// Repository faz o acesso a uma única tabela (a do tipo T).
// É barato de criar: um por requisição, em cima do *gorm.DB do contexto.
type Repository[T any] struct {
	db      *gorm.DB
	preload []string
}

func New[T any](db *gorm.DB, preload ...string) *Repository[T] {
	return &Repository[T]{db: db, preload: preload}
}

func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// PrimaryKey devolve o nome da coluna chave de T (ex: "id", "uid").
func (r *Repository[T]) PrimaryKey() string {
	return r.db.NewScope(new(T)).PrimaryKey()
}

// KeyOf devolve o valor da chave primária de uma entidade.
func (r *Repository[T]) KeyOf(entity *T) any {
	return r.db.NewScope(entity).PrimaryKeyValue()
}

func (r *Repository[T]) query() *gorm.DB {
	q := r.db
	for _, p := range r.preload {
		q = q.Preload(p)
	}
	return q
}

func (r *Repository[T]) FindAll(order string) ([]T, error) {
	var out []T
	q := r.query()
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *Repository[T]) FindByID(key any) (*T, error) {
	var out T
	if err := r.query().Where(r.PrimaryKey()+" = ?", key).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *Repository[T]) FindWhere(order string, query string, args ...any) ([]T, error) {
	var out []T
	q := r.query().Where(query, args...)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *Repository[T]) Exists(query string, args ...any) (bool, error) {
	var count int
	if err := r.db.Model(new(T)).Where(query, args...).Count(&count).Error; err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *Repository[T]) Create(entity *T) error {
	return r.atomic(func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
}

func (r *Repository[T]) Save(entity *T) error {
	return r.atomic(func(tx *gorm.DB) error {
		return tx.Save(entity).Error
	})
}

// Delete apaga a entidade; before (opcional) roda antes, na mesma transação.
func (r *Repository[T]) Delete(entity *T, before func(tx *gorm.DB) error) error {
	return r.atomic(func(tx *gorm.DB) error {
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}
		return tx.Delete(entity).Error
	})
}

// DeleteWhere apaga todas as linhas do filtro e devolve quantas foram removidas.
func (r *Repository[T]) DeleteWhere(query string, args ...any) (int64, error) {
	var affected int64
	err := r.atomic(func(tx *gorm.DB) error {
		res := tx.Where(query, args...).Delete(new(T))
		affected = res.RowsAffected
		return res.Error
	})
	return affected, err
}

// atomic executa fn numa transação própria; qualquer erro desfaz tudo.
func (r *Repository[T]) atomic(fn func(tx *gorm.DB) error) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return translate(tx.Error)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return translate(err)
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return translate(err)
	}
	return nil
}
