package repository

import (
	"errors"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("registro não encontrado")

// IntegrityError é uma violação de restrição do banco (unique, foreign key, not null).
type IntegrityError struct {
	Err error
}

func (e *IntegrityError) Error() string {
	return e.Err.Error()
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// IsIntegrityViolation reconhece os erros de restrição do postgres (classe 23)
// e do sqlite (SQLITE_CONSTRAINT).
func IsIntegrityViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrConstraint
	}
	return false
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	// gorm junta vários erros num só; o de restrição costuma ser o primeiro
	if errs, ok := err.(gorm.Errors); ok {
		for _, e := range errs {
			if IsIntegrityViolation(e) {
				return &IntegrityError{Err: e}
			}
		}
		return err
	}
	if IsIntegrityViolation(err) {
		return &IntegrityError{Err: err}
	}
	return err
}
