package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plan representa um plano de assinatura oferecido aos usuários.
type Plan struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string          `gorm:"type:varchar(60);not null;unique" json:"nome" validate:"required,min=2,max=60"`
	Description string          `gorm:"type:text" json:"descricao" validate:"max=500"`
	Value       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor" validate:"gt=0"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}
