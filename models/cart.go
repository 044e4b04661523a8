package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart é uma linha do carrinho de compras (usuário + produto + quantidade).
type Cart struct {
	ID         int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID     string          `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	ProductID  int64           `gorm:"type:bigint REFERENCES products(id);not null;index" json:"produtoId" validate:"required,gt=0"`
	Quantity   int             `gorm:"not null;default:1" json:"quantidade" validate:"required,min=1"`
	TotalValue decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorTotal" validate:"gte=0"`
	CreatedAt  *time.Time      `json:"createdAt"`
	UpdatedAt  *time.Time      `json:"updatedAt"`
}
