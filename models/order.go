package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order é um pedido. PaymentCompleted é só um campo gravado, nenhum fluxo o altera.
type Order struct {
	ID               int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID           string          `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	OrderDate        time.Time       `gorm:"not null" json:"dataPedido"`
	TotalValue       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valorTotal" validate:"gte=0"`
	PaymentCompleted bool            `gorm:"not null;default:false" json:"pagamentoConcluido"`
	CartID           *int64          `gorm:"type:bigint REFERENCES carts(id);index" json:"carrinhoId" validate:"omitempty,gt=0"`
	CreatedAt        *time.Time      `json:"createdAt"`
	UpdatedAt        *time.Time      `json:"updatedAt"`
}

type OrderItem struct {
	ID        int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	OrderID   int64           `gorm:"type:bigint REFERENCES orders(id);not null;index" json:"pedidoId" validate:"required,gt=0"`
	ProductID int64           `gorm:"type:bigint REFERENCES products(id);not null;index" json:"produtoId" validate:"required,gt=0"`
	Quantity  int             `gorm:"not null;default:1" json:"quantidade" validate:"required,min=1"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precoUnitario" validate:"gt=0"`
	CreatedAt *time.Time      `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt"`
}
