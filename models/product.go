package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const PRODUCT_TOPIC_MIN = 1
const PRODUCT_TOPIC_MAX = 4

// Product é um item anunciado por um usuário.
// Condition true = novo, false = usado. Discount é percentual (0-100).
type Product struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null;index" json:"nome" validate:"required,max=100"`
	Stock       int             `gorm:"not null;default:0" json:"estoque" validate:"gte=0"`
	Description string          `gorm:"type:text" json:"descricao" validate:"max=1000"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"preco" validate:"gt=0"`
	Condition   bool            `gorm:"not null" json:"condicao"`
	Discount    decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0" json:"desconto" validate:"gte=0,lte=100"`
	Image       string          `gorm:"type:varchar(500);default:''" json:"imagem" validate:"omitempty,url,max=500"`
	UserID      string          `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	Topic       int             `gorm:"not null;default:1" json:"topico" validate:"omitempty,min=1,max=4"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}
