package models

import (
	"time"

	"github.com/shopspring/decimal"
)

/************************************************
/**** MARK: PAYMENT TYPES ****/
/************************************************/
const PAYMENT_TYPE_PIX = "pix"
const PAYMENT_TYPE_BOLETO = "boleto"
const PAYMENT_TYPE_CREDIT = "credito"
const PAYMENT_TYPE_DEBIT = "debito"

type ProductPayment struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID      string          `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	ProductID   int64           `gorm:"type:bigint REFERENCES products(id);not null;index" json:"produtoId" validate:"required,gt=0"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor" validate:"gt=0"`
	PaymentType string          `gorm:"type:varchar(20);not null" json:"tipoPagamento" validate:"required,oneof=pix boleto credito debito"`
	PaymentDate time.Time       `gorm:"not null" json:"dataPagamento"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

type ServicePayment struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID      string          `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	ServiceID   int64           `gorm:"type:bigint REFERENCES services(id);not null;index" json:"servicoId" validate:"required,gt=0"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor" validate:"gt=0"`
	PaymentType string          `gorm:"type:varchar(20);not null" json:"tipoPagamento" validate:"required,oneof=pix boleto credito debito"`
	PaymentDate time.Time       `gorm:"not null" json:"dataPagamento"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

type PlanPayment struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID      string          `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	PlanID      int64           `gorm:"type:bigint REFERENCES plans(id);not null;index" json:"planoId" validate:"required,gt=0"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"valor" validate:"gt=0"`
	PaymentType string          `gorm:"type:varchar(20);not null" json:"tipoPagamento" validate:"required,oneof=pix boleto credito debito"`
	PaymentDate time.Time       `gorm:"not null" json:"dataPagamento"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}
