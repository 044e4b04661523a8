package models

import "time"

// Address é um endereço de entrega de um usuário.
type Address struct {
	ID           int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID       string     `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	PostalCode   string     `gorm:"column:postal_code;type:varchar(8);not null;index" json:"cep" validate:"required,len=8,numeric"`
	State        string     `gorm:"type:varchar(2);not null" json:"estado" validate:"required,len=2,alpha"`
	City         string     `gorm:"type:varchar(100);not null" json:"cidade" validate:"required,max=100"`
	Neighborhood string     `gorm:"type:varchar(100);not null" json:"bairro" validate:"required,max=100"`
	Street       string     `gorm:"type:varchar(150);not null" json:"rua" validate:"required,max=150"`
	Number       string     `gorm:"type:varchar(10);not null" json:"numero" validate:"required,max=10"`
	Complement   string     `gorm:"type:varchar(100);default:''" json:"complemento" validate:"max=100"`
	CreatedAt    *time.Time `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}
