package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service é um serviço oferecido por um usuário, classificado por tags (N:N).
// As tags precisam existir: o vínculo é gravado, a tag não é criada.
type Service struct {
	ID          int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name        string          `gorm:"type:varchar(100);not null;index" json:"nome" validate:"required,max=100"`
	Description string          `gorm:"type:text" json:"descricao" validate:"max=1000"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"preco" validate:"gt=0"`
	UserID      string          `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	Tags        []ServiceTag    `gorm:"many2many:service_tag_links;association_autoupdate:false;association_autocreate:false" json:"tags"`
	CreatedAt   *time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

// ServiceTag agrupa serviços e guarda um preço médio de referência.
type ServiceTag struct {
	ID           int64           `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name         string          `gorm:"type:varchar(50);not null;unique" json:"nome" validate:"required,min=2,max=50"`
	AveragePrice decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"precoMedio" validate:"gte=0"`
	CreatedAt    *time.Time      `json:"createdAt"`
	UpdatedAt    *time.Time      `json:"updatedAt"`
}
