package models

import "time"

// UserPlan representa a assinatura de um plano por um usuário.
// Active (ativacao) é apenas gravado; não há fluxo de ativação/expiração.
type UserPlan struct {
	ID               int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID           string     `gorm:"type:varchar(64) REFERENCES users(uid);not null;index" json:"usuarioId" validate:"required,max=64"`
	PlanID           int64      `gorm:"type:bigint REFERENCES plans(id);not null;index" json:"planoId" validate:"required,gt=0"`
	SubscriptionDate time.Time  `gorm:"not null" json:"dataAssinatura"`
	EndDate          *time.Time `json:"dataTermino"`
	Active           bool       `gorm:"not null;default:false" json:"ativacao"`
	CreatedAt        *time.Time `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}
