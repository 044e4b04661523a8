package services

import (
	"strings"

	"marketplace/models"

	"github.com/jinzhu/gorm"
)

func Plans(db *gorm.DB) *CRUD[models.Plan] {
	return NewCRUD(db, Definition[models.Plan]{
		Name:      "Plano",
		NotFound:  "Plano não encontrado.",
		Updated:   "Plano atualizado com sucesso.",
		Deleted:   "Plano deletado com sucesso.",
		Updatable: []string{"nome", "descricao", "valor"},
		Uniques: []Unique[models.Plan]{
			{Column: "name", Value: func(p *models.Plan) string { return p.Name }, Message: "Já existe um plano com este nome."},
		},
		Conflicts: map[string]string{"name": "Já existe um plano com este nome."},
		Normalize: func(p *models.Plan) {
			p.Name = strings.TrimSpace(p.Name)
		},
	})
}

func UserPlans(db *gorm.DB) *CRUD[models.UserPlan] {
	return NewCRUD(db, Definition[models.UserPlan]{
		Name:      "Plano do usuário",
		NotFound:  "Plano do usuário não encontrado.",
		Updated:   "Plano do usuário atualizado com sucesso.",
		Deleted:   "Plano do usuário deletado com sucesso.",
		Updatable: []string{"planoId", "dataAssinatura", "dataTermino", "ativacao"},
		BeforeCreate: func(_ *gorm.DB, up *models.UserPlan) error {
			if up.SubscriptionDate.IsZero() {
				up.SubscriptionDate = now()
			}
			return checkPeriod(up)
		},
		BeforeUpdate: func(_ *gorm.DB, up *models.UserPlan, _ []string) error {
			return checkPeriod(up)
		},
	})
}

func checkPeriod(up *models.UserPlan) error {
	if up.EndDate != nil && up.EndDate.Before(up.SubscriptionDate) {
		return invalid("dataTermino", "deve ser posterior à data de assinatura")
	}
	return nil
}
