package services

import (
	"marketplace/models"

	"github.com/jinzhu/gorm"
)

var paymentUpdatable = []string{"valor", "tipoPagamento", "dataPagamento"}

func ProductPayments(db *gorm.DB) *CRUD[models.ProductPayment] {
	return NewCRUD(db, Definition[models.ProductPayment]{
		Name:      "Pagamento de produto",
		NotFound:  "Pagamento não encontrado.",
		Updated:   "Pagamento atualizado com sucesso.",
		Deleted:   "Pagamento deletado com sucesso.",
		Updatable: paymentUpdatable,
		BeforeCreate: func(_ *gorm.DB, p *models.ProductPayment) error {
			if p.PaymentDate.IsZero() {
				p.PaymentDate = now()
			}
			return nil
		},
	})
}

func ServicePayments(db *gorm.DB) *CRUD[models.ServicePayment] {
	return NewCRUD(db, Definition[models.ServicePayment]{
		Name:      "Pagamento de serviço",
		NotFound:  "Pagamento não encontrado.",
		Updated:   "Pagamento atualizado com sucesso.",
		Deleted:   "Pagamento deletado com sucesso.",
		Updatable: paymentUpdatable,
		BeforeCreate: func(_ *gorm.DB, p *models.ServicePayment) error {
			if p.PaymentDate.IsZero() {
				p.PaymentDate = now()
			}
			return nil
		},
	})
}

func PlanPayments(db *gorm.DB) *CRUD[models.PlanPayment] {
	return NewCRUD(db, Definition[models.PlanPayment]{
		Name:      "Pagamento de plano",
		NotFound:  "Pagamento não encontrado.",
		Updated:   "Pagamento atualizado com sucesso.",
		Deleted:   "Pagamento deletado com sucesso.",
		Updatable: paymentUpdatable,
		BeforeCreate: func(_ *gorm.DB, p *models.PlanPayment) error {
			if p.PaymentDate.IsZero() {
				p.PaymentDate = now()
			}
			return nil
		},
	})
}
