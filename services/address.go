package services

import (
	"strings"

	"marketplace/models"
	"marketplace/tools"

	"github.com/jinzhu/gorm"
)

func Addresses(db *gorm.DB) *CRUD[models.Address] {
	return NewCRUD(db, Definition[models.Address]{
		Name:      "Endereço",
		NotFound:  "Endereço não encontrado.",
		Updated:   "Endereço atualizado com sucesso.",
		Deleted:   "Endereço deletado com sucesso.",
		Updatable: []string{"cep", "estado", "cidade", "bairro", "rua", "numero", "complemento"},
		Normalize: normalizeAddress,
	})
}

func normalizeAddress(a *models.Address) {
	a.PostalCode = tools.OnlyDigits(a.PostalCode)
	a.State = strings.ToUpper(strings.TrimSpace(a.State))
}
