package services

import (
	"strings"

	"marketplace/models"
	"marketplace/tools"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

func Users(db *gorm.DB) *CRUD[models.User] {
	return NewCRUD(db, Definition[models.User]{
		Name:      "Usuario",
		NotFound:  "Usuario não encontrado.",
		Updated:   "Usuario atualizado com sucesso.",
		Deleted:   "Usuario deletado com sucesso.",
		Updatable: []string{"nome", "username", "email", "senha", "telefone", "dataNascimento", "genero", "cpf"},
		Uniques: []Unique[models.User]{
			{Column: "username", Value: func(u *models.User) string { return u.Username }, Message: "Username já está em uso."},
			{Column: "email", Value: func(u *models.User) string { return u.Email }, Message: "Email já está em uso."},
			{Column: "phone", Value: func(u *models.User) string { return u.Phone }, Message: "Telefone já está em uso."},
			{Column: "cpf", Value: func(u *models.User) string { return u.CPF }, Message: "CPF já está em uso."},
		},
		Conflicts: map[string]string{
			"username": "Username já está em uso.",
			"email":    "Email já está em uso.",
			"phone":    "Telefone já está em uso.",
			"cpf":      "CPF já está em uso.",
		},
		Normalize: normalizeUser,
		BeforeCreate: func(_ *gorm.DB, u *models.User) error {
			if strings.TrimSpace(u.UID) == "" {
				u.UID = uuid.NewString()
			}
			u.Password = tools.HashPassword(u.Email, u.Password)
			return nil
		},
		// o hash da senha leva o email; trocar um sem o outro invalida a senha
		BeforeUpdate: func(db *gorm.DB, u *models.User, changed []string) error {
			if contains(changed, "senha") {
				u.Password = tools.HashPassword(u.Email, u.Password)
				return nil
			}
			if !contains(changed, "email") {
				return nil
			}
			var stored models.User
			if err := db.Select("email").Where("uid = ?", u.UID).First(&stored).Error; err != nil {
				return err
			}
			if stored.Email != u.Email {
				return invalid("senha", "informe a senha para trocar o email")
			}
			return nil
		},
	})
}

func normalizeUser(u *models.User) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.TrimSpace(u.Username)
	u.Phone = tools.NormalizePhone(u.Phone)
	u.CPF = tools.OnlyDigits(u.CPF)
}
