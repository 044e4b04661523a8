package models

import "time"

/************************************************
/**** MARK: USER GENDER ****/
/************************************************/
const USER_GENDER_MALE = "masculino"
const USER_GENDER_FEMALE = "feminino"
const USER_GENDER_OTHER = "outro"

// User representa um usuario no sistema.
// A chave é o UID externo (uuid gerado quando o cliente não informa).
type User struct {
	UID       string     `gorm:"primary_key;column:uid;type:varchar(64)" json:"uid" validate:"omitempty,max=64"`
	Name      string     `gorm:"type:varchar(100);not null" json:"nome" validate:"required,min=2,max=100"`
	Username  string     `gorm:"type:varchar(50);not null;unique" json:"username" validate:"required,min=3,max=50"`
	Email     string     `gorm:"type:varchar(100);not null;unique" json:"email" validate:"required,email,max=100"`
	Password  string     `gorm:"type:varchar(128);not null" json:"senha,omitempty" validate:"required,min=6,max=128"`
	Phone     string     `gorm:"type:varchar(20);not null;unique" json:"telefone" validate:"required,min=10,max=20"`
	Birthdate string     `gorm:"type:varchar(10);default:''" json:"dataNascimento" validate:"omitempty,datetime=2006-01-02"`
	Gender    string     `gorm:"type:varchar(20);default:''" json:"genero" validate:"omitempty,oneof=masculino feminino outro"`
	CPF       string     `gorm:"column:cpf;type:varchar(14);not null;unique" json:"cpf" validate:"required,cpf"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Sanitize limpa o que não deve sair na resposta.
func (user *User) Sanitize() {
	user.Password = ""
}
