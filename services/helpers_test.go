package services

import (
	"testing"

	dbpkg "marketplace/db"
	"marketplace/models"

	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", dbpkg.SqliteDSN(":memory:"))
	require.NoError(t, err)
	// :memory: é por conexão
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, dbpkg.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}

func newUser(t *testing.T, db *gorm.DB, username, cpf, phone string) *models.User {
	t.Helper()

	u := &models.User{
		Name:     "Usuario " + username,
		Username: username,
		Email:    username + "@exemplo.com",
		Password: "segredo123",
		Phone:    phone,
		CPF:      cpf,
	}
	require.NoError(t, Users(db).Create(u))
	return u
}

func newProduct(t *testing.T, db *gorm.DB, owner *models.User, name string) *models.Product {
	t.Helper()

	p := &models.Product{
		Name:      name,
		Stock:     3,
		Price:     decimal.RequireFromString("99.90"),
		Condition: true,
		UserID:    owner.UID,
		Topic:     2,
	}
	require.NoError(t, Products(db).Create(p))
	return p
}
