package services

import (
	"marketplace/models"

	"github.com/jinzhu/gorm"
)

func Carts(db *gorm.DB) *CRUD[models.Cart] {
	return NewCRUD(db, Definition[models.Cart]{
		Name:      "Carrinho",
		NotFound:  "Carrinho não encontrado.",
		Updated:   "Carrinho atualizado com sucesso.",
		Deleted:   "Carrinho deletado com sucesso.",
		Updatable: []string{"produtoId", "quantidade", "valorTotal"},
	})
}

func Orders(db *gorm.DB) *CRUD[models.Order] {
	return NewCRUD(db, Definition[models.Order]{
		Name:      "Pedido",
		NotFound:  "Pedido não encontrado.",
		Updated:   "Pedido atualizado com sucesso.",
		Deleted:   "Pedido deletado com sucesso.",
		Updatable: []string{"dataPedido", "valorTotal", "pagamentoConcluido", "carrinhoId"},
		BeforeCreate: func(_ *gorm.DB, o *models.Order) error {
			if o.OrderDate.IsZero() {
				o.OrderDate = now()
			}
			return nil
		},
	})
}

func OrderItems(db *gorm.DB) *CRUD[models.OrderItem] {
	return NewCRUD(db, Definition[models.OrderItem]{
		Name:      "Item do pedido",
		NotFound:  "Item do pedido não encontrado.",
		Updated:   "Item do pedido atualizado com sucesso.",
		Deleted:   "Item do pedido deletado com sucesso.",
		Updatable: []string{"quantidade", "precoUnitario"},
	})
}
