package services

import (
	"strings"

	"marketplace/models"

	"github.com/jinzhu/gorm"
)

func Categories(db *gorm.DB) *CRUD[models.Category] {
	return NewCRUD(db, Definition[models.Category]{
		Name:      "Categoria",
		NotFound:  "Categoria não encontrada.",
		Updated:   "Categoria atualizada com sucesso.",
		Deleted:   "Categoria deletada com sucesso.",
		Updatable: []string{"nome"},
		Uniques: []Unique[models.Category]{
			{Column: "name", Value: func(c *models.Category) string { return c.Name }, Message: "Categoria já existe."},
		},
		Conflicts: map[string]string{"name": "Categoria já existe."},
		Normalize: func(c *models.Category) {
			c.Name = strings.TrimSpace(c.Name)
		},
	})
}

func Products(db *gorm.DB) *CRUD[models.Product] {
	return NewCRUD(db, Definition[models.Product]{
		Name:      "Produto",
		NotFound:  "Produto não encontrado.",
		Updated:   "Produto atualizado com sucesso.",
		Deleted:   "Produto deletado com sucesso.",
		Updatable: []string{"nome", "estoque", "descricao", "preco", "condicao", "desconto", "imagem", "topico"},
		Normalize: func(p *models.Product) {
			p.Name = strings.TrimSpace(p.Name)
			p.Image = strings.TrimSpace(p.Image)
		},
		BeforeCreate: func(_ *gorm.DB, p *models.Product) error {
			if p.Topic == 0 {
				p.Topic = defaultTopic()
			}
			return nil
		},
	})
}
