package services

import (
	"strings"

	"marketplace/models"

	"github.com/jinzhu/gorm"
)

func Services(db *gorm.DB) *CRUD[models.Service] {
	return NewCRUD(db, Definition[models.Service]{
		Name:      "Serviço",
		NotFound:  "Serviço não encontrado.",
		Updated:   "Serviço atualizado com sucesso.",
		Deleted:   "Serviço deletado com sucesso.",
		Order:     "id asc",
		Preload:   []string{"Tags"},
		Updatable: []string{"nome", "descricao", "preco"},
		Normalize: func(s *models.Service) {
			s.Name = strings.TrimSpace(s.Name)
		},
		BeforeCreate: func(db *gorm.DB, s *models.Service) error {
			return checkTags(db, s.Tags)
		},
		BeforeDelete: func(tx *gorm.DB, s *models.Service) error {
			return tx.Model(s).Association("Tags").Clear().Error
		},
	})
}

func ServiceTags(db *gorm.DB) *CRUD[models.ServiceTag] {
	return NewCRUD(db, Definition[models.ServiceTag]{
		Name:      "Tag",
		NotFound:  "Tag não encontrada.",
		Updated:   "Tag atualizada com sucesso.",
		Deleted:   "Tag deletada com sucesso.",
		Updatable: []string{"nome", "precoMedio"},
		Uniques: []Unique[models.ServiceTag]{
			{Column: "name", Value: func(t *models.ServiceTag) string { return t.Name }, Message: "Tag já existe."},
		},
		Conflicts: map[string]string{"name": "Tag já existe."},
		Normalize: func(t *models.ServiceTag) {
			t.Name = strings.TrimSpace(t.Name)
		},
		// o vínculo N:N não tem FK no banco; a checagem fica aqui
		BeforeDelete: func(tx *gorm.DB, t *models.ServiceTag) error {
			var links int
			if err := tx.Table("service_tag_links").Where("service_tag_id = ?", t.ID).Count(&links).Error; err != nil {
				return err
			}
			if links > 0 {
				return &ConflictError{Message: "Tag vinculada a serviços."}
			}
			return nil
		},
	})
}

// checkTags garante que as tags informadas já existem; elas só são vinculadas.
func checkTags(db *gorm.DB, tags []models.ServiceTag) error {
	if len(tags) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(tags))
	for _, t := range tags {
		if t.ID <= 0 {
			return invalid("tags", "informe o id de cada tag")
		}
		ids = append(ids, t.ID)
	}

	var found []models.ServiceTag
	if err := db.Where("id in (?)", ids).Find(&found).Error; err != nil {
		return err
	}

	byID := make(map[int64]models.ServiceTag, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}
	for i, t := range tags {
		existing, ok := byID[t.ID]
		if !ok {
			return invalid("tags", "tag não encontrada")
		}
		tags[i] = existing
	}
	return nil
}
