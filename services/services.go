package services

import (
	"time"

	"marketplace/config"
	"marketplace/models"
	"marketplace/tools"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// randomTopic é trocado nos testes para o sorteio ser determinístico.
var randomTopic = func() int {
	return tools.RandomInt(models.PRODUCT_TOPIC_MIN, models.PRODUCT_TOPIC_MAX)
}

// defaultTopic decide o tópico de um produto criado sem "topico".
func defaultTopic() int {
	if t := conf.Product.DefaultTopic; t >= models.PRODUCT_TOPIC_MIN && t <= models.PRODUCT_TOPIC_MAX {
		return t
	}
	return randomTopic()
}

var now = time.Now

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
