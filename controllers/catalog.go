package controllers

import (
	"marketplace/services"
)

var (
	// /category
	Categories = NewResource(services.Categories, IntParam)

	// GET /category/findByName/:nome
	FindCategoriesByName = Categories.Search("nome", "name")
)

var (
	// /product
	Products = NewResource(services.Products, IntParam)

	// GET /product/findByName/:nome
	FindProductsByName = Products.Search("nome", "name")
	// GET /product/findByUser/:userId
	FindProductsByUser = Products.FindBy("userId", "user_id", StringParam)
	// GET /product/findByTopic/:topico
	FindProductsByTopic = Products.FindBy("topico", "topic", IntParam)
)
