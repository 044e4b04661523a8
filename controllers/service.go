package controllers

import (
	"marketplace/services"
)

var (
	// /service
	Services = NewResource(services.Services, IntParam)

	// GET /service/findByName/:nome
	FindServicesByName = Services.Search("nome", "name")
	// GET /service/findByUser/:userId
	FindServicesByUser = Services.FindBy("userId", "user_id", StringParam)
)

var (
	// /serviceTag
	ServiceTags = NewResource(services.ServiceTags, IntParam)

	// GET /serviceTag/findByName/:nome
	FindServiceTagsByName = ServiceTags.Search("nome", "name")
)
