package controllers

import (
	"marketplace/services"
)

var (
	// /user (a chave é o uid)
	Users = NewResource(services.Users, StringParam)

	// GET /user/findByEmail/:email
	FindUsersByEmail = Users.SearchExact("email", "email")
	// GET /user/findByUsername/:username
	FindUsersByUsername = Users.SearchExact("username", "username")
	// GET /user/findByName/:nome
	FindUsersByName = Users.Search("nome", "name")
)
