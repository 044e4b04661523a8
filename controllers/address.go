package controllers

import (
	"marketplace/services"
)

var (
	// /address
	Addresses = NewResource(services.Addresses, IntParam)

	// GET /address/findByUser/:userId
	FindAddressesByUser = Addresses.FindBy("userId", "user_id", StringParam)
	// GET /address/findByCep/:cep
	FindAddressesByCep = Addresses.FindBy("cep", "postal_code", StringParam)
	// DELETE /address/deleteByUser/:userId
	DeleteAddressesByUser = Addresses.DeleteBy("userId", "user_id", StringParam)
)
