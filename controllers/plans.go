package controllers

import (
	"marketplace/services"
)

var (
	// /plan
	Plans = NewResource(services.Plans, IntParam)

	// GET /plan/findByName/:nome
	FindPlansByName = Plans.Search("nome", "name")
)

var (
	// /user-plan
	UserPlans = NewResource(services.UserPlans, IntParam)

	// GET /user-plan/findByUser/:userId
	FindUserPlansByUser = UserPlans.FindBy("userId", "user_id", StringParam)
	// DELETE /user-plan/deleteByUser/:userId
	DeleteUserPlansByUser = UserPlans.DeleteBy("userId", "user_id", StringParam)
)
