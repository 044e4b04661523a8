package controllers

import (
	"marketplace/services"
)

var (
	// /product-payment
	ProductPayments = NewResource(services.ProductPayments, IntParam)
	// /payment-service
	ServicePayments = NewResource(services.ServicePayments, IntParam)
	// /payment-plan
	PlanPayments = NewResource(services.PlanPayments, IntParam)

	// GET /product-payment/findByUser/:userId
	FindProductPaymentsByUser = ProductPayments.FindBy("userId", "user_id", StringParam)
	// GET /payment-service/findByUser/:userId
	FindServicePaymentsByUser = ServicePayments.FindBy("userId", "user_id", StringParam)
	// GET /payment-plan/findByUser/:userId
	FindPlanPaymentsByUser = PlanPayments.FindBy("userId", "user_id", StringParam)
)
