package controllers

import (
	"marketplace/services"
)

var (
	// /shopping-cart
	Carts = NewResource(services.Carts, IntParam)

	// GET /shopping-cart/findByUser/:userId
	FindCartsByUser = Carts.FindBy("userId", "user_id", StringParam)
	// DELETE /shopping-cart/deleteByUser/:userId
	DeleteCartsByUser = Carts.DeleteBy("userId", "user_id", StringParam)
)

var (
	// /order
	Orders = NewResource(services.Orders, IntParam)

	// GET /order/findByUser/:userId
	FindOrdersByUser = Orders.FindBy("userId", "user_id", StringParam)
)

var (
	// /orderItem
	OrderItems = NewResource(services.OrderItems, IntParam)

	// GET /orderItem/findByOrder/:orderId
	FindOrderItemsByOrder = OrderItems.FindBy("orderId", "order_id", IntParam)
)
