package router

import (
	"net/http"

	"marketplace/config"
	"marketplace/controllers"
	dbpkg "marketplace/db"
	"marketplace/logging"
	"marketplace/metrics"
	"marketplace/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// handlers padrão de um recurso
type crud interface {
	List(c *gin.Context)
	FindByID(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// Initialize registra middlewares e rotas.
// O RateLimiter devolvido é nil quando o limite está desligado.
func Initialize(r *gin.Engine, db *gorm.DB, cfg config.Configuration) *middleware.RateLimiter {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(Logger())
	if cfg.MetricsEnabled() {
		r.Use(middleware.Metrics())
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Handler())
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if cfg.MetricsEnabled() {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	api := r.Group("")
	api.Use(dbpkg.SetDBtoContext(db))

	user := register(api, "/user", controllers.Users)
	user.GET("/findByEmail/:email", controllers.FindUsersByEmail)
	user.GET("/findByUsername/:username", controllers.FindUsersByUsername)
	user.GET("/findByName/:nome", controllers.FindUsersByName)

	address := register(api, "/address", controllers.Addresses)
	address.GET("/findByUser/:userId", controllers.FindAddressesByUser)
	address.GET("/findByCep/:cep", controllers.FindAddressesByCep)
	address.DELETE("/deleteByUser/:userId", controllers.DeleteAddressesByUser)

	category := register(api, "/category", controllers.Categories)
	category.GET("/findByName/:nome", controllers.FindCategoriesByName)

	product := register(api, "/product", controllers.Products)
	product.GET("/findByName/:nome", controllers.FindProductsByName)
	product.GET("/findByUser/:userId", controllers.FindProductsByUser)
	product.GET("/findByTopic/:topico", controllers.FindProductsByTopic)

	service := register(api, "/service", controllers.Services)
	service.GET("/findByName/:nome", controllers.FindServicesByName)
	service.GET("/findByUser/:userId", controllers.FindServicesByUser)

	tag := register(api, "/serviceTag", controllers.ServiceTags)
	tag.GET("/findByName/:nome", controllers.FindServiceTagsByName)

	cart := register(api, "/shopping-cart", controllers.Carts)
	cart.GET("/findByUser/:userId", controllers.FindCartsByUser)
	cart.DELETE("/deleteByUser/:userId", controllers.DeleteCartsByUser)

	order := register(api, "/order", controllers.Orders)
	order.GET("/findByUser/:userId", controllers.FindOrdersByUser)

	item := register(api, "/orderItem", controllers.OrderItems)
	item.GET("/findByOrder/:orderId", controllers.FindOrderItemsByOrder)

	plan := register(api, "/plan", controllers.Plans)
	plan.GET("/findByName/:nome", controllers.FindPlansByName)

	userPlan := register(api, "/user-plan", controllers.UserPlans)
	userPlan.GET("/findByUser/:userId", controllers.FindUserPlansByUser)
	userPlan.DELETE("/deleteByUser/:userId", controllers.DeleteUserPlansByUser)

	productPayment := register(api, "/product-payment", controllers.ProductPayments)
	productPayment.GET("/findByUser/:userId", controllers.FindProductPaymentsByUser)

	servicePayment := register(api, "/payment-service", controllers.ServicePayments)
	servicePayment.GET("/findByUser/:userId", controllers.FindServicePaymentsByUser)

	planPayment := register(api, "/payment-plan", controllers.PlanPayments)
	planPayment.GET("/findByUser/:userId", controllers.FindPlanPaymentsByUser)

	logging.Logger().Info("Routes initialized")
	return limiter
}

func register(api *gin.RouterGroup, path string, res crud) *gin.RouterGroup {
	g := api.Group(path)
	g.GET("/findAll", res.List)
	g.GET("/findById/:id", res.FindByID)
	g.POST("/add", res.Create)
	g.PATCH("/update/:id", res.Update)
	g.DELETE("/delete/:id", res.Delete)
	return g
}
