package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rupeshmutkule/Shophub/controllers"
	"github.com/rupeshmutkule/Shophub/middleware"
	"github.com/rupeshmutkule/Shophub/models"
	"github.com/rupeshmutkule/Shophub/repositories"
	"github.com/rupeshmutkule/Shophub/services"
)

func SetupRoutes(router *gin.Engine) {
	emailSvc, err := models.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
		emailSvc = nil
	}

	cloudinarySvc, err := models.NewCloudinaryService()
	if err != nil {
		log.Println("Image uploads disabled:", err)
		cloudinarySvc = nil
	}

	productRepo := repositories.NewProductRepository()

	orderCtrl := controllers.NewOrderController(
		services.NewOrderService(repositories.NewOrderRepository(), emailSvc))
	productCtrl := controllers.NewProductController(
		productRepo, services.NewProductService(productRepo), cloudinarySvc)
	authCtrl := controllers.NewAuthController(
		services.NewAuthService(repositories.NewUserRepository(), emailSvc))
	contactCtrl := controllers.NewContactController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/products", productCtrl.GetAllProducts)
		api.POST("/products", productCtrl.CreateProduct)
		api.PUT("/products/:id", productCtrl.UpdateProduct)
		api.DELETE("/products/:id", productCtrl.DeleteProduct)
		api.POST("/seed", productCtrl.SeedProducts)
		api.POST("/upload", productCtrl.UploadPhoto)

		api.POST("/signup", authCtrl.Signup)
		api.POST("/login", authCtrl.Login)
		api.POST("/forgot-password", authCtrl.ForgotPassword)
		api.POST("/reset-password", authCtrl.ResetPassword)

		api.POST("/contact", contactCtrl.SubmitContact)

		// Order routes stay unauthenticated like the original demo: any
		// caller who knows an order id can change or delete it.
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders", orderCtrl.GetOrders)
		api.PATCH("/orders/:id/status", orderCtrl.UpdateOrderStatus)
		api.DELETE("/orders/:id", orderCtrl.DeleteOrder)
	}

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/profile", authCtrl.Profile)
	}
}
