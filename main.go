package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/rupeshmutkule/Shophub/config"
	_ "github.com/rupeshmutkule/Shophub/docs"
	"github.com/rupeshmutkule/Shophub/middleware"
	"github.com/rupeshmutkule/Shophub/models"
	"github.com/rupeshmutkule/Shophub/routes"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitDB()
	defer models.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
