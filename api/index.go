package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	_ "github.com/rupeshmutkule/Shophub/docs"
	"github.com/rupeshmutkule/Shophub/middleware"
	"github.com/rupeshmutkule/Shophub/models"
	"github.com/rupeshmutkule/Shophub/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		models.InitDB()
		models.InitRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

// Handler is the Vercel serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
