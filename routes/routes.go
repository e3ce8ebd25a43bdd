package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"wavebarber-backend/config"
	"wavebarber-backend/controllers"
	"wavebarber-backend/utils"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	origins := []string{"http://localhost:5173", "http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api")
	{
		// Public customer widget routes
		api.GET("/days", controllers.GetDays)
		api.GET("/services", controllers.GetServices)
		api.GET("/services/:slug", controllers.GetService)
		api.POST("/appointments", controllers.CreateAppointment)

		// Owner dashboard routes
		owner := api.Group("")
		owner.Use(utils.AuthMiddleware())
		{
			appointments := owner.Group("/appointments")
			{
				appointments.GET("", controllers.GetAppointments)
				appointments.GET("/trash", controllers.GetTrashedAppointments)
				appointments.GET("/:id", controllers.GetAppointment)
				appointments.PUT("/:id", controllers.UpdateAppointment)
				appointments.DELETE("/:id", controllers.DeleteAppointment)
				appointments.POST("/:id/restore", controllers.RestoreAppointment)
				appointments.DELETE("/:id/purge", controllers.PurgeAppointment)
			}

			availability := owner.Group("/availability")
			{
				availability.GET("/days", controllers.GetDayAvailability)
				availability.PUT("/days", controllers.UpdateDayAvailability)
				availability.GET("/ranges", controllers.GetCustomRanges)
				availability.POST("/ranges", controllers.CreateCustomRange)
				availability.DELETE("/ranges/:id", controllers.DeleteCustomRange)
			}

			owner.GET("/dashboard", controllers.GetDashboardOverview)
			owner.GET("/analytics", controllers.GetAnalytics)
		}
	}

	return r
}
