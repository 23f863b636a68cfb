package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	intconfig "frotalog/internal/config"
	h "frotalog/internal/http/handlers"
	"frotalog/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsConfig())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Payment provider callback; verified by payload, not by tenant token
		api.POST("/billing/webhook", h.BillingWebhook)

		// Tenant-scoped routes
		private := api.Group("")
		private.Use(middleware.RequireAuth())
		{
			// Trips
			trips := private.Group("/trips")
			trips.GET("", h.GetTrips)
			trips.POST("", h.CreateTrip)
			trips.PUT("/:id", h.UpdateTrip)
			trips.PUT("/:id/status", h.UpdateTripStatus)
			trips.DELETE("/:id", h.DeleteTrip)
			trips.GET("/:id/receipt", h.GetTripReceiptPDF)

			// Vehicles
			vehicles := private.Group("/vehicles")
			vehicles.GET("", h.GetVehicles)
			vehicles.POST("", h.CreateVehicle)
			vehicles.PUT("/:id", h.UpdateVehicle)
			vehicles.DELETE("/:id", h.DeleteVehicle)

			// Drivers
			drivers := private.Group("/drivers")
			drivers.GET("", h.GetDrivers)
			drivers.POST("", h.CreateDriver)
			drivers.PUT("/:id", h.UpdateDriver)
			drivers.DELETE("/:id", h.DeleteDriver)

			// Shippers
			shippers := private.Group("/shippers")
			shippers.GET("", h.GetShippers)
			shippers.POST("", h.CreateShipper)
			shippers.PUT("/:id", h.UpdateShipper)
			shippers.DELETE("/:id", h.DeleteShipper)

			// Profile config
			private.GET("/profile/config", h.GetProfileConfig)
			private.PUT("/profile/config", h.UpdateProfileConfig)

			// Dashboard & insights
			private.GET("/dashboard", h.GetDashboard)
			private.GET("/dashboard/monthly", h.GetMonthlySeries)
			private.GET("/insights", h.GetInsights)
			private.GET("/insights/tips", h.GetGoldenTips)

			// Reports
			private.GET("/reports/fleet", h.GetFleetReportPDF)

			// Maintenance costs
			private.GET("/maintenance-costs", h.ListMaintenanceCosts)
			private.POST("/maintenance-costs", h.CreateMaintenanceCost)
			private.DELETE("/maintenance-costs/:id", h.DeleteMaintenanceCost)

			// GPS tracking (companion app + live map)
			private.POST("/tracking/positions", h.RecordTrackingPositions)
			private.GET("/tracking/latest", h.GetLatestPositions)
			private.GET("/tracking/live", h.TrackingLiveFeed)

			// Billing
			private.GET("/billing/subscription", h.GetSubscription)

			// Admin
			admin := private.Group("/admin")
			admin.Use(middleware.RequireRoles("admin"))
			admin.GET("/subscriptions", h.ListSubscriptions)
		}
	}

	return r
}

func corsConfig() gin.HandlerFunc {
	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
