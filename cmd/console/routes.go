package main

import (
	"github.com/gin-gonic/gin"

	"magiccall-admin/internal/console"
	"magiccall-admin/internal/rbac"
	"magiccall-admin/internal/session"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, h *console.Handlers, guard session.Guard) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/console")

	// login is reachable without a session; everything else is not
	api.POST("/login", h.Login)
	api.GET("/login", h.LoginStatus)

	protected := api.Group("", guard.RequireSession(), rbac.RequireAdmin())
	{
		protected.POST("/logout", h.Logout)
		protected.GET("/session", h.SessionInfo)

		protected.GET("/dashboard", h.Dashboard)

		users := protected.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
			users.PATCH("/:id/enable", h.EnableUser)
			users.PATCH("/:id/disable", h.DisableUser)
			users.GET("/:id/balance", h.GetUserBalance)
			users.GET("/:id/calls", h.GetUserCalls)
		}

		voiceTypes := protected.Group("/voice-types")
		{
			voiceTypes.GET("", h.ListVoiceTypes)
			voiceTypes.POST("", h.CreateVoiceType)
			voiceTypes.PUT("/:id", h.UpdateVoiceType)
			voiceTypes.DELETE("/:id", h.DeleteVoiceType)
		}

		packages := protected.Group("/packages")
		{
			packages.GET("", h.ListPackages)
			packages.POST("", h.CreatePackage)
			packages.PUT("/:id", h.UpdatePackage)
			packages.DELETE("/:id", h.DeletePackage)
		}

		// purchase records are read-only; approval lives on voice-purchases
		protected.GET("/package-purchases", h.ListPackagePurchases)

		voicePurchases := protected.Group("/voice-purchases")
		{
			voicePurchases.GET("", h.ListVoicePurchases)
			voicePurchases.PUT("/:id/approve", h.ApproveVoicePurchase)
			voicePurchases.PUT("/:id/reject", h.RejectVoicePurchase)
			voicePurchases.DELETE("/:id", h.DeleteVoicePurchase)
		}

		topups := protected.Group("/topups")
		{
			topups.GET("", h.ListTopUps)
			topups.PATCH("/:id/approve", h.ApproveTopUp)
			topups.PATCH("/:id/reject", h.RejectTopUp)
			topups.DELETE("/:id", h.DeleteTopUp)
		}

		callHistory := protected.Group("/call-history")
		{
			callHistory.GET("", h.ListCallHistory)
			callHistory.GET("/:id", h.GetCallHistory)
			callHistory.DELETE("/:id", h.DeleteCallHistory)
		}

		cleanup := protected.Group("/expired-voices")
		{
			cleanup.GET("", h.ListExpiredVoices)
			cleanup.GET("/statistics", h.CleanupStatistics)
			cleanup.GET("/preview", h.PreviewCleanup)
			cleanup.POST("/run", h.RunCleanup)
		}
	}
}
