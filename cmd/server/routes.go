package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gowaveline.backend/internal/interfaces/http/handlers"
	"gowaveline.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler      *handlers.AuthHandler
	appHandler       *handlers.ApplicationHandler
	merchantHandler  *handlers.MerchantHandler
	docHandler       *handlers.DocumentHandler
	pdfHandler       *handlers.PDFHandler
	fieldEditHandler *handlers.FieldEditHandler
	industryHandler  *handlers.IndustryHandler
	adminAuth        gin.HandlerFunc
	merchantAuth     gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (admin back office)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.GET("/me", d.adminAuth, d.authHandler.Me)
			auth.POST("/register", d.adminAuth, middleware.RequireAdmin(), d.authHandler.Register)
		}

		// Application routes (admin)
		applications := v1.Group("/applications")
		applications.Use(d.adminAuth)
		{
			applications.POST("", d.appHandler.Create)
			applications.GET("", d.appHandler.List)
			applications.GET("/:id", d.appHandler.Get)
			applications.POST("/:id/resend-otp", d.appHandler.ResendOTP)
			applications.POST("/:id/action", middleware.IdempotencyMiddleware(), d.appHandler.ApplyAction)
			applications.GET("/:id/actions", d.appHandler.ActionHistory)
		}

		// Inline edit routes (admin only)
		admin := v1.Group("/admin")
		admin.Use(d.adminAuth, middleware.RequireAdmin())
		{
			admin.POST("/edit-field", d.fieldEditHandler.Edit)
			admin.GET("/edit-field/history", d.fieldEditHandler.History)
		}

		// Merchant portal routes
		merchant := v1.Group("/merchant")
		{
			merchant.POST("/verify-otp", d.merchantHandler.VerifyOTP)
			merchant.PUT("/applications/:id/form", d.merchantAuth, d.merchantHandler.SaveProgress)
			merchant.POST("/applications/:id/submit", d.merchantAuth, middleware.IdempotencyMiddleware(), d.merchantHandler.Submit)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.POST("/upload", d.merchantAuth, d.docHandler.Upload)
			documents.GET("/merchant/:id", d.adminAuth, d.docHandler.ListByMerchant)
		}

		// PDF generation (public, called by the marketing site)
		pdf := v1.Group("/pdf")
		{
			pdf.POST("/generate-preapp", d.pdfHandler.GeneratePreApp)
		}

		// Industry catalog (public)
		industries := v1.Group("/industries")
		{
			industries.GET("", d.industryHandler.List)
			industries.GET("/:slug", d.industryHandler.GetBySlug)
		}
	}
}
