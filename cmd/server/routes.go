package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"token-market.backend/internal/interfaces/http/handlers"
	"token-market.backend/internal/interfaces/http/middleware"
	"token-market.backend/pkg/jwt"
)

type routeDeps struct {
	tokenHandler    *handlers.TokenHandler
	offerHandler    *handlers.OfferHandler
	purchaseHandler *handlers.PurchaseHandler
	orderHandler    *handlers.OrderHandler
	webhookHandler  *handlers.WebhookHandler
	walletHandler   *handlers.WalletHandler
	supportHandler  *handlers.SupportHandler
	authHandler     *handlers.AuthHandler
	authMiddleware  gin.HandlerFunc
	webhookAuth     gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, Idempotency-Key, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/session", d.authHandler.CreateSession)
			auth.POST("/login", d.authHandler.Login)
		}

		// Token catalog (public)
		tokens := v1.Group("/tokens")
		{
			tokens.GET("", d.tokenHandler.ListTokens)
			tokens.GET("/:id", d.tokenHandler.GetToken)
		}

		// Offer routes (public)
		offers := v1.Group("/offers")
		{
			offers.GET("", d.offerHandler.ListOffers)
			offers.GET("/:id", d.offerHandler.GetOffer)
			offers.POST("", d.offerHandler.CreateOffer)
			offers.POST("/:id/cancel", d.offerHandler.CancelOffer)
		}

		// Purchase flow
		v1.POST("/purchase", middleware.IdempotencyMiddleware(), d.purchaseHandler.CreatePurchase)

		// Order history
		orders := v1.Group("/orders")
		{
			orders.GET("", d.orderHandler.ListOrders)
			orders.GET("/:id", d.orderHandler.GetOrder)
		}

		// Wallet proxies
		wallet := v1.Group("/wallet")
		{
			wallet.GET("/balance", d.walletHandler.GetBalance)
			wallet.GET("/transactions", d.walletHandler.ListTransactions)
		}

		// Payment redirect re-issuance
		v1.GET("/payments/pse", d.walletHandler.GetPSEURL)

		// Support tickets
		support := v1.Group("/support")
		{
			support.POST("/tickets", d.supportHandler.CreateTicket)
			support.GET("/tickets/:number", d.supportHandler.GetTicket)
		}

		// Provider webhooks (shared-key guarded)
		webhooks := v1.Group("/webhooks")
		{
			webhooks.POST("/kravata", d.webhookAuth, d.webhookHandler.HandleKravata)
		}

		// Admin routes (JWT, role admin)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireRole(jwt.RoleAdmin))
		{
			admin.GET("/orders", d.orderHandler.ListAllOrders)
			admin.GET("/tickets", d.supportHandler.ListTickets)
			admin.PUT("/tickets/:number/status", d.supportHandler.UpdateTicketStatus)
		}
	}
}
