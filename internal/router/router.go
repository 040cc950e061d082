package router

import (
	"fmt"
	"strings"

	"github.com/delipedidos/api/internal/cache"
	"github.com/delipedidos/api/internal/config"
	adminhandlers "github.com/delipedidos/api/internal/http/handlers/admin"
	publichandlers "github.com/delipedidos/api/internal/http/handlers/public"
	"github.com/delipedidos/api/internal/logger"
	"github.com/delipedidos/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires the middleware stack and both API surfaces.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "dp"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// Storefront endpoints, no auth.
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:slug", publicHandler.GetProductBySlug)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/promos", publicHandler.GetPromos)
			public.GET("/branches", publicHandler.GetBranches)
			public.POST("/cart/quote", publicHandler.QuoteCart)
			public.POST("/orders", publicHandler.CreateOrder)
		}

		// Back-office endpoints.
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("email")), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/me", adminHandler.Me)
				authorized.PUT("/password", adminHandler.ChangePassword)

				authorized.GET("/categories", adminHandler.ListCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/promos", adminHandler.ListPromos)
				authorized.POST("/promos", adminHandler.CreatePromo)
				authorized.PUT("/promos/:id", adminHandler.UpdatePromo)
				authorized.DELETE("/promos/:id", adminHandler.DeletePromo)

				authorized.GET("/branches", adminHandler.ListBranches)
				authorized.POST("/branches", adminHandler.CreateBranch)
				authorized.PUT("/branches/:id", adminHandler.UpdateBranch)
				authorized.DELETE("/branches/:id", adminHandler.DeleteBranch)

				authorized.GET("/site-config", adminHandler.GetSiteConfig)
				authorized.PUT("/site-config", adminHandler.UpdateSiteConfig)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id", adminHandler.UpdateOrder)
				authorized.GET("/orders/:id/notes", adminHandler.ListOrderNotes)
				authorized.POST("/orders/:id/notes", adminHandler.AddOrderNote)

				authorized.POST("/uploads/sign", adminHandler.SignUpload)
				authorized.GET("/uploads/sign-read", adminHandler.SignRead)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
