package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"customer-hub.backend/internal/interfaces/http/handlers"
	"customer-hub.backend/internal/interfaces/http/middleware"
	"customer-hub.backend/pkg/jwt"
	"customer-hub.backend/pkg/redis"
)

type routeDeps struct {
	customerHandler *handlers.CustomerHandler
	jwtService      *jwt.JWTService
	sessionStore    *redis.SessionStore
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := middleware.AuthMiddleware(d.jwtService, d.sessionStore)

	v1 := r.Group("/api/v1")
	{
		customers := v1.Group("/customers")
		{
			// public
			customers.POST("/register", d.customerHandler.Register)
			customers.POST("/login", d.customerHandler.Login)

			// protected
			customers.POST("/logout", auth, d.customerHandler.Logout)
			customers.GET("", auth, d.customerHandler.ListCustomers)
			customers.GET("/profile", auth, d.customerHandler.GetProfile)
			customers.PUT("/password", auth, d.customerHandler.ChangePassword)
			customers.GET("/:id", auth, d.customerHandler.GetCustomerByID)
			customers.PUT("/:id", auth, d.customerHandler.UpdateProfile)
			customers.DELETE("/:id", auth, d.customerHandler.DeleteCustomer)
		}
	}
}
