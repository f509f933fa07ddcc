// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planner/internal/delivery/api/middleware"
	"planner/internal/delivery/api/router/handler"
	"planner/internal/domain/entity"
	"planner/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	PaymentHandler  *handler.PaymentHandler
	PurchaseHandler *handler.PurchaseHandler
	FeedbackHandler *handler.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	paymentHandler  *handler.PaymentHandler
	purchaseHandler *handler.PurchaseHandler
	feedbackHandler *handler.FeedbackHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		paymentHandler:  params.PaymentHandler,
		purchaseHandler: params.PurchaseHandler,
		feedbackHandler: params.FeedbackHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("/me", r.userHandler.Me)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)

		usersGroup.GET("", r.userHandler.ListUsers, requireAdmin)
		usersGroup.POST("", r.userHandler.CreateUser, requireAdmin)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, requireAdmin)
	}

	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.GET("", r.catalogHandler.ListEvents)
		eventsGroup.GET("/:id", r.catalogHandler.GetEvent)
		eventsGroup.GET("/:id/packages", r.catalogHandler.ListEventPackages)

		eventsGroup.POST("", r.catalogHandler.CreateEvent, requireAdmin)
		eventsGroup.PUT("/:id", r.catalogHandler.UpdateEvent, requireAdmin)
	}

	packagesGroup := apiV1.Group("/packages")
	{
		packagesGroup.GET("", r.catalogHandler.ListPackages)
		packagesGroup.GET("/:id", r.catalogHandler.GetPackage)

		packagesGroup.POST("", r.catalogHandler.CreatePackage, requireAdmin)
	}

	paymentsGroup := apiV1.Group("/payments")
	{
		paymentsGroup.POST("/card", r.paymentHandler.CreateCardPayment)
		paymentsGroup.POST("/portal", r.paymentHandler.CreatePortalPayment)
		paymentsGroup.GET("", r.paymentHandler.ListPayments)
		paymentsGroup.GET("/:id", r.paymentHandler.GetPayment)
		paymentsGroup.PUT("/:id", r.paymentHandler.UpdatePayment)
		paymentsGroup.POST("/:id/refund", r.paymentHandler.RefundPayment)
		paymentsGroup.POST("/:id/cancel", r.paymentHandler.CancelPayment)

		paymentsGroup.DELETE("/:id", r.paymentHandler.DeletePayment, requireAdmin)
	}

	apiV1.GET("/purchases", r.purchaseHandler.ListPurchases)

	feedbackGroup := apiV1.Group("/feedback")
	{
		feedbackGroup.POST("", r.feedbackHandler.CreateFeedback)
		feedbackGroup.GET("", r.feedbackHandler.ListFeedback)
		feedbackGroup.DELETE("/:id", r.feedbackHandler.DeleteFeedback)
	}
}
