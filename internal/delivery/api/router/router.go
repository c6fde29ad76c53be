// Package router registers the API routes.
package router

import (
	"socialdesk/internal/delivery/api/middleware"
	"socialdesk/internal/delivery/api/router/handler"
	"socialdesk/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProductHandler    *handler.ProductHandler
	StockHandler      *handler.StockHandler
	CustomerHandler   *handler.CustomerHandler
	OrderHandler      *handler.OrderHandler
	InboxHandler      *handler.InboxHandler
	ConnectionHandler *handler.ConnectionHandler
	WebhookHandler    *handler.WebhookHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	productHandler    *handler.ProductHandler
	stockHandler      *handler.StockHandler
	customerHandler   *handler.CustomerHandler
	orderHandler      *handler.OrderHandler
	inboxHandler      *handler.InboxHandler
	connectionHandler *handler.ConnectionHandler
	webhookHandler    *handler.WebhookHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Metrics
}

func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		productHandler:    params.ProductHandler,
		stockHandler:      params.StockHandler,
		customerHandler:   params.CustomerHandler,
		orderHandler:      params.OrderHandler,
		inboxHandler:      params.InboxHandler,
		connectionHandler: params.ConnectionHandler,
		webhookHandler:    params.WebhookHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	e.POST("/auth/login", r.authHandler.Login)

	// Meta-facing endpoints authenticate by signature and OAuth state
	e.GET("/webhooks/meta", r.webhookHandler.Verify)
	e.POST("/webhooks/meta", r.webhookHandler.Receive)
	e.GET("/oauth/meta/callback", r.connectionHandler.OAuthCallback)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	connections := apiV1.Group("/connections")
	{
		connections.GET("", r.connectionHandler.ListConnections)
		connections.POST("/meta", r.connectionHandler.BeginConnect)
	}

	products := apiV1.Group("/products")
	{
		products.POST("", r.productHandler.CreateProduct)
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.productHandler.GetProduct)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.PUT("/:id/archived", r.productHandler.SetArchived)

		products.POST("/:id/stock/movements", r.stockHandler.RecordMovement)
		products.PUT("/:id/stock", r.stockHandler.SetQuantity)
		products.GET("/:id/stock/history", r.stockHandler.History)
		products.GET("/:id/stock/verify", r.stockHandler.VerifyBalance)
	}
	apiV1.POST("/stock/arrivals", r.stockHandler.BulkArrival)

	customers := apiV1.Group("/customers")
	{
		customers.POST("", r.customerHandler.CreateCustomer)
		customers.GET("", r.customerHandler.ListCustomers)
		customers.GET("/:id", r.customerHandler.GetCustomer)
		customers.PUT("/:id", r.customerHandler.UpdateCustomer)
		customers.PUT("/:id/archived", r.customerHandler.SetArchived)
	}

	orders := apiV1.Group("/orders")
	{
		orders.POST("", r.orderHandler.CreateOrder)
		orders.GET("", r.orderHandler.ListOrders)
		orders.GET("/summary", r.orderHandler.SalesSummary)
		orders.GET("/:id", r.orderHandler.GetOrder)
		orders.PUT("/:id", r.orderHandler.UpdateOrder)
		orders.POST("/:id/status", r.orderHandler.TransitionStatus)
		orders.POST("/:id/cancel", r.orderHandler.CancelOrder)
	}

	conversations := apiV1.Group("/conversations")
	{
		conversations.GET("", r.inboxHandler.ListConversations)
		conversations.GET("/:id", r.inboxHandler.GetConversation)
		conversations.POST("/:id/messages", r.inboxHandler.SendMessage)
		conversations.POST("/:id/promote", r.inboxHandler.PromoteProspect)
	}
}
