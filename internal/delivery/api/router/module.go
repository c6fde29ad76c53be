package router

import (
	"socialdesk/internal/delivery/api/middleware"
	"socialdesk/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

// Module provides the API handlers and the auth middleware
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		handler.NewAuthHandler,
		handler.NewProductHandler,
		handler.NewStockHandler,
		handler.NewCustomerHandler,
		handler.NewOrderHandler,
		handler.NewInboxHandler,
		handler.NewConnectionHandler,
		handler.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
)
