package postgres

import "go.uber.org/fx"

// Module provides the database client, every repository and the transaction manager
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewUserRepository,
		NewProductRepository,
		NewCustomerRepository,
		NewOrderRepository,
		NewConversationRepository,
		NewMessageRepository,
		NewSocialConnectionRepository,
		NewTransactionManager,
	),
)
