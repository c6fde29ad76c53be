// Package constants holds string values shared between configuration and the domain.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Webhook event queue providers.
const (
	QueueProviderInline   = "inline"
	QueueProviderLocal    = "local"
	QueueProviderGoogle   = "google"
	QueueProviderRabbitMQ = "rabbitmq"
)

const (
	// DefaultGraphAPIVersion is used when meta.graphApiVersion is empty.
	DefaultGraphAPIVersion = "v21.0"

	// DefaultMessagingTag lets the owner answer outside the 24h standard messaging window.
	DefaultMessagingTag = "HUMAN_AGENT"
)
