// Package constants holds string constants shared between configuration and wiring code.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Messaging providers for inbound device lifecycle messages
const (
	MessagingProviderLocal  = "local"
	MessagingProviderGoogle = "google"
	MessagingProviderNATS   = "nats"
	MessagingProviderMQTT   = "mqtt"
)

// Chat archive drivers
const (
	ArchiveDriverPostgres = "postgres"
	ArchiveDriverDocstore = "docstore"
)

// Message attribute names
const (
	AttributeIntent    = "intent"
	AttributeRequestID = "request_id"
)
