// Package constants holds values shared across delivery and infrastructure.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Token types
const (
	TokenTypeAccess = "access"
)
