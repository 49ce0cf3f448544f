// Package constants holds string values shared between config and wiring code.
package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cache providers.
const (
	CacheProviderRedis  = "redis"
	CacheProviderMemory = "memory"
)
