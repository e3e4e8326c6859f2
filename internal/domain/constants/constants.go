// Package constants holds string identifiers shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Snapshot store drivers
const (
	SnapshotDriverMemory   = "memory"
	SnapshotDriverBlob     = "blob"
	SnapshotDriverPostgres = "postgres"
)

// Remote API endpoints
const (
	PathLogin           = "/authUser/login"
	PathSelectCompany   = "/authUser/selectCompany"
	PathArticles        = "/catalog/article/get"
	PathArticleGroups   = "/catalog/articleGroup/get"
	DefaultArticleLimit = 100
)

// Mapping defaults for fields the remote catalog may omit.
const (
	DefaultTaxRate          = 17
	DefaultUnit             = "Komad"
	DefaultCategoryID       = "1"
	DefaultStock            = 100
	DefaultPlaceholderImage = "/placeholder.jpg"
)
