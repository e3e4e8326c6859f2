package remote

import "go.uber.org/fx"

// Module provides the remote API client, session manager and catalog fetcher
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewSessionManager,
		NewCatalogFetcher,
	),
)
