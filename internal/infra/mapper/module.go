package mapper

import "go.uber.org/fx"

// Module provides the catalog mapper
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCatalogMapper),
)
