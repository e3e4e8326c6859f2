package service

import (
	"context"

	"catalogsync/internal/domain/entity"
)

// SessionManager performs the two-phase handshake against the remote API.
// Errors are *errors.AuthError.
type SessionManager interface {
	// Authenticate exchanges credentials for a session token.
	Authenticate(ctx context.Context, credentials entity.Credentials) (entity.SessionToken, error)

	// SelectTenant binds the session to a company and fiscal year and returns the tenant-scoped token.
	SelectTenant(ctx context.Context, token entity.SessionToken, companyID, fiscalYear int) (entity.SessionToken, *entity.Tenant, error)
}

// CatalogFetcher pulls the raw catalog with a tenant-scoped token.
// Errors are *errors.FetchError.
type CatalogFetcher interface {
	FetchArticles(ctx context.Context, token entity.SessionToken, limit int) ([]entity.RemoteArticle, error)
	FetchCategoryGroups(ctx context.Context, token entity.SessionToken) ([]entity.RemoteCategoryGroup, error)
}

// CatalogMapper converts remote records into the storefront schema. It never fails.
type CatalogMapper interface {
	MapCatalog(articles []entity.RemoteArticle, groups []entity.RemoteCategoryGroup) ([]entity.Article, []entity.Category)
}
