package remote

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"catalogsync/internal/domain/constants"
	"catalogsync/internal/domain/entity"
	domainerrors "catalogsync/internal/domain/errors"
	"catalogsync/internal/domain/service"
	"catalogsync/internal/errors"
)

// catalogFetcher retrieves articles and article groups with a tenant-scoped token.
type catalogFetcher struct {
	client *Client
	logger *slog.Logger
}

// NewCatalogFetcher creates the catalog fetcher on top of client.
func NewCatalogFetcher(client *Client, logger *slog.Logger) service.CatalogFetcher {
	return &catalogFetcher{
		client: client,
		logger: logger,
	}
}

// FetchArticles requests a single page of at most limit articles.
func (f *catalogFetcher) FetchArticles(ctx context.Context, token entity.SessionToken, limit int) ([]entity.RemoteArticle, error) {
	if limit <= 0 {
		limit = constants.DefaultArticleLimit
	}

	var articles []entity.RemoteArticle
	if err := f.fetchList(ctx, token, constants.PathArticles, url.Values{"limit": {strconv.Itoa(limit)}}, &articles); err != nil {
		return nil, &domainerrors.FetchError{Resource: domainerrors.FetchArticles, Err: err}
	}

	if len(articles) >= limit {
		f.logger.WarnContext(ctx, "article page is full, catalog may be truncated",
			slog.Int("limit", limit),
			slog.Int("received", len(articles)),
		)
	}

	return articles, nil
}

// FetchCategoryGroups requests the whole article-group taxonomy.
func (f *catalogFetcher) FetchCategoryGroups(ctx context.Context, token entity.SessionToken) ([]entity.RemoteCategoryGroup, error) {
	var groups []entity.RemoteCategoryGroup
	if err := f.fetchList(ctx, token, constants.PathArticleGroups, nil, &groups); err != nil {
		return nil, &domainerrors.FetchError{Resource: domainerrors.FetchCategories, Err: err}
	}

	return groups, nil
}

// fetchList decodes a JSON array payload into out. A null payload is malformed;
// an empty array is a valid empty result.
func (f *catalogFetcher) fetchList(ctx context.Context, token entity.SessionToken, path string, query url.Values, out any) error {
	if token.IsZero() {
		return domainerrors.NewTransportError(domainerrors.TransportUnauthorized, path, errors.New("no session token"))
	}

	payload, err := f.client.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Token:  token,
	})
	if err != nil {
		return err
	}

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return domainerrors.NewTransportError(domainerrors.TransportMalformed, path, errors.New("expected a JSON array"))
	}

	return decodePayload(path, trimmed, out)
}
