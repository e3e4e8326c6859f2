// Package mapper converts remote catalog records into the storefront schema.
// Every function is total: missing or invalid fields fall back to defaults.
package mapper

import (
	"strconv"
	"strings"

	"catalogsync/config"
	"catalogsync/internal/domain/constants"
	"catalogsync/internal/domain/entity"
	"catalogsync/internal/domain/service"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Params holds dependencies for the mapper, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
}

// CatalogMapper maps RemoteArticle and RemoteCategoryGroup records.
type CatalogMapper struct {
	placeholderImage string
}

// NewCatalogMapper creates the mapper from configuration.
func NewCatalogMapper(params Params) service.CatalogMapper {
	var placeholder string
	if params.Config.Snapshot != nil {
		placeholder = params.Config.Snapshot.PlaceholderImage
	}

	return New(placeholder)
}

// New creates a mapper substituting placeholderImage for missing images.
func New(placeholderImage string) *CatalogMapper {
	if strings.TrimSpace(placeholderImage) == "" {
		placeholderImage = constants.DefaultPlaceholderImage
	}

	return &CatalogMapper{placeholderImage: placeholderImage}
}

// MapCatalog maps both halves of a fetch. Articles without a group name take
// the name of their mapped category.
func (m *CatalogMapper) MapCatalog(articles []entity.RemoteArticle, groups []entity.RemoteCategoryGroup) ([]entity.Article, []entity.Category) {
	categories := m.MapCategories(groups)
	mapped := m.MapArticles(articles)

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for i := range mapped {
		if mapped[i].CategoryName == "" {
			mapped[i].CategoryName = names[mapped[i].CategoryID]
		}
	}

	return mapped, categories
}

// MapArticles maps every record, preserving order.
func (m *CatalogMapper) MapArticles(articles []entity.RemoteArticle) []entity.Article {
	out := make([]entity.Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, m.MapArticle(a))
	}

	return out
}

// MapArticle maps one remote article.
func (m *CatalogMapper) MapArticle(r entity.RemoteArticle) entity.Article {
	price, priceUnset := firstPrice(r.Prices)

	active := true
	if r.Active != nil {
		active = *r.Active
	}

	taxRate := decimal.NewFromInt(constants.DefaultTaxRate)
	if r.TaxRate.Valid {
		taxRate = r.TaxRate.Decimal
	}

	images := cleanImages(r.Images)
	image := m.placeholderImage
	if len(images) > 0 {
		image = images[0]
	}

	stock := int64(constants.DefaultStock)
	if r.Stock.Valid {
		stock = max(r.Stock.Decimal.IntPart(), 0)
	}

	inStock := stock > 0
	var override *bool
	if r.InStock != nil {
		v := *r.InStock
		override = &v
		inStock = v
	}

	categoryID := constants.DefaultCategoryID
	if r.ArticleGroupID != nil && *r.ArticleGroupID > 0 {
		categoryID = strconv.Itoa(*r.ArticleGroupID)
	}

	unit := strings.TrimSpace(r.UnitsOfMeasureName)
	if unit == "" {
		unit = constants.DefaultUnit
	}

	return entity.Article{
		ID:              strconv.Itoa(r.ArticleID),
		Code:            r.Code,
		SKU:             r.Code,
		Barcode:         r.Barcode,
		Name:            strings.TrimSpace(r.Name),
		Description:     r.Description,
		Price:           price,
		PriceUnset:      priceUnset,
		SalePrice:       salePrice(r.SalePrice, price),
		CategoryID:      categoryID,
		CategoryName:    strings.TrimSpace(r.ArticleGroupName),
		Image:           image,
		Images:          images,
		Stock:           stock,
		InStock:         inStock,
		InStockOverride: override,
		Active:          active,
		TaxRate:         taxRate,
		ArticleType:     r.ArticleTypeName,
		Unit:            unit,
	}
}

// firstPrice returns the first price-list entry carrying a price. Missing
// prices become an explicit zero flagged as unset; negatives clamp to zero.
func firstPrice(prices []entity.RemotePrice) (decimal.Decimal, bool) {
	for _, p := range prices {
		if !p.Price.Valid {
			continue
		}
		if p.Price.Decimal.IsNegative() {
			return decimal.Zero, false
		}

		return p.Price.Decimal, false
	}

	return decimal.Zero, true
}

// salePrice keeps a sale price only when it is a real discount.
func salePrice(sale entity.RemoteNumber, price decimal.Decimal) *decimal.Decimal {
	if !sale.Valid || sale.Decimal.IsNegative() || !sale.Decimal.LessThan(price) {
		return nil
	}

	v := sale.Decimal

	return &v
}

func cleanImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}

	return out
}

// MapCategory maps one remote article group. A parent of 0 or of itself
// means the group is a root.
func (m *CatalogMapper) MapCategory(g entity.RemoteCategoryGroup) entity.Category {
	id := strconv.Itoa(g.ArticleGroupID)
	name := strings.TrimSpace(g.Name)

	slug := generateSlug(name)
	if slug == "" {
		slug = "category-" + id
	}

	c := entity.Category{
		ID:   id,
		Name: name,
		Code: g.Code,
		Slug: slug,
	}
	if g.ParentID != nil && *g.ParentID != 0 && *g.ParentID != g.ArticleGroupID {
		parent := strconv.Itoa(*g.ParentID)
		c.ParentID = &parent
		c.ParentName = strings.TrimSpace(g.ParentName)
	}

	return c
}

// MapCategories maps the taxonomy. Duplicate ids keep the first record,
// order follows the input, and parent links that would close a cycle are
// dropped.
func (m *CatalogMapper) MapCategories(groups []entity.RemoteCategoryGroup) []entity.Category {
	out := make([]entity.Category, 0, len(groups))
	index := make(map[string]int, len(groups))

	for _, g := range groups {
		c := m.MapCategory(g)
		if _, dup := index[c.ID]; dup {
			continue
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}

	breakCycles(out, index)

	return out
}

const (
	unvisited = iota
	onPath
	done
)

// breakCycles walks each parent chain once. Reaching a node already on the
// current path means the last hop closed a cycle, so that link is cut.
// Parents that are not in the set are left alone.
func breakCycles(categories []entity.Category, index map[string]int) {
	state := make([]int, len(categories))
	path := make([]int, 0, 8)

	for start := range categories {
		path = path[:0]
		cur := start

		for {
			if state[cur] == done {
				break
			}
			if state[cur] == onPath {
				last := path[len(path)-1]
				categories[last].ParentID = nil
				categories[last].ParentName = ""

				break
			}

			state[cur] = onPath
			path = append(path, cur)

			parent := categories[cur].ParentID
			if parent == nil {
				break
			}
			next, ok := index[*parent]
			if !ok {
				break
			}
			cur = next
		}

		for _, i := range path {
			state[i] = done
		}
	}
}
