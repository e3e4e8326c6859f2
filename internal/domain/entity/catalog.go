package entity

import "github.com/shopspring/decimal"

// Article is the storefront representation of a catalog item.
//
// Price is never negative and SalePrice, when set, is strictly below Price.
// InStock follows Stock > 0 unless the remote record carried an explicit
// inStock flag, which is kept in InStockOverride.
type Article struct {
	ID              string           `json:"id"`
	Code            string           `json:"code"`
	SKU             string           `json:"sku"`
	Barcode         string           `json:"barcode,omitempty"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	PriceUnset      bool             `json:"priceUnset,omitempty"`
	SalePrice       *decimal.Decimal `json:"salePrice,omitempty"`
	CategoryID      string           `json:"categoryId"`
	CategoryName    string           `json:"categoryName"`
	Image           string           `json:"image"`
	Images          []string         `json:"images"`
	Stock           int64            `json:"stock"`
	InStock         bool             `json:"inStock"`
	InStockOverride *bool            `json:"inStockOverride,omitempty"`
	Active          bool             `json:"active"`
	TaxRate         decimal.Decimal  `json:"taxRate"`
	ArticleType     string           `json:"articleType,omitempty"`
	Unit            string           `json:"unit"`
}

// Clone returns a deep copy of the article.
func (a Article) Clone() Article {
	out := a
	if a.SalePrice != nil {
		sale := *a.SalePrice
		out.SalePrice = &sale
	}
	if a.InStockOverride != nil {
		v := *a.InStockOverride
		out.InStockOverride = &v
	}
	if a.Images != nil {
		out.Images = append([]string(nil), a.Images...)
	}

	return out
}

// Category is a node of the storefront taxonomy. Parent links never form a cycle.
type Category struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Code       string  `json:"code,omitempty"`
	Slug       string  `json:"slug"`
	ParentID   *string `json:"parentId,omitempty"`
	ParentName string  `json:"parentName,omitempty"`
}

// Clone returns a deep copy of the category.
func (c Category) Clone() Category {
	out := c
	if c.ParentID != nil {
		parent := *c.ParentID
		out.ParentID = &parent
	}

	return out
}
