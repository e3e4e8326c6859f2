package entity

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// RemoteArticle is one article record as returned by the remote catalog endpoint.
// Optional fields are pointers or RemoteNumbers so absence stays observable.
type RemoteArticle struct {
	ArticleID          int           `json:"articleId"`
	Code               string        `json:"code"`
	Barcode            string        `json:"barcode"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	Active             *bool         `json:"active"`
	TaxRateID          *int          `json:"taxRateId"`
	TaxRate            RemoteNumber  `json:"taxRate"`
	ArticleGroupID     *int          `json:"articleGroupId"`
	ArticleGroupName   string        `json:"articleGroupName"`
	ArticleTypeName    string        `json:"articleTypeName"`
	UnitsOfMeasureName string        `json:"unitsOfMeasureName"`
	Images             []string      `json:"images"`
	Prices             []RemotePrice `json:"prices"`
	SalePrice          RemoteNumber  `json:"salePrice"`
	Stock              RemoteNumber  `json:"stock"`
	InStock            *bool         `json:"inStock"`
}

// RemotePrice is a price-list entry of a RemoteArticle.
type RemotePrice struct {
	PriceListID     int          `json:"priceListId"`
	PriceListName   string       `json:"priceListName"`
	Price           RemoteNumber `json:"price"`
	PriceWithoutTax RemoteNumber `json:"priceWithoutTax"`
}

// RemoteCategoryGroup is one article-group record from the remote taxonomy endpoint.
type RemoteCategoryGroup struct {
	ArticleGroupID int    `json:"articleGroupId"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	ParentID       *int   `json:"parentId"`
	ParentName     string `json:"parentName"`
}

// RemoteNumber is a numeric field sent as a JSON number or a numeric string.
// null, "" and anything unparseable (e.g. "PDV 17%") decode as absent.
type RemoteNumber struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewRemoteNumber returns a present value.
func NewRemoteNumber(d decimal.Decimal) RemoteNumber {
	return RemoteNumber{Decimal: d, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on the value itself.
func (n *RemoteNumber) UnmarshalJSON(data []byte) error {
	*n = RemoteNumber{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		data = bytes.TrimSpace(bytes.Trim(data, `"`))
	}

	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return nil
	}
	*n = NewRemoteNumber(d)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (n RemoteNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}

	return n.Decimal.MarshalJSON()
}
