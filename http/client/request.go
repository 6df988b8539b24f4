package client

import (
	"net/url"
	"strings"

	"github.com/gclaussn/go-product-demo/http/common"
	"github.com/gclaussn/go-product-demo/product"
)

func resolveCategory(category string) string {
	return strings.Replace(common.PathProductsSearch, "{category}", url.PathEscape(category), 1)
}

func resolveId(id product.Id) string {
	return strings.Replace(common.PathProductsId, "{id}", id.PathSegment(), 1)
}
