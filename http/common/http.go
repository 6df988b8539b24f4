package common

const (
	ContentTypeJson = "application/json"

	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderRequestId   = "X-Request-Id"

	PathProducts       = "/api/products"
	PathProductsId     = "/api/products/{id}"
	PathProductsSearch = "/api/products/search/{category}"
)
