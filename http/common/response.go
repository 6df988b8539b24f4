package common

import (
	"strings"

	"github.com/gclaussn/go-product-demo/product"
)

// Response of a product creation, retrieval or update.
type ProductRes struct {
	Success bool            `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    product.Product `json:"data"`
}

// Response of a product listing or search.
type ProductsRes struct {
	Success bool              `json:"success,omitempty"`
	Count   int               `json:"count"`
	Data    []product.Product `json:"data"`
}

// Response of a product deletion.
type MessageRes struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
}

// Body of an error response. Depending on the API, the reason is provided as "message" or as "error".
type ErrorRes struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns the reason of the error response or an empty string, if no reason is provided.
func (v ErrorRes) Text() string {
	var parts []string
	if s := strings.TrimSpace(v.Message); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimSpace(v.Error); s != "" && s != strings.TrimSpace(v.Message) {
		parts = append(parts, s)
	}
	return strings.Join(parts, ": ")
}
