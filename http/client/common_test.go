package client

import (
	"errors"
	"testing"

	"github.com/gclaussn/go-product-demo/product"
)

func mustCreateClient(t *testing.T, url string, customizers ...func(*Options)) product.Client {
	c, err := New(url, customizers...)
	if err != nil {
		t.Fatalf("failed to create HTTP client: %v", err)
	}
	t.Cleanup(c.Shutdown)
	return c
}

func mustProductError(t *testing.T, err error) product.Error {
	var productErr product.Error
	if !errors.As(err, &productErr) {
		t.Fatalf("expected product error, but got %v", err)
	}
	return productErr
}
