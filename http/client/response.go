package client

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gclaussn/go-product-demo/http/common"
	"github.com/gclaussn/go-product-demo/product"
)

func decodeJSONResponseBody(res *http.Response) (product.Response, error) {
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return product.Response{}, product.Error{
			Type:  product.ErrorTransport,
			Title: "failed to read response body",
			Cause: err,
		}
	}

	r, err := product.NewResponse(res.StatusCode, b)
	if err != nil {
		return product.Response{}, product.Error{
			Type:       product.ErrorParse,
			StatusCode: res.StatusCode,
			Title:      "failed to decode JSON response body",
			Detail:     err.Error(),
		}
	}

	return r, nil
}

// newStatusError creates an error for an unexpected status code, using the reason of the error response, if provided.
func newStatusError(method string, path string, res product.Response) error {
	var errorRes common.ErrorRes
	if _, ok := res.Data.(map[string]any); ok {
		_ = res.Decode(&errorRes)
	}

	return product.Error{
		Type:       product.ErrorStatus,
		StatusCode: res.StatusCode,
		Title:      fmt.Sprintf("%s %s", method, path),
		Detail:     errorRes.Text(),
	}
}
