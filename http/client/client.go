package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gclaussn/go-product-demo/http/common"
	"github.com/gclaussn/go-product-demo/product"
	"github.com/google/uuid"
)

func New(url string, customizers ...func(*Options)) (product.Client, error) {
	if url == "" {
		return nil, errors.New("URL is empty")
	}

	options := NewOptions()
	for _, customizer := range customizers {
		customizer(&options)
	}

	if err := options.Validate(); err != nil {
		return nil, err
	}

	// one connection per request
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	httpClient := http.Client{Transport: transport}

	if options.Configure != nil {
		options.Configure(&httpClient)
	}

	client := client{
		httpClient: &httpClient,
		url:        strings.TrimSuffix(url, "/"),
		options:    options,
	}

	return &client, nil
}

func NewOptions() Options {
	return Options{
		Timeout: 40 * time.Second,
	}
}

type Options struct {
	Timeout time.Duration // Time limit for a single request/response exchange. Zero disables the limit.

	// OnRequest is an optional function that accepts a [*http.Request]. It is called before a HTTP request is send.
	OnRequest func(*http.Request) error
	// OnResponse is an optional function that accepts a [*http.Response]. It is called after a HTTP response is returned.
	OnResponse func(*http.Response) error

	Configure func(*http.Client) // Optional function, used to configure the underlying HTTP client.
}

func (o Options) Validate() error {
	if o.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

type client struct {
	httpClient *http.Client
	url        string
	options    Options
}

func (c *client) CreateProduct(ctx context.Context, cmd product.CreateProductCmd) (product.Product, error) {
	var resBody common.ProductRes
	if err := c.exchange(ctx, http.MethodPost, common.PathProducts, cmd, http.StatusCreated, &resBody); err != nil {
		return product.Product{}, err
	}
	return resBody.Data, nil
}

func (c *client) DeleteProduct(ctx context.Context, id product.Id) (string, error) {
	var resBody common.MessageRes
	if err := c.exchange(ctx, http.MethodDelete, resolveId(id), nil, http.StatusOK, &resBody); err != nil {
		return "", err
	}
	return resBody.Message, nil
}

func (c *client) GetProduct(ctx context.Context, id product.Id) (product.Product, error) {
	var resBody common.ProductRes
	if err := c.exchange(ctx, http.MethodGet, resolveId(id), nil, http.StatusOK, &resBody); err != nil {
		return product.Product{}, err
	}
	return resBody.Data, nil
}

func (c *client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var resBody common.ProductsRes
	if err := c.exchange(ctx, http.MethodGet, common.PathProducts, nil, http.StatusOK, &resBody); err != nil {
		return nil, err
	}
	return resBody.Data, nil
}

func (c *client) SearchProducts(ctx context.Context, category string) ([]product.Product, error) {
	var resBody common.ProductsRes
	if err := c.exchange(ctx, http.MethodGet, resolveCategory(category), nil, http.StatusOK, &resBody); err != nil {
		return nil, err
	}
	return resBody.Data, nil
}

func (c *client) UpdateProduct(ctx context.Context, cmd product.UpdateProductCmd) (product.Product, error) {
	var resBody common.ProductRes
	if err := c.exchange(ctx, http.MethodPut, resolveId(cmd.Id), cmd, http.StatusOK, &resBody); err != nil {
		return product.Product{}, err
	}
	return resBody.Data, nil
}

func (c *client) Shutdown() {
	c.httpClient.CloseIdleConnections()
}

// exchange performs a request, checks the status code against the expected one and decodes the response body into resBody.
func (c *client) exchange(ctx context.Context, method string, path string, reqBody any, expectedStatusCode int, resBody any) error {
	res, err := c.do(ctx, method, path, reqBody)
	if err != nil {
		var productErr product.Error
		if errors.As(err, &productErr) && productErr.Type == product.ErrorParse && productErr.StatusCode != expectedStatusCode {
			return product.Error{
				Type:       product.ErrorStatus,
				StatusCode: productErr.StatusCode,
				Title:      fmt.Sprintf("%s %s", method, path),
				Detail:     "response body is no JSON",
			}
		}
		return err
	}
	if res.StatusCode != expectedStatusCode {
		return newStatusError(method, path, res)
	}
	if err := res.Decode(resBody); err != nil {
		return product.Error{
			Type:       product.ErrorParse,
			StatusCode: res.StatusCode,
			Title:      fmt.Sprintf("failed to decode %s %s response body", method, path),
			Detail:     err.Error(),
		}
	}
	return nil
}

// do performs a single request/response exchange. Any status code results in a response.
// An error of type [product.ErrorTransport] or [product.ErrorParse] is returned otherwise.
func (c *client) do(ctx context.Context, method string, path string, reqBody any) (product.Response, error) {
	if c.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.Timeout)
		defer cancel()
	}

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return product.Response{}, product.Error{
				Type:  product.ErrorTransport,
				Title: "failed to create JSON request body",
				Cause: err,
			}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return product.Response{}, product.Error{
			Type:  product.ErrorTransport,
			Title: fmt.Sprintf("failed to create %s request", method),
			Cause: err,
		}
	}

	req.Header.Set(common.HeaderAccept, common.ContentTypeJson)
	req.Header.Set(common.HeaderContentType, common.ContentTypeJson)
	req.Header.Set(common.HeaderRequestId, uuid.NewString())

	if c.options.OnRequest != nil {
		if err := c.options.OnRequest(req); err != nil {
			return product.Response{}, err
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return product.Response{}, product.Error{
			Type:  product.ErrorTransport,
			Title: fmt.Sprintf("failed to execute %s %s", method, path),
			Cause: err,
		}
	}

	if c.options.OnResponse != nil {
		if err := c.options.OnResponse(res); err != nil {
			res.Body.Close()
			return product.Response{}, err
		}
	}

	return decodeJSONResponseBody(res)
}
