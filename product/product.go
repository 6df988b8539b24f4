package product

import (
	"context"
	"fmt"
	"strings"
)

// A Client creates, reads, updates, deletes and searches products of a remote products API.
type Client interface {
	// CreateProduct creates a product. The identifier is assigned by the remote side.
	CreateProduct(context.Context, CreateProductCmd) (Product, error)

	// ListProducts lists all products.
	ListProducts(context.Context) ([]Product, error)

	// GetProduct gets a product by its identifier.
	//
	// A missing product results in an error of type [ErrorStatus] with status code 404.
	GetProduct(context.Context, Id) (Product, error)

	// UpdateProduct replaces name, category and price of an existing product.
	UpdateProduct(context.Context, UpdateProductCmd) (Product, error)

	// DeleteProduct deletes a product and returns the message of the remote side, if any.
	DeleteProduct(context.Context, Id) (string, error)

	// SearchProducts lists all products of a category.
	SearchProducts(context.Context, string) ([]Product, error)

	// Shutdown releases resources, held by the client.
	Shutdown()
}

type Error struct {
	Type       ErrorType
	StatusCode int // HTTP status code, if a response has been received.
	Title      string
	Detail     string
	Cause      error
}

func (e Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Type.String())
	if e.StatusCode != 0 {
		sb.WriteString(fmt.Sprintf(": HTTP %d", e.StatusCode))
	}
	if e.Title != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Title)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// ErrorType distinguishes the ways a single request/response exchange can fail.
//
//   - [ErrorTransport]: the request could not be sent or the response could not be read
//   - [ErrorParse]: the response body is no JSON or does not match the expected envelope
//   - [ErrorStatus]: the response status code is not the expected one
type ErrorType int

const (
	ErrorTransport ErrorType = iota + 1
	ErrorParse
	ErrorStatus
)

func (v ErrorType) String() string {
	switch v {
	case ErrorTransport:
		return "TRANSPORT"
	case ErrorParse:
		return "PARSE"
	case ErrorStatus:
		return "STATUS"
	default:
		return "UNKNOWN"
	}
}
