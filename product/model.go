package product

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Id identifies a product. It is assigned by the remote side and never interpreted by the client.
type Id string

func (v Id) IsZero() bool {
	return v == ""
}

// PathSegment returns the identifier, escaped for the use as URL path segment.
func (v Id) PathSegment() string {
	return url.PathEscape(string(v))
}

func (v Id) String() string {
	return string(v)
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (v *Id) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}

	if len(data) != 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Id(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid product ID data %s", string(data))
	}
	*v = Id(n.String())
	return nil
}

type Product struct {
	Id Id `json:"_id"`

	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (v Product) String() string {
	return fmt.Sprintf("Product[id=%s]", v.Id)
}

// commands

type CreateProductCmd struct {
	Name     string  `json:"name" yaml:"name" validate:"required"`         // Product name.
	Category string  `json:"category" yaml:"category" validate:"required"` // Category, used for searching.
	Price    float64 `json:"price" yaml:"price" validate:"gte=0"`          // Price as decimal number.
}

type UpdateProductCmd struct {
	Id Id `json:"-" yaml:"-"` // ID of the product to update - only used as part of the path.

	Name     string  `json:"name" yaml:"name" validate:"required"`
	Category string  `json:"category" yaml:"category" validate:"required"`
	Price    float64 `json:"price" yaml:"price" validate:"gte=0"`
}

// Response is the result of a single request/response exchange.
type Response struct {
	StatusCode int
	Data       any // Parsed JSON body or nil, if the body is empty.

	body []byte
}

func NewResponse(statusCode int, body []byte) (Response, error) {
	res := Response{StatusCode: statusCode, body: body}
	if len(bytes.TrimSpace(body)) == 0 {
		return res, nil
	}

	if err := json.Unmarshal(body, &res.Data); err != nil {
		return Response{}, err
	}
	return res, nil
}

// Decode decodes the JSON body into v. An empty body leaves v unchanged.
func (r Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.body)) == 0 {
		return nil
	}
	return json.Unmarshal(r.body, v)
}
