package demo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gclaussn/go-product-demo/product"
)

// CreateProduct creates a product and returns it, or nil if the creation failed or no ID has been assigned.
func (d *Demo) CreateProduct(ctx context.Context, cmd product.CreateProductCmd) *product.Product {
	p, err := d.client.CreateProduct(ctx, cmd)
	if err != nil {
		d.fail("failed to create product", err)
		return nil
	}
	if p.Id.IsZero() {
		fmt.Fprintln(d.err, "failed to create product: created product has no ID")
		return nil
	}

	fmt.Fprintln(d.out, "product created")
	d.printProduct(p)
	return &p
}

// DeleteProduct deletes a product and returns true, or false if the deletion failed.
func (d *Demo) DeleteProduct(ctx context.Context, id product.Id) bool {
	message, err := d.client.DeleteProduct(ctx, id)
	if err != nil {
		d.fail(fmt.Sprintf("failed to delete product %s", id), err)
		return false
	}

	if message != "" {
		fmt.Fprintf(d.out, "product %s deleted: %s\n", id, message)
	} else {
		fmt.Fprintf(d.out, "product %s deleted\n", id)
	}
	return true
}

// GetProduct gets a product, or nil if the product does not exist or the retrieval failed.
func (d *Demo) GetProduct(ctx context.Context, id product.Id) *product.Product {
	p, err := d.client.GetProduct(ctx, id)
	if err != nil {
		var productErr product.Error
		if errors.As(err, &productErr) && productErr.Type == product.ErrorStatus && productErr.StatusCode == http.StatusNotFound {
			d.fail(fmt.Sprintf("product %s not found", id), err)
		} else {
			d.fail(fmt.Sprintf("failed to get product %s", id), err)
		}
		return nil
	}

	fmt.Fprintln(d.out, "product found")
	d.printProduct(p)
	return &p
}

// ListProducts lists all products, or returns nil if the listing failed.
func (d *Demo) ListProducts(ctx context.Context) []product.Product {
	products, err := d.client.ListProducts(ctx)
	if err != nil {
		d.fail("failed to list products", err)
		return nil
	}

	fmt.Fprintf(d.out, "found %d product(s)\n", len(products))
	d.printProducts(products)
	return products
}

// SearchProducts lists all products of a category, or returns nil if the search failed.
func (d *Demo) SearchProducts(ctx context.Context, category string) []product.Product {
	products, err := d.client.SearchProducts(ctx, category)
	if err != nil {
		d.fail(fmt.Sprintf("failed to search products of category %q", category), err)
		return nil
	}

	fmt.Fprintf(d.out, "found %d product(s) of category %q\n", len(products), category)
	d.printProducts(products)
	return products
}

// UpdateProduct updates a product and returns it, or nil if the update failed.
func (d *Demo) UpdateProduct(ctx context.Context, cmd product.UpdateProductCmd) *product.Product {
	p, err := d.client.UpdateProduct(ctx, cmd)
	if err != nil {
		d.fail(fmt.Sprintf("failed to update product %s", cmd.Id), err)
		return nil
	}

	fmt.Fprintln(d.out, "product updated")
	d.printProduct(p)
	return &p
}

// fail writes exactly one line, stating the failure and its kind.
func (d *Demo) fail(text string, err error) {
	fmt.Fprintf(d.err, "%s: %s\n", text, oneLine(err.Error()))
}

func (d *Demo) printProduct(p product.Product) {
	fmt.Fprintf(d.out, "  ID:       %s\n", p.Id)
	fmt.Fprintf(d.out, "  Name:     %s\n", p.Name)
	fmt.Fprintf(d.out, "  Category: %s\n", p.Category)
	fmt.Fprintf(d.out, "  Price:    %s\n", formatPrice(p.Price))

	if p.UpdatedAt != nil {
		fmt.Fprintf(d.out, "  Updated:  %s\n", formatTimeOrNil(p.UpdatedAt))
	}
}

func (d *Demo) printProducts(products []product.Product) {
	if len(products) == 0 {
		return
	}

	table := newTable([]string{
		"ID",
		"NAME",
		"CATEGORY",
		"PRICE",
	})

	for _, p := range products {
		table.addRow([]string{
			p.Id.String(),
			p.Name,
			p.Category,
			formatPrice(p.Price),
		})
	}

	fmt.Fprint(d.out, table.format())
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
