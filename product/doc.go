// Package product defines the products domain, shared by the HTTP client and the demo.
package product
