// Package client is used to interact with a products API via HTTP.
/*
client provides a full implementation of the [product.Client] interface.

Create a Client

A client requires the base URL of the products API.

	client, err := client.New("http://localhost:3000")
	if err != nil {
		log.Fatalf("failed to create HTTP client: %v", err)
	}

	defer client.Shutdown()

Each call performs exactly one request/response exchange over a new connection - there are no retries.
A call fails with a [product.Error], which distinguishes transport, parse and status failures:

	p, err := client.GetProduct(ctx, "abc123")

	var productErr product.Error
	if errors.As(err, &productErr) && productErr.StatusCode == http.StatusNotFound {
		log.Printf("product %s not found", "abc123")
	}
*/
package client
