/*
product-demo is a demo client, exercising a products API via HTTP.

Usage:

	product-demo [get|create|search] [flags]

Without argument, a product is created, listed, fetched, updated, searched,
deleted and fetched again. The optional argument selects a reduced scenario:

	get      list all products
	create   create a product and update it
	search   search products by category

Flags:

	    --cron cron         CRON expression - when set, the scenario is repeated at each tick until interrupted
	    --debug             Log HTTP requests and responses
	    --env-file string   Path to a file of environment variables (default ".env")
	    --fixture string    Path to a YAML file, providing the product payloads
	-h, --help              help for product-demo
	    --pause duration    Pause between two steps (default 1s)
	    --timeout duration  Time limit for a single request, 0 disables the limit (default 40s)
	    --url string        Base URL of the products API (default "http://localhost:3000")
	-v, --version           version for product-demo

Each flag, except --env-file, can also be set via an environment variable with the prefix PRODUCT_DEMO_ - e.g. PRODUCT_DEMO_URL.
*/
package main

import (
	"os"

	"github.com/gclaussn/go-product-demo/cli"
)

var (
	version = "unknown-version"
)

func main() {
	cli := cli.New(version)
	os.Exit(cli.Execute())
}
