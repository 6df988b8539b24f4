package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gclaussn/go-product-demo/http/client"
	"github.com/gclaussn/go-product-demo/product"
)

type testOutput struct {
	out *bytes.Buffer
	err *bytes.Buffer
}

// errLines returns the lines, written to the error writer.
func (o testOutput) errLines() []string {
	s := strings.TrimSuffix(o.err.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func mustCreateDemo(t *testing.T, url string, customizers ...func(*Options)) (*Demo, testOutput) {
	c, err := client.New(url)
	if err != nil {
		t.Fatalf("failed to create HTTP client: %v", err)
	}
	t.Cleanup(c.Shutdown)

	return newTestDemo(c, customizers...)
}

func newTestDemo(c product.Client, customizers ...func(*Options)) (*Demo, testOutput) {
	output := testOutput{out: &bytes.Buffer{}, err: &bytes.Buffer{}}

	d := New(c, append([]func(*Options){func(o *Options) {
		o.Pause = 0
		o.Out = output.out
		o.Err = output.err
	}}, customizers...)...)

	return d, output
}
