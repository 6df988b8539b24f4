package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gclaussn/go-product-demo/http/common"
)

func debugRequest(req *http.Request) error {
	log.Printf("%s %s (request ID %s)", req.Method, req.URL, req.Header.Get(common.HeaderRequestId))

	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}

	req.Body = io.NopCloser(bytes.NewReader(b)) // make body readable again

	log.Printf("request body:\n%s", indentJSON(b))
	return nil
}

func debugResponse(res *http.Response) error {
	log.Printf("status code: %d", res.StatusCode)

	log.Println("response headers:")
	for name, values := range res.Header {
		log.Printf("%s: %s", name, strings.Join(values, ", "))
	}

	resBody := res.Body
	defer resBody.Close()

	b, err := io.ReadAll(resBody)
	if err != nil {
		log.Printf("failed to read response body: %v", err)
		return err
	}

	res.Body = io.NopCloser(bytes.NewReader(b)) // make body readable again

	if len(b) != 0 {
		log.Printf("response body:\n%s", indentJSON(b))
	}
	return nil
}

// indentJSON indents b, if it is valid JSON. Otherwise b is returned as it is.
func indentJSON(b []byte) string {
	buf := &bytes.Buffer{}
	if err := json.Indent(buf, b, "", "  "); err != nil {
		return string(b)
	}
	return buf.String()
}
