package demo

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gclaussn/go-product-demo/internal/apitest"
	"github.com/gclaussn/go-product-demo/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFull(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	s := apitest.New(t)
	d, output := mustCreateDemo(t, s.URL())

	// when
	require.NoError(d.Run(context.Background(), ScenarioFull))

	// then
	journal := s.Journal()
	require.Len(journal, 7)

	createdPath := journal[2][len("GET "):]

	assert.Equal([]string{
		"POST /api/products",
		"GET /api/products",
		"GET " + createdPath,
		"PUT " + createdPath,
		"GET /api/products/search/Outerwear",
		"DELETE " + createdPath,
		"GET " + createdPath,
	}, journal)
	assert.Regexp("^/api/products/[0-9a-f]{32}$", createdPath)

	assert.Empty(s.Products())

	errLines := output.errLines()
	assert.Len(errLines, 1)
	assert.Contains(errLines[0], "not found")

	assert.Contains(output.out.String(), "--- verify deletion")
	assert.Contains(output.out.String(), "scenario full completed")
}

func TestRunFullCreateFailed(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	s := apitest.New(t)
	s.Fail("POST /api/products", http.StatusBadRequest, `{"message":"name is required"}`)

	d, output := mustCreateDemo(t, s.URL())

	// when
	require.NoError(d.Run(context.Background(), ScenarioFull))

	// then
	assert.Equal([]string{
		"POST /api/products",
		"GET /api/products",
	}, s.Journal())

	assert.Equal([]string{
		"failed to create product: STATUS: HTTP 400: POST /api/products: name is required",
	}, output.errLines())

	assert.Contains(output.out.String(), "skipping remaining steps")
}

func TestRunFullCreatedWithoutId(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	s := apitest.New(t)
	s.Fail("POST /api/products", http.StatusCreated, `{"data":{"name":"Classic Leather Jacket","price":299.99}}`)

	d, output := mustCreateDemo(t, s.URL())

	// when
	require.NoError(d.Run(context.Background(), ScenarioFull))

	// then
	assert.Equal([]string{
		"POST /api/products",
		"GET /api/products",
	}, s.Journal())

	assert.Equal([]string{
		"failed to create product: created product has no ID",
	}, output.errLines())

	assert.Contains(output.out.String(), "skipping remaining steps")
}

func TestRunCreateWithoutId(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	s := apitest.New(t)
	s.Fail("POST /api/products", http.StatusCreated, `{"data":{"name":"x"}}`)

	d, output := mustCreateDemo(t, s.URL())

	// when
	require.NoError(d.Run(context.Background(), ScenarioCreate))

	// then
	assert.Equal([]string{"POST /api/products"}, s.Journal())
	assert.Len(output.errLines(), 1)
	assert.NotContains(output.out.String(), "product created")
}

func TestRunCreatedThenNotFound(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	// given
	s := apitest.New(t)
	s.Fail("POST /api/products", http.StatusCreated, `{"data":{"_id":"abc123","name":"Classic Leather Jacket","price":299.99}}`)
	s.Fail("GET /api/products/abc123", http.StatusNotFound, `{"message":"Product not found"}`)

	d, output := mustCreateDemo(t, s.URL())

	ctx := context.Background()

	// when
	created := d.CreateProduct(ctx, DefaultFixture().Product)
	require.NotNil(created)

	p := d.GetProduct(ctx, created.Id)

	// then
	assert.Equal(product.Id("abc123"), created.Id)
	assert.Nil(p)

	errLines := output.errLines()
	require.Len(errLines, 1)
	assert.Contains(errLines[0], "product abc123 not found")
}

func TestRunList(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	s := apitest.New(t)
	s.Seed(
		product.Product{Name: "Classic Leather Jacket", Category: "Outerwear", Price: 299.99},
		product.Product{Name: "Wool Scarf", Category: "Accessories", Price: 39.5},
	)

	d, output := mustCreateDemo(t, s.URL())

	// when
	require.NoError(d.Run(context.Background(), ScenarioList))

	// then
	assert.Equal([]string{"GET /api/products"}, s.Journal())

	assert.Contains(output.out.String(), "found 2 product(s)")
	assert.Contains(output.out.String(), "Wool Scarf")
	assert.Contains(output.out.String(), " 39.50\n")
	assert.Empty(output.errLines())
}

func TestRunCreate(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	t.Run("create and update", func(t *testing.T) {
		s := apitest.New(t)
		d, output := mustCreateDemo(t, s.URL())

		// when
		require.NoError(d.Run(context.Background(), ScenarioCreate))

		// then
		products := s.Products()
		require.Len(products, 1)
		assert.Equal(249.99, products[0].Price)

		assert.Equal([]string{
			"POST /api/products",
			"PUT /api/products/" + products[0].Id.String(),
		}, s.Journal())

		assert.Empty(output.errLines())
	})

	t.Run("create failed", func(t *testing.T) {
		s := apitest.New(t)
		s.Fail("POST /api/products", http.StatusInternalServerError, `{"message":"Server error"}`)

		d, output := mustCreateDemo(t, s.URL())

		// when
		require.NoError(d.Run(context.Background(), ScenarioCreate))

		// then
		assert.Equal([]string{"POST /api/products"}, s.Journal())
		assert.Len(output.errLines(), 1)
	})
}

func TestRunSearch(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	s := apitest.New(t)
	s.Seed(product.Product{Name: "Puffer Coat", Category: "outer wear", Price: 189})

	d, output := mustCreateDemo(t, s.URL(), func(o *Options) {
		o.Fixture.SearchCategory = "outer wear"
	})

	// when
	require.NoError(d.Run(context.Background(), ScenarioSearch))

	// then
	assert.Equal([]string{"GET /api/products/search/outer%20wear"}, s.Journal())
	assert.Contains(output.out.String(), "Puffer Coat")
}

func TestRunUnknownScenario(t *testing.T) {
	assert := assert.New(t)

	s := apitest.New(t)
	d, _ := mustCreateDemo(t, s.URL())

	err := d.Run(context.Background(), Scenario(0))
	assert.EqualError(err, "unknown scenario 0")
	assert.Empty(s.Journal())
}

func TestRunPause(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	s := apitest.New(t)
	d, _ := mustCreateDemo(t, s.URL(), func(o *Options) {
		o.Pause = 20 * time.Millisecond
	})

	// when
	start := time.Now()
	require.NoError(d.Run(context.Background(), ScenarioCreate))

	// then
	assert.GreaterOrEqual(time.Since(start), 20*time.Millisecond)
}

func TestScenario(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("full", ScenarioFull.String())
	assert.Equal("list", ScenarioList.String())
	assert.Equal("create", ScenarioCreate.String())
	assert.Equal("search", ScenarioSearch.String())
	assert.Equal("unknown", Scenario(0).String())
}
