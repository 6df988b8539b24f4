package demo

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gclaussn/go-product-demo/product"
)

// Scenario is a sequence of operations, run by a [Demo].
//
//   - [ScenarioFull]: create, list, get, update, search, delete and get again
//   - [ScenarioList]: list only
//   - [ScenarioCreate]: create and update
//   - [ScenarioSearch]: search only
type Scenario int

const (
	ScenarioFull Scenario = iota + 1
	ScenarioList
	ScenarioCreate
	ScenarioSearch
)

func (v Scenario) String() string {
	switch v {
	case ScenarioFull:
		return "full"
	case ScenarioList:
		return "list"
	case ScenarioCreate:
		return "create"
	case ScenarioSearch:
		return "search"
	default:
		return "unknown"
	}
}

func New(client product.Client, customizers ...func(*Options)) *Demo {
	options := NewOptions()
	for _, customizer := range customizers {
		customizer(&options)
	}

	return &Demo{
		client:  client,
		options: options,
		out:     options.Out,
		err:     options.Err,
	}
}

func NewOptions() Options {
	return Options{
		Fixture: DefaultFixture(),
		Pause:   time.Second,

		Out: os.Stdout,
		Err: os.Stderr,
	}
}

type Options struct {
	Fixture Fixture       // Payloads of the create, update and search operations.
	Pause   time.Duration // Pause between two steps, zero disables pausing.

	Out io.Writer // Writer for progress.
	Err io.Writer // Writer for failures - one line per failed operation.
}

// A Demo exercises a products API step by step, printing human-readable progress.
type Demo struct {
	client  product.Client
	options Options

	out io.Writer
	err io.Writer
}

// Run runs a scenario. Failed operations are logged and never stop a run.
// An error is only returned for an unknown scenario.
func (d *Demo) Run(ctx context.Context, scenario Scenario) error {
	switch scenario {
	case ScenarioFull:
		d.runFull(ctx)
	case ScenarioList:
		d.step("list all products")
		d.ListProducts(ctx)
	case ScenarioCreate:
		d.runCreate(ctx)
	case ScenarioSearch:
		d.step("search products by category")
		d.SearchProducts(ctx, d.options.Fixture.SearchCategory)
	default:
		return fmt.Errorf("unknown scenario %d", scenario)
	}

	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, "scenario %s completed\n", scenario)
	return nil
}

func (d *Demo) runCreate(ctx context.Context) {
	d.step("create product")
	created := d.CreateProduct(ctx, d.options.Fixture.Product)
	if created == nil {
		return
	}
	d.pause()

	d.step("update product")
	d.UpdateProduct(ctx, d.options.Fixture.updateCmd(created.Id))
}

func (d *Demo) runFull(ctx context.Context) {
	fixture := d.options.Fixture

	d.step("create product")
	created := d.CreateProduct(ctx, fixture.Product)
	d.pause()

	d.step("list all products")
	d.ListProducts(ctx)

	if created == nil {
		fmt.Fprintln(d.out, "skipping remaining steps, since no product has been created")
		return
	}

	id := created.Id

	d.pause()
	d.step("get product by ID")
	d.GetProduct(ctx, id)
	d.pause()

	d.step("update product")
	d.UpdateProduct(ctx, fixture.updateCmd(id))
	d.pause()

	d.step("search products by category")
	d.SearchProducts(ctx, fixture.SearchCategory)
	d.pause()

	d.step("delete product")
	d.DeleteProduct(ctx, id)
	d.pause()

	d.step("verify deletion")
	d.GetProduct(ctx, id)
}

// pause waits for the configured duration. It is not cancellable.
func (d *Demo) pause() {
	if d.options.Pause > 0 {
		time.Sleep(d.options.Pause)
	}
}

func (d *Demo) step(name string) {
	fmt.Fprintln(d.out)
	fmt.Fprintf(d.out, "--- %s\n", name)
}
