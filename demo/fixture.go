package demo

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/gclaussn/go-product-demo/product"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0] // e.g. `yaml:"searchCategory,omitempty"` -> searchCategory
	})
	return validate
}

// Fixture provides the payloads, used by a [Demo].
type Fixture struct {
	// Product to create.
	Product product.CreateProductCmd `yaml:"product"`
	// Update to apply on the created product. The ID is set when the update is applied.
	Update product.UpdateProductCmd `yaml:"update"`
	// Category to search for.
	SearchCategory string `yaml:"searchCategory" validate:"required"`
}

func DefaultFixture() Fixture {
	return Fixture{
		Product: product.CreateProductCmd{
			Name:     "Classic Leather Jacket",
			Category: "Outerwear",
			Price:    299.99,
		},
		Update: product.UpdateProductCmd{
			Name:     "Classic Leather Jacket",
			Category: "Outerwear",
			Price:    249.99,
		},
		SearchCategory: "Outerwear",
	}
}

// LoadFixture reads a YAML fixture file. Missing properties are taken from the default fixture.
//
//	product:
//	  name: Wool Scarf
//	  category: Accessories
//	  price: 39.5
//	update:
//	  name: Wool Scarf
//	  category: Accessories
//	  price: 29.5
//	searchCategory: Accessories
func LoadFixture(fileName string) (Fixture, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to read fixture file %s: %v", fileName, err)
	}

	fixture := DefaultFixture()
	if err := yaml.Unmarshal(b, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("failed to unmarshal fixture file %s: %v", fileName, err)
	}

	if err := fixture.Validate(); err != nil {
		return Fixture{}, fmt.Errorf("invalid fixture file %s: %v", fileName, err)
	}

	return fixture, nil
}

func (f Fixture) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, len(validationErrors))
	for i, fieldError := range validationErrors {
		// e.g. Fixture.product.name -> product.name
		pointer := fieldError.Namespace()
		if i := strings.IndexRune(pointer, '.'); i != -1 {
			pointer = pointer[i+1:]
		}

		if fieldError.Param() != "" {
			messages[i] = fmt.Sprintf("%s: %s=%s", pointer, fieldError.Tag(), fieldError.Param())
		} else {
			messages[i] = fmt.Sprintf("%s: %s", pointer, fieldError.Tag())
		}
	}

	return errors.New(strings.Join(messages, ", "))
}

func (f Fixture) updateCmd(id product.Id) product.UpdateProductCmd {
	cmd := f.Update
	cmd.Id = id
	return cmd
}
