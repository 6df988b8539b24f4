package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag") // report errors by flag name
	})
	return validate
}

type conf struct {
	Url     string        `flag:"url" validate:"required,url"`
	Timeout time.Duration `flag:"timeout" validate:"gte=0"`
	Pause   time.Duration `flag:"pause" validate:"gte=0"`
	Debug   bool          `flag:"debug"`
	Fixture string        `flag:"fixture"`
	Cron    cronValue     `flag:"cron"`
	EnvFile string        `flag:"env-file"`
}

func (c conf) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, len(validationErrors))
	for i, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			messages[i] = fmt.Sprintf("--%s is required", fieldError.Field())
		case "url":
			messages[i] = fmt.Sprintf("--%s %q is not a valid URL", fieldError.Field(), fieldError.Value())
		case "gte":
			messages[i] = fmt.Sprintf("--%s must not be negative", fieldError.Field())
		default:
			messages[i] = fmt.Sprintf("--%s is invalid: %s", fieldError.Field(), fieldError.Tag())
		}
	}

	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
}

// envKey returns the environment variable of a flag - e.g. env-file -> PRODUCT_DEMO_ENV_FILE.
func envKey(flagName string) string {
	return envPrefix + strings.ReplaceAll(strings.ToUpper(flagName), "-", "_")
}

// loadEnvFile loads environment variables from a file, without overriding existing ones.
// A missing file is ignored, unless it is required.
func loadEnvFile(fileName string, required bool) error {
	if fileName == "" {
		return nil
	}

	if err := godotenv.Load(fileName); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %v", fileName, err)
	}
	return nil
}

// lookupEnv sets the value of each flag, which is not set on the command line, but allows an environment variable lookup.
func lookupEnv(flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		if _, ok := f.Annotations[envLookupAllowed]; !ok {
			return
		}

		key := envKey(f.Name)

		value, ok := os.LookupEnv(key)
		if !ok {
			return
		}

		if setErr := f.Value.Set(value); setErr != nil {
			err = fmt.Errorf("invalid environment variable %s: %v", key, setErr)
		}
	})
	return err
}
