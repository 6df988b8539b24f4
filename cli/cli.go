package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gclaussn/go-product-demo/demo"
	"github.com/gclaussn/go-product-demo/http/client"
	"github.com/gclaussn/go-product-demo/product"
	"github.com/spf13/cobra"
)

const (
	envLookupAllowed = "envLookupAllowed" // flag level annotation that allows an environment variable lookup
	envPrefix        = "PRODUCT_DEMO_"
	program          = "product-demo"
)

// scenarios maps the optional command token to a scenario. No token runs [demo.ScenarioFull].
var scenarios = map[string]demo.Scenario{
	"get":    demo.ScenarioList,
	"create": demo.ScenarioCreate,
	"search": demo.ScenarioSearch,
}

func New(version string) *Cli {
	cli := Cli{version: version}

	cli.rootCmd = newRootCmd(&cli)

	return &cli
}

type Cli struct {
	version string

	rootCmd *cobra.Command

	client product.Client
}

// Execute executes the root command and returns the exit code.
func (c *Cli) Execute() int {
	if err := c.rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(cli *Cli) *cobra.Command {
	var conf conf

	c := cobra.Command{
		Use:   program + " [get|create|search]",
		Short: "A demo client for a products API",
		Long: `A demo client that exercises a products API step by step.

Without argument, a product is created, listed, fetched, updated, searched,
deleted and fetched again. The optional argument selects a reduced scenario:

  get      list all products
  create   create a product and update it
  search   search products by category`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"get", "create", "search"},
		Version:   cli.version,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true

			if len(args) != 0 {
				if _, ok := scenarios[args[0]]; !ok {
					return nil // usage is printed without configuration
				}
			}

			if err := loadEnvFile(conf.EnvFile, c.Flags().Changed("env-file")); err != nil {
				return err
			}

			if err := lookupEnv(c.Flags()); err != nil {
				return err
			}

			if err := conf.Validate(); err != nil {
				return err
			}

			productClient, err := client.New(conf.Url, func(o *client.Options) {
				o.Timeout = conf.Timeout

				if conf.Debug {
					o.OnRequest = debugRequest
					o.OnResponse = debugResponse
				}
			})
			if err != nil {
				return fmt.Errorf("failed to create HTTP client: %v", err)
			}

			cli.client = productClient
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			scenario := demo.ScenarioFull
			if len(args) != 0 {
				s, ok := scenarios[args[0]]
				if !ok {
					fmt.Fprintf(c.OutOrStdout(), "unknown argument %q\n\n", args[0])
					fmt.Fprint(c.OutOrStdout(), c.UsageString())
					return nil
				}
				scenario = s
			}

			fixture := demo.DefaultFixture()
			if conf.Fixture != "" {
				f, err := demo.LoadFixture(conf.Fixture)
				if err != nil {
					return err
				}
				fixture = f
			}

			d := demo.New(cli.client, func(o *demo.Options) {
				o.Fixture = fixture
				o.Pause = conf.Pause

				o.Out = c.OutOrStdout()
				o.Err = c.ErrOrStderr()
			})

			// a run is not cancellable
			runCtx := context.WithoutCancel(c.Context())

			if conf.Cron.IsZero() {
				return d.Run(runCtx, scenario)
			}

			// SIGINT and SIGTERM stop the schedule, after the current run has finished
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runScheduled(ctx, conf.Cron.nextTickAfter, func(context.Context) error {
				return d.Run(runCtx, scenario)
			})
		},
		PersistentPostRun: func(c *cobra.Command, _ []string) {
			if cli.client != nil {
				cli.client.Shutdown()
			}
		},
	}

	c.Flags().StringVar(&conf.Url, "url", "http://localhost:3000", "Base URL of the products API")
	c.Flags().DurationVar(&conf.Timeout, "timeout", 40*time.Second, "Time limit for a single request, 0 disables the limit")
	c.Flags().DurationVar(&conf.Pause, "pause", time.Second, "Pause between two steps")
	c.Flags().BoolVar(&conf.Debug, "debug", false, "Log HTTP requests and responses")
	c.Flags().StringVar(&conf.Fixture, "fixture", "", "Path to a YAML file, providing the product payloads")
	c.Flags().Var(&conf.Cron, "cron", "CRON expression - when set, the scenario is repeated at each tick until interrupted")
	c.Flags().StringVar(&conf.EnvFile, "env-file", ".env", "Path to a file of environment variables")

	c.Flags().SetAnnotation("url", envLookupAllowed, nil)
	c.Flags().SetAnnotation("timeout", envLookupAllowed, nil)
	c.Flags().SetAnnotation("pause", envLookupAllowed, nil)
	c.Flags().SetAnnotation("debug", envLookupAllowed, nil)
	c.Flags().SetAnnotation("fixture", envLookupAllowed, nil)
	c.Flags().SetAnnotation("cron", envLookupAllowed, nil)

	c.MarkFlagFilename("fixture", ".yaml", ".yml")
	c.MarkFlagFilename("env-file")

	return &c
}
