package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/commercekit/storefront/internal/client"
	"github.com/commercekit/storefront/internal/config"
	"github.com/commercekit/storefront/internal/logger"
	"github.com/commercekit/storefront/internal/session"
	"github.com/commercekit/storefront/internal/version"
)

// app holds the wiring shared by every subcommand
type app struct {
	cfg    *config.Config
	logger *zerolog.Logger
	client *client.Client
}

func main() {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront command line client",
		Long:          `Command line client for the storefront backend services`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	cmd.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.registerCmd(),
		a.whoamiCmd(),
		a.productsCmd(),
		a.categoriesCmd(),
		a.cartCmd(),
		a.ordersCmd(),
		a.stockCmd(),
		a.notificationsCmd(),
		a.healthCmd(),
	)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.InitLogger(cfg.LogLevel, cfg.Environment)

	store, err := session.NewFileStore(cfg.CredentialsFile)
	if err != nil {
		return err
	}

	sess, err := session.NewWithStore(store)
	if err != nil {
		return err
	}

	a.client, err = client.New(client.Config{
		Endpoints: client.EndpointsFromConfig(cfg),
		Session:   sess,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}

	return nil
}

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
