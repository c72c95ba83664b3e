// Package cmd wires the recipes command-line interface.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Aisha-hash/Recipe-saver/client"
	"github.com/Aisha-hash/Recipe-saver/config"
	"github.com/Aisha-hash/Recipe-saver/favorites"
	"github.com/Aisha-hash/Recipe-saver/logging"
)

// Version is set with -ldflags at build time.
var Version = "dev"

// appContext carries the persistent flags and what is derived from them.
type appContext struct {
	configPath string
	apiURL     string
	storage    string

	cfg    *config.Config
	logger zerolog.Logger
}

// New builds the root command.
func New() *cobra.Command {
	app := &appContext{}

	root := &cobra.Command{
		Use:           "recipes",
		Short:         "Recipe Saver: a small recipe catalog with favorites",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "path to a yaml config file")
	root.PersistentFlags().StringVar(&app.apiURL, "api-url", "", "recipe API base URL (default from config, http://localhost:3001)")
	root.PersistentFlags().StringVar(&app.storage, "storage", "", "local storage file holding favorites")

	root.AddCommand(
		newServeCmd(app),
		newWebCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newAddCmd(app),
		newFavoritesCmd(app),
	)

	return root
}

func (a *appContext) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		cfg.APIURL = a.apiURL
	}
	if a.storage != "" {
		cfg.Storage = a.storage
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *appContext) client() *client.Client {
	return client.New(a.cfg.APIURL)
}

func (a *appContext) favorites() *favorites.Store {
	return favorites.New(favorites.NewFileStorage(a.cfg.Storage), a.logger)
}
