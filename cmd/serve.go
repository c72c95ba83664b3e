package cmd

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Aisha-hash/Recipe-saver/filesystem"
	api "github.com/Aisha-hash/Recipe-saver/http"
	"github.com/Aisha-hash/Recipe-saver/web"
)

const shutdownTimeout = 15 * time.Second

// server is what serve and web run: something that accepts connections
// until shut down.
type server interface {
	Serve(ln net.Listener) error
	Shutdown(ctx context.Context) error
}

type listener struct {
	srv  server
	addr string
}

func newServeCmd(app *appContext) *cobra.Command {
	var (
		addr     string
		dataFile string
		withWeb  bool
		webAddr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the recipe API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = app.cfg.Addr
			}
			if dataFile == "" {
				dataFile = app.cfg.DataFile
			}
			if webAddr == "" {
				webAddr = app.cfg.WebAddr
			}

			store := filesystem.NewStore(dataFile, app.logger)
			listeners := []listener{{srv: api.NewServer(store, app.logger, Version), addr: addr}}

			if withWeb {
				w, err := web.NewServer(app.client(), app.favorites(), app.logger)
				if err != nil {
					return err
				}
				listeners = append(listeners, listener{srv: w, addr: webAddr})
			}

			app.logger.Info().Str("data_file", dataFile).Msg("serving recipes")
			return run(cmd.Context(), app, listeners)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "API listen address (default :3001)")
	cmd.Flags().StringVar(&dataFile, "data", "", "recipes JSON file (default data/recipes.json)")
	cmd.Flags().BoolVar(&withWeb, "web", false, "also serve the web UI")
	cmd.Flags().StringVar(&webAddr, "web-addr", "", "web UI listen address (default :3000)")
	return cmd
}

func newWebCmd(app *appContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "web",
		Short: "Run the web UI against a recipe API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = app.cfg.WebAddr
			}
			w, err := web.NewServer(app.client(), app.favorites(), app.logger)
			if err != nil {
				return err
			}
			app.logger.Info().Str("api_url", app.cfg.APIURL).Msg("serving web UI")
			return run(cmd.Context(), app, []listener{{srv: w, addr: addr}})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "web UI listen address (default :3000)")
	return cmd
}

// run binds every address, then serves them all and shuts them down when
// ctx is cancelled or any of them fails. A bind error is returned before
// anything is served.
func run(ctx context.Context, app *appContext, listeners []listener) error {
	bound := make([]net.Listener, 0, len(listeners))
	for _, l := range listeners {
		ln, err := net.Listen("tcp", l.addr)
		if err != nil {
			closeAll(bound)
			return fmt.Errorf("listen on %s: %w", l.addr, err)
		}
		bound = append(bound, ln)
	}

	g, ctx := errgroup.WithContext(ctx)

	for i, l := range listeners {
		l, ln := l, bound[i]
		g.Go(func() error { return l.srv.Serve(ln) })
	}

	g.Go(func() error {
		<-ctx.Done()
		app.logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, l := range listeners {
			if err := l.srv.Shutdown(shutdownCtx); err != nil {
				app.logger.Error().Err(err).Str("addr", l.addr).Msg("shutdown")
			}
		}
		// Shutdown only stops listeners a server has started accepting on.
		closeAll(bound)
		return nil
	})

	return g.Wait()
}

func closeAll(lns []net.Listener) {
	for _, ln := range lns {
		_ = ln.Close()
	}
}
