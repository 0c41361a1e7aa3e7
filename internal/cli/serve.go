package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string // listen address
	dir  string // directory to serve
}

// newServeCmd creates the serve command, a small static file server for
// previewing generated diagrams in a browser.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr: ":8080",
		dir:  "diagrams",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the diagrams directory for browser preview",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", opts.dir, "directory to serve")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	if _, err := os.Stat(opts.dir); err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Handle("/*", http.FileServer(http.Dir(opts.dir)))

	srv := &http.Server{Addr: opts.addr, Handler: r}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	printInfo("Serving %s on http://localhost%s (Ctrl-C to stop)", opts.dir, opts.addr)
	logger.Debugf("Listening on %s", opts.addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
