package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ganttgrid/ganttgrid/internal/web"
	"github.com/ganttgrid/ganttgrid/pkg/cache"
	"github.com/ganttgrid/ganttgrid/pkg/errors"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	backend   string // cache backend: memory, file, redis
	cacheDir  string // directory for the file backend
	redisAddr string // host:port for the redis backend
}

// serveCommand creates the serve command for running the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		backend:   "memory",
		cacheDir:  "",
		redisAddr: "localhost:6379",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the chart-rendering HTTP service",
		Long: `Run an HTTP service that renders task tables posted as JSON.

Rendered artifacts are cached under a digest of the request body. The
cache backend is in-process by default; use --cache file or --cache
redis for caches that survive restarts or span instances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), c, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "cache backend: memory, file, redis")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", opts.cacheDir, "cache directory (file backend)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address (redis backend)")

	return cmd
}

func runServe(ctx context.Context, c *CLI, opts *serveOpts) error {
	store, err := buildCache(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	c.Logger.Info("starting server", "cache", opts.backend)
	return web.NewServer(c.Logger, store).ListenAndServe(ctx, opts.addr)
}

func buildCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.backend {
	case "memory":
		return cache.NewMemory(), nil
	case "file":
		dir := opts.cacheDir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to resolve cache directory")
			}
		}
		store, err := cache.NewFile(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "failed to open cache directory %s", dir)
		}
		return store, nil
	case "redis":
		store, err := cache.NewRedis(ctx, opts.redisAddr)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to connect to redis at %s", opts.redisAddr)
		}
		return store, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"unknown cache backend %q (expected memory, file, or redis)", opts.backend)
	}
}
