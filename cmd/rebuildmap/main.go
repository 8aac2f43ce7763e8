// Command rebuildmap generates distance matrices and rebuilds point sets from them.
//
// Usage:
//
//	rebuildmap generate -n 50 -out points.tsv [-seed 7] [-keep-orientation]
//	rebuildmap rebuild [-points-dir DIR] [-plot-dir DIR] FILE|blob://NAME ...
//	rebuildmap demo [-n 50] [-plot demo.png]
//
// Configuration comes from REBUILDMAP_* environment variables and an optional
// YAML file named by REBUILDMAP_CONFIG; flags override both.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/katalvlaran/rebuildmap/blobstore"
	"github.com/katalvlaran/rebuildmap/blobstore/minio"
	"github.com/katalvlaran/rebuildmap/internal/config"
	"github.com/katalvlaran/rebuildmap/internal/logger"
	"github.com/katalvlaran/rebuildmap/internal/metrics"
)

const usage = `usage: rebuildmap <command> [flags]

commands:
  generate   write a random distance matrix (and its points)
  rebuild    reconstruct points from one or more distance matrices
  demo       generate, rebuild and report in one step
`

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries the per-process collaborators shared by subcommands.
type app struct {
	cfg     *config.Config
	log     logger.Logger
	metrics *metrics.Manager
	store   blobstore.Store // nil unless blob settings are configured
	out     io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "rebuildmap: %v\n", err)
		return 1
	}
	if err = logger.Init(); err != nil {
		fmt.Fprintf(stderr, "rebuildmap: %v\n", err)
		return 1
	}
	_ = logger.SetLevelString(cfg.LogLevel) // validated by config.Load

	runID := uuid.NewString()
	a := &app{
		cfg:     cfg,
		log:     logger.Named("rebuildmap").With(logger.String("run_id", runID)),
		metrics: metrics.NewManager(metrics.WithConstLabels(map[string]string{"run_id": runID})),
		out:     stdout,
	}
	if cfg.Blob.Enabled() {
		client, cerr := minio.NewClient(cfg.Blob.Endpoint, cfg.Blob.AccessKey, cfg.Blob.SecretKey, cfg.Blob.Secure)
		if cerr != nil {
			a.log.Error(ctx, "blob store client", logger.Error(cerr))
			return 1
		}
		a.store = minio.NewStore(client, cfg.Blob.Bucket, cfg.Blob.Prefix)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "generate":
		err = a.generate(ctx, rest)
	case "rebuild":
		err = a.rebuild(ctx, rest)
	case "demo":
		err = a.demo(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "rebuildmap: unknown command %q\n%s", cmd, usage)
		return 2
	}

	if cfg.MetricsFile != "" {
		if merr := a.metrics.WriteTextfile(cfg.MetricsFile); merr != nil {
			a.log.Error(ctx, "write metrics", logger.String("path", cfg.MetricsFile), logger.Error(merr))
			err = errors.Join(err, merr)
		}
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		a.log.Error(ctx, cmd+" failed", logger.Error(err))
		return 1
	}
}
