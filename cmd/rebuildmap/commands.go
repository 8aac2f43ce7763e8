package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/rebuildmap/distgeom"
	"github.com/katalvlaran/rebuildmap/internal/logger"
	"github.com/katalvlaran/rebuildmap/internal/metrics"
	"github.com/katalvlaran/rebuildmap/matrixio"
	"github.com/katalvlaran/rebuildmap/pointgen"
	"github.com/katalvlaran/rebuildmap/scatter"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
)

// blobScheme marks inputs that live in the configured blob store.
const blobScheme = "blob://"

// newFlagSet returns a flag set that reports parse errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w: %v", fs.Name(), errUsage, err)
	}
	return nil
}

func (a *app) reconstructOptions(ctx context.Context, log logger.Logger) []distgeom.Option {
	opts := []distgeom.Option{
		distgeom.WithEpsilon(a.cfg.Epsilon),
		distgeom.WithOnUnresolved(func(i int, err error) {
			log.Warn(ctx, "unresolved point", logger.Int("index", i), logger.Error(err))
		}),
		distgeom.WithOnAmbiguous(func(i int, p distgeom.Point) {
			log.Warn(ctx, "mirror-ambiguous point", logger.Int("index", i), logger.String("kept", p.String()))
		}),
	}
	if a.cfg.AbsoluteTolerance {
		opts = append(opts, distgeom.WithAbsoluteTolerance())
	}
	if a.cfg.FailFast {
		opts = append(opts, distgeom.WithFailFast())
	}
	return opts
}

func (a *app) generatorOptions(seed int64, keep bool) []pointgen.Option {
	opts := []pointgen.Option{
		pointgen.WithSeed(seed),
		pointgen.WithRange(a.cfg.RangeLo, a.cfg.RangeHi),
	}
	if keep {
		opts = append(opts, pointgen.WithOrientationAnchors())
	}
	return opts
}

// generate writes a random matrix to -out and the generating points to -out.points.
func (a *app) generate(ctx context.Context, args []string) error {
	fs := newFlagSet("generate")
	n := fs.Int("n", a.cfg.Points, "number of points")
	out := fs.String("out", "", "output matrix file or blob://name (required)")
	seed := fs.Int64("seed", a.cfg.Seed, "generator seed (0 = fixed default)")
	keep := fs.Bool("keep-orientation", a.cfg.KeepOrientation, "seed canonical anchors as indices 0..2")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("generate: -out is required: %w", errUsage)
	}

	d, pts, err := pointgen.GenerateMatrix(*n, a.generatorOptions(*seed, *keep)...)
	if err != nil {
		return err
	}
	if err = a.saveMatrix(ctx, *out, d); err != nil {
		return err
	}
	if err = a.savePoints(ctx, *out+".points", pts); err != nil {
		return err
	}

	a.log.Info(ctx, "generated", logger.String("out", *out), logger.Int("points", len(pts)), logger.Int64("seed", *seed))
	return nil
}

// rebuild reconstructs every input concurrently, bounded by cfg.Workers.
func (a *app) rebuild(ctx context.Context, args []string) error {
	fs := newFlagSet("rebuild")
	pointsDir := fs.String("points-dir", "", "write reconstructed points as <dir>/<input>.points")
	plotDir := fs.String("plot-dir", "", "write a scatter plot as <dir>/<input>.png")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	inputs := fs.Args()
	if len(inputs) == 0 {
		return fmt.Errorf("rebuild: no input files: %w", errUsage)
	}

	lines := make([]string, len(inputs))
	errs := make([]error, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			line, err := a.rebuildOne(gctx, in, *pointsDir, *plotDir)
			lines[i], errs[i] = line, err
			// Partial reconstructions do not cancel siblings.
			if err != nil && !isPartial(err) {
				return err
			}
			return nil
		})
	}
	_ = g.Wait() // every failure is also recorded in errs

	fmt.Fprintln(a.out, "input\tn\tresolved\tdeviation")
	for _, line := range lines {
		if line != "" {
			fmt.Fprintln(a.out, line)
		}
	}

	return errors.Join(errs...)
}

// partialError marks a reconstruction that produced a result with some
// indices unresolved. Fatal reconstruction errors are never wrapped in it.
type partialError struct{ err error }

func (e *partialError) Error() string { return e.err.Error() }
func (e *partialError) Unwrap() error { return e.err }

// isPartial reports whether err only describes unresolved indices.
func isPartial(err error) bool {
	var pe *partialError
	return errors.As(err, &pe)
}

func (a *app) rebuildOne(ctx context.Context, in, pointsDir, plotDir string) (string, error) {
	log := a.log.With(logger.String("input", in))
	d, err := a.loadMatrix(ctx, in)
	if err != nil {
		return "", err
	}

	start := time.Now()
	rep, recErr := distgeom.Rebuild(d, a.reconstructOptions(ctx, log)...)
	run := metrics.Run{Input: in, Points: d.Len(), Elapsed: time.Since(start), Failed: rep == nil}
	if rep != nil {
		run.Unresolved = int(rep.Result.Unresolved.GetCardinality())
		run.Deviation = rep.Deviation
	}
	a.metrics.RecordRun(run)
	if rep == nil {
		return "", fmt.Errorf("%s: %w", in, recErr)
	}

	log.Info(ctx, "rebuilt",
		logger.Int("points", d.Len()),
		logger.Int("resolved", rep.Compared),
		logger.Float64("deviation", rep.Deviation),
		logger.String("outcome", run.Outcome()),
	)

	base := filepath.Base(strings.TrimPrefix(in, blobScheme))
	if pointsDir != "" {
		if err = matrixio.WritePointsFile(filepath.Join(pointsDir, base+".points"), rep.Result.Points); err != nil {
			return "", err
		}
	}
	if plotDir != "" {
		series := scatter.Series{Name: "reconstructed", Points: rep.Result.ResolvedPoints(), Labeled: true}
		path := filepath.Join(plotDir, base+".png")
		if err = scatter.Save(path, a.plotWidth(), a.plotHeight(), in, series); err != nil {
			return "", err
		}
	}

	line := fmt.Sprintf("%s\t%d\t%d\t%g", in, d.Len(), rep.Compared, rep.Deviation)
	if recErr != nil {
		return line, &partialError{err: fmt.Errorf("%s: %w", in, recErr)}
	}
	return line, nil
}

// demo generates a set, rebuilds it and optionally plots both side by side.
func (a *app) demo(ctx context.Context, args []string) error {
	fs := newFlagSet("demo")
	n := fs.Int("n", a.cfg.Points, "number of points")
	seed := fs.Int64("seed", a.cfg.Seed, "generator seed (0 = fixed default)")
	keep := fs.Bool("keep-orientation", true, "seed canonical anchors as indices 0..2")
	plotPath := fs.String("plot", "", "write a side-by-side PNG of original and reconstructed points")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	pts, err := pointgen.New(a.generatorOptions(*seed, *keep)...).Generate(*n)
	if err != nil {
		return err
	}

	start := time.Now()
	rep, recErr := distgeom.RebuildPoints(pts, a.reconstructOptions(ctx, a.log)...)
	run := metrics.Run{Input: "demo", Points: len(pts), Elapsed: time.Since(start), Failed: rep == nil}
	if rep != nil {
		run.Unresolved = int(rep.Result.Unresolved.GetCardinality())
		run.Deviation = rep.Deviation
	}
	a.metrics.RecordRun(run)
	if rep == nil {
		return recErr
	}

	fmt.Fprintf(a.out, "points=%d resolved=%d deviation=%g\n", len(pts), rep.Compared, rep.Deviation)

	if *plotPath != "" {
		left := scatter.Panel{Title: "Random Points", Series: []scatter.Series{{Points: pts, Labeled: true}}}
		right := scatter.Panel{Title: "Reconstructed Points", Series: []scatter.Series{{Points: rep.Result.ResolvedPoints(), Labeled: true}}}
		if err = scatter.SaveSideBySide(*plotPath, a.plotWidth(), a.plotHeight(), left, right); err != nil {
			return err
		}
	}

	return recErr
}

func (a *app) plotWidth() vg.Length  { return vg.Length(a.cfg.PlotWidth) * vg.Inch }
func (a *app) plotHeight() vg.Length { return vg.Length(a.cfg.PlotHeight) * vg.Inch }

func (a *app) blobName(ref string) (string, bool, error) {
	name, ok := strings.CutPrefix(ref, blobScheme)
	if !ok {
		return "", false, nil
	}
	if a.store == nil {
		return "", true, fmt.Errorf("%s: blob store not configured (set REBUILDMAP_BLOB_ENDPOINT and REBUILDMAP_BLOB_BUCKET)", ref)
	}
	return name, true, nil
}

func (a *app) loadMatrix(ctx context.Context, ref string) (*distgeom.DistanceMatrix, error) {
	opts := []distgeom.Option{distgeom.WithEpsilon(a.cfg.Epsilon)}
	if a.cfg.AbsoluteTolerance {
		opts = append(opts, distgeom.WithAbsoluteTolerance())
	}
	name, isBlob, err := a.blobName(ref)
	if err != nil {
		return nil, err
	}
	if isBlob {
		return matrixio.Load(ctx, a.store, name, opts...)
	}
	return matrixio.ReadFile(ref, opts...)
}

func (a *app) saveMatrix(ctx context.Context, ref string, d *distgeom.DistanceMatrix) error {
	name, isBlob, err := a.blobName(ref)
	if err != nil {
		return err
	}
	if isBlob {
		return matrixio.Save(ctx, a.store, name, d)
	}
	if err = os.MkdirAll(filepath.Dir(ref), 0o755); err != nil {
		return err
	}
	return matrixio.WriteFile(ref, d)
}

func (a *app) savePoints(ctx context.Context, ref string, pts []distgeom.Point) error {
	name, isBlob, err := a.blobName(ref)
	if err != nil {
		return err
	}
	if isBlob {
		var buf bytes.Buffer
		if err = matrixio.WritePoints(&buf, pts); err != nil {
			return err
		}
		return a.store.Put(ctx, name, &buf, int64(buf.Len()))
	}
	return matrixio.WritePointsFile(ref, pts)
}
