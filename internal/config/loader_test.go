package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/katalvlaran/rebuildmap/distgeom"
	"github.com/katalvlaran/rebuildmap/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Epsilon, convey.ShouldEqual, distgeom.DefaultEpsilon)
			convey.So(cfg.Points, convey.ShouldEqual, 50)
			convey.So(cfg.Workers, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.Blob.Enabled(), convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			t.Setenv(config.EnvConfigPath, "")
			cfg, err := config.Load(ctx)

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Points, convey.ShouldEqual, 50)
		})

		convey.Convey("When a YAML file and environment variables are both set", func() {
			path := filepath.Join(t.TempDir(), "rebuildmap.yaml")
			yaml := "points: 20\nseed: 7\nfail_fast: true\nblob:\n  endpoint: localhost:9000\n  bucket: matrices\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			t.Setenv(config.EnvConfigPath, path)
			t.Setenv("REBUILDMAP_POINTS", "30")
			t.Setenv("REBUILDMAP_EPSILON", "1e-6")
			t.Setenv("REBUILDMAP_BLOB_ACCESS_KEY", "key")

			cfg, err := config.Load(ctx)

			convey.Convey("Then env overrides the file, which overrides defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Points, convey.ShouldEqual, 30)
				convey.So(cfg.Seed, convey.ShouldEqual, 7)
				convey.So(cfg.FailFast, convey.ShouldBeTrue)
				convey.So(cfg.Epsilon, convey.ShouldEqual, 1e-6)
				convey.So(cfg.Blob.Endpoint, convey.ShouldEqual, "localhost:9000")
				convey.So(cfg.Blob.AccessKey, convey.ShouldEqual, "key")
				convey.So(cfg.Blob.Enabled(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file is missing", func() {
			_, err := config.LoadFrom(ctx, filepath.Join(t.TempDir(), "absent.yaml"))

			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When a value is out of range", func() {
			t.Setenv(config.EnvConfigPath, "")
			t.Setenv("REBUILDMAP_POINTS", "2")
			_, err := config.Load(ctx)

			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configurations", t, func() {
		mutations := map[string]func(*config.Config){
			"log level": func(c *config.Config) { c.LogLevel = "loud" },
			"epsilon":   func(c *config.Config) { c.Epsilon = -1 },
			"range":     func(c *config.Config) { c.RangeLo, c.RangeHi = 5, 5 },
			"workers":   func(c *config.Config) { c.Workers = 0 },
			"plot":      func(c *config.Config) { c.PlotWidth = 0 },
			"blob":      func(c *config.Config) { c.Blob.Endpoint = "localhost:9000" },
		}
		for name, mutate := range mutations {
			convey.Convey("When "+name+" is invalid", func() {
				cfg := config.New()
				mutate(cfg)
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
