// Command radialdemo renders TOML scene files of gradient-filled shapes.
//
// Usage:
//
//	radialdemo render [-o dir] [--format png|bmp|tiff] scene.toml...
//	radialdemo example > scene.toml
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/radial"
)

//go:embed example.toml
var exampleScene string

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `short:"v" help:"Enable debug logging."`
}

// CLI is the command line.
type CLI struct {
	Globals

	Render  RenderCmd  `cmd:"" help:"Render scene files to images."`
	Example ExampleCmd `cmd:"" help:"Print an example scene file."`
}

// RenderCmd renders scene files.
type RenderCmd struct {
	Scenes   []string `arg:"" type:"existingfile" help:"TOML scene files."`
	Out      string   `short:"o" type:"path" default:"." help:"Output directory."`
	Format   string   `short:"f" enum:"png,bmp,tiff" default:"png" help:"Output format (${enum})."`
	Jobs     int      `short:"j" default:"0" help:"Scenes rendered at once. 0 uses GOMAXPROCS."`
	Parallel bool     `help:"Fill every shape in parallel row bands."`
	Gamma    float64  `help:"Override the scene gamma. 0 keeps the scene value."`
}

// Validate implements kong's validation hook.
func (c *RenderCmd) Validate(_ *kong.Context) error {
	if c.Jobs < 0 {
		return fmt.Errorf("invalid job count: %d", c.Jobs)
	}
	if c.Gamma < 0 {
		return fmt.Errorf("invalid gamma: %v", c.Gamma)
	}
	return nil
}

// Run renders every scene, up to Jobs at a time.
func (c *RenderCmd) Run(g *Globals) error {
	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return fmt.Errorf("unable to create output folder %q: %w", c.Out, err)
	}

	jobs := c.Jobs
	if jobs == 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(jobs)
	for _, path := range c.Scenes {
		eg.Go(func() error {
			return c.renderFile(ctx, path)
		})
	}
	return eg.Wait()
}

func (c *RenderCmd) renderFile(ctx context.Context, path string) error {
	logger := slog.Default().With("scene", path)

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("could not open scene %q: %w", path, err)
	}
	scene, err := DecodeScene(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	gamma := scene.Gamma
	if c.Gamma > 0 {
		gamma = c.Gamma
	}
	var opts []radial.FillerOption
	if gamma > 0 && gamma != 1 {
		opts = append(opts, radial.WithGamma(radial.NewGammaTables(gamma)))
	}
	filler := radial.NewFiller(opts...)
	defer filler.Close()

	buf, err := scene.Render(ctx, filler, c.Parallel)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := outputPath(c.Out, path, c.Format)
	if err := writeImage(out, buf.ToImage(), c.Format); err != nil {
		return err
	}
	logger.Info("rendered", "output", out, "shapes", len(scene.Shapes), "size", fmt.Sprintf("%dx%d", scene.Width, scene.Height))
	return nil
}

// ExampleCmd prints the bundled example scene.
type ExampleCmd struct{}

// Run writes the example scene to stdout.
func (ExampleCmd) Run() error {
	_, err := fmt.Print(exampleScene)
	return err
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("radialdemo"),
		kong.Description("Render radial and elliptical gradient scenes."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Verbose)
	slog.SetDefault(logger)
	radial.SetLogger(logger)

	kctx.FatalIfErrorf(kctx.Run(&cli.Globals))
}
