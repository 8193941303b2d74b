// raytracer renders one of the reference scenes to an image file.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/df07/go-nextweek-raytracer/pkg/output"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
	"github.com/df07/go-nextweek-raytracer/pkg/scene"
)

var cmdRoot = &cobra.Command{
	Use:   "raytracer <scene>",
	Short: "Render a reference scene with a path tracer",
	Long:  "Render a reference scene with a path tracer.\n\nPossible scenes:\n" + sceneList(),
	Args:  sceneArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are valid past this point; render errors do not need usage
		cmd.SilenceUsage = true

		id, _ := strconv.Atoi(args[0])
		return run(cmd.Context(), id, renderOpts)
	},
}

// options holds the command-line overrides applied on top of a scene's
// own configuration
type options struct {
	width   int
	samples int
	depth   int
	workers int
	seed    int64
	output  string
}

var renderOpts options

func init() {
	cmdRoot.Flags().IntVar(&renderOpts.width, "width", 0, "Image width in pixels (0 keeps the scene default)")
	cmdRoot.Flags().IntVar(&renderOpts.samples, "samples", 0, "Samples per pixel (0 keeps the scene default)")
	cmdRoot.Flags().IntVar(&renderOpts.depth, "depth", 0, "Maximum ray bounce depth (0 keeps the default)")
	cmdRoot.Flags().IntVar(&renderOpts.workers, "workers", 0, "Parallel workers (0 uses every CPU)")
	cmdRoot.Flags().Int64Var(&renderOpts.seed, "seed", renderer.DefaultSamplingConfig().Seed, "Seed for scene construction and sampling")
	cmdRoot.Flags().StringVar(&renderOpts.output, "output", "image.png", "Output file; a .ppm extension writes plain PPM, anything else PNG")

	// Expose glog's -v, -logtostderr and friends
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

// sceneArgs accepts exactly one argument naming a registered scene ID
func sceneArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return err
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("while parsing scene %q: %w", args[0], err)
	}
	if _, err := scene.Lookup(id); err != nil {
		return fmt.Errorf("there is no scene %d: %w", id, err)
	}
	return nil
}

// sceneList formats the registry for the help text
func sceneList() string {
	var b strings.Builder
	for _, entry := range scene.List() {
		fmt.Fprintf(&b, "  %d: %s\n", entry.ID, entry.Name)
	}
	return b.String()
}

// run builds, renders and saves the scene registered under id
func run(ctx context.Context, id int, opts options) error {
	random := rand.New(rand.NewSource(opts.seed))
	s, err := scene.Build(id, random)
	if err != nil {
		return fmt.Errorf("while building scene: %w", err)
	}
	glog.Infof("Running scene %s with %d shapes", s.Name, s.GetPrimitiveCount())
	s.Preprocess(random)

	config := s.RenderConfig(renderer.SamplingConfig{
		Width:           opts.width,
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
		NumWorkers:      opts.workers,
		Seed:            opts.seed,
	})
	glog.Infof("Rendering %dx%d at %d samples per pixel, max depth %d",
		config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth)

	img, stats, err := s.NewRaytracer(config, renderer.NewDefaultLogger()).Render(ctx)
	if err != nil {
		return fmt.Errorf("while rendering scene %s: %w", s.Name, err)
	}
	glog.Infof("Render completed: %v", stats)
	glog.Infof("Average luminance: %.3f", renderer.CalculateAverageLuminance(img))

	if err := output.Save(opts.output, img); err != nil {
		return err
	}
	glog.Infof("Render saved as %s", opts.output)
	return nil
}

func main() {
	flag.Set("logtostderr", "true")

	err := cmdRoot.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
