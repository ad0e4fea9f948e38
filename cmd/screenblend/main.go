// Command screenblend composites two BMP images with the screen blend mode.
//
// Usage:
//
//	screenblend [flags] <src1.bmp> <src2.bmp> <out.bmp>
//
// Both inputs must have the same width and height. The blend runs with the
// selected strategy and the elapsed kernel time is printed to stdout.
//
// Examples:
//
//	screenblend a.bmp b.bmp out.bmp
//	screenblend -strategy threaded -threads 8 a.bmp b.bmp out.bmp
//	screenblend -strategy vectorized -lanes 4 -align copy a.bmp b.bmp out.bmp
//	screenblend -backends
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-blend/blend"
	"github.com/cwbudde/algo-blend/internal/imageio"
)

type config struct {
	strategy blend.Strategy
	opts     []blend.Option
	verbose  bool
	backends bool
	inputs   [2]string
	output   string
}

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}

	if cfg.verbose {
		blend.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if cfg.backends {
		if err := printBackends(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	elapsed, err := composite(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%s: %s\n", cfg.strategy, elapsed)
	return 0
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("screenblend", flag.ContinueOnError)
	fs.SetOutput(stderr)

	strategy := fs.String("strategy", "scalar", "executor: scalar, threaded or vectorized")
	threads := fs.Int("threads", 0, "worker count for -strategy threaded (0 = GOMAXPROCS)")
	pin := fs.Bool("pin", false, "pin threaded workers to CPUs")
	lanes := fs.Int("lanes", 0, "packet width for -strategy vectorized (0 = native)")
	align := fs.String("align", "any", "alignment policy for -strategy vectorized: any, require or copy")
	block := fs.Bool("block", false, "evaluate vector packets with block primitives")
	backend := fs.String("backend", "", "lane backend name (see -backends)")
	verbose := fs.Bool("v", false, "log debug events to stderr")
	backends := fs.Bool("backends", false, "list lane backends and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: screenblend [flags] <src1.bmp> <src2.bmp> <out.bmp>\n\n")
		fmt.Fprintf(stderr, "Composites two equal-sized BMP images with the screen blend mode.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  screenblend a.bmp b.bmp out.bmp\n")
		fmt.Fprintf(stderr, "  screenblend -strategy threaded -threads 8 a.bmp b.bmp out.bmp\n")
		fmt.Fprintf(stderr, "  screenblend -strategy simd -lanes 4 -align copy a.bmp b.bmp out.bmp\n")
		fmt.Fprintf(stderr, "  screenblend -backends\n")
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{verbose: *verbose, backends: *backends}
	if cfg.backends {
		return cfg, nil
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return config{}, errUsage
	}
	cfg.inputs = [2]string{fs.Arg(0), fs.Arg(1)}
	cfg.output = fs.Arg(2)

	s, err := blend.ParseStrategy(*strategy)
	if err != nil {
		return config{}, err
	}
	a, err := blend.ParseAlignment(*align)
	if err != nil {
		return config{}, err
	}
	cfg.strategy = s
	cfg.opts = []blend.Option{
		blend.WithThreads(*threads),
		blend.WithPinning(*pin),
		blend.WithLaneWidth(*lanes),
		blend.WithAlignment(a),
		blend.WithBlockOps(*block),
		blend.WithBackend(*backend),
	}
	return cfg, nil
}

// composite loads both inputs, blends them and saves the result. Only the
// blend itself is timed.
func composite(cfg config) (time.Duration, error) {
	exec, err := blend.New(cfg.strategy, cfg.opts...)
	if err != nil {
		return 0, err
	}

	src1, err := imageio.Load(cfg.inputs[0])
	if err != nil {
		return 0, err
	}
	src2, err := imageio.Load(cfg.inputs[1])
	if err != nil {
		return 0, err
	}

	start := time.Now()
	out, err := blend.Composite(exec, src1, src2)
	elapsed := time.Since(start)
	if err != nil {
		return 0, err
	}

	if err := imageio.Save(cfg.output, out); err != nil {
		return 0, err
	}
	return elapsed, nil
}

func printBackends(w io.Writer) error {
	def := blend.DefaultBackend()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Backend\tLanes\tPriority\tSupported\tDefault\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-------\t-----\t--------\t---------\t-------\n"); err != nil {
		return err
	}
	for _, b := range blend.Backends() {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%t\t%t\n",
			b.Name, b.LaneWidth, b.Priority, b.Supported, b.Name == def.Name); err != nil {
			return err
		}
	}
	return tw.Flush()
}
