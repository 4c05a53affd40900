package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/go-mosaic/mosaic/cmd/mosaic/internal/config"
	"github.com/go-mosaic/mosaic/pkg/engine"
	"github.com/go-mosaic/mosaic/pkg/gallery"
	mosaictesting "github.com/go-mosaic/mosaic/pkg/testing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "sim",
		Short: "Replay a synthetic scroll session headlessly",
		Long: `Run the layout engine against a recorded host with no UI attached.

The simulation builds a synthetic collection, scrolls through it in
fixed increments, and injects randomized wide-thumbnail discoveries
along the way. It prints mount churn and relayout counts at the end,
which is the quickest way to sanity-check windowing behavior after
tuning mosaic.yaml.

Flags:
  --items N     Collection size (default 400)
  --steps N     Scroll steps to replay (default 200)
  --seed N      Discovery randomization seed (default 1)
  --config DIR  Directory containing mosaic.yaml (default ".")`,
		Usage: "mosaic sim [--items N] [--steps N] [--seed N] [--config DIR]",
		Run:   runSim,
	})
}

type simOptions struct {
	items     int
	steps     int
	seed      int64
	configDir string
}

func parseSimArgs(args []string) (simOptions, error) {
	opts := simOptions{items: 400, steps: 200, seed: 1, configDir: "."}

	takeValue := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", args[i])
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline := strings.Cut(arg, "=")
		value := inline
		switch name {
		case "--items", "--steps", "--seed", "--config":
			if !hasInline {
				v, err := takeValue(i)
				if err != nil {
					return opts, err
				}
				value = v
				i++
			}
		default:
			return opts, fmt.Errorf("unknown flag: %s", arg)
		}

		switch name {
		case "--config":
			opts.configDir = value
			continue
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("%s expects a non-negative integer, got %q", name, value)
		}
		switch name {
		case "--items":
			opts.items = int(n)
		case "--steps":
			opts.steps = int(n)
		case "--seed":
			opts.seed = n
		}
	}
	return opts, nil
}

func runSim(args []string) error {
	opts, err := parseSimArgs(args)
	if err != nil {
		return err
	}
	cfg, err := config.LoadOptional(opts.configDir)
	if err != nil {
		return err
	}

	host := mosaictesting.NewRecorderHost(1200, 800)
	e := engine.New(host, host.Mount, host.Unmount, engine.Options{
		RowExtent:        cfg.Grid.RowExtent,
		ColumnExtent:     cfg.Grid.ColumnExtent,
		LeadingRowExtent: cfg.Leading.RowExtent,
		BufferRows:       cfg.Grid.BufferRows,
	})

	summaries := syntheticCollection(opts.items)
	e.SetItems(gallery.ToItems(summaries), gallery.ToLeading(nil))
	e.Step()

	rng := rand.New(rand.NewSource(opts.seed))
	epoch := e.Epoch()
	stride := cfg.Grid.RowExtent / 2

	offset := 0.0
	for step := 0; step < opts.steps; step++ {
		offset += stride
		if offset >= e.ContentExtent()-800 {
			offset = 0
		}
		host.Scroll(offset)
		e.NotifyScroll()

		// A loaded thumbnail occasionally turns out wide.
		if opts.items > 0 && rng.Intn(4) == 0 {
			e.ReportWide(summaries[rng.Intn(opts.items)].Path, epoch)
		}
		e.Step()
		offset = host.ScrollOffset()
	}

	mounts, unmounts := host.Counts()
	stats := e.Stats()
	fmt.Printf("items        %d\n", opts.items)
	fmt.Printf("steps        %d\n", opts.steps)
	fmt.Printf("columns      %d\n", e.Geometry().ColumnCount)
	fmt.Printf("mounts       %d\n", mounts)
	fmt.Printf("unmounts     %d\n", unmounts)
	fmt.Printf("resident     %d\n", len(e.MountedKeys()))
	fmt.Printf("relayouts    %d\n", stats.Relayouts)
	fmt.Printf("reconciles   %d\n", stats.Reconciles)
	fmt.Printf("stale drops  %d\n", stats.StaleReports)
	return nil
}

func syntheticCollection(n int) []gallery.Summary {
	summaries := make([]gallery.Summary, n)
	for i := range summaries {
		summaries[i] = gallery.Summary{
			ID:      int64(i),
			Path:    fmt.Sprintf("/library/item-%04d", i),
			TitleEN: fmt.Sprintf("Item %d", i),
		}
	}
	return summaries
}
