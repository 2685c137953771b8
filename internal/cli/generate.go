package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/umbra/pkg/mesh"
	"github.com/chazu/umbra/pkg/raster"
	"github.com/chazu/umbra/pkg/shadow"
	"github.com/chazu/umbra/pkg/stl"
)

// Defaults match a typical 0.4mm-nozzle FDM printer profile.
const (
	defaultWidthInPixels = 50
	defaultCellSize      = 2.0
	defaultWallWidth     = 0.4
	defaultBottomThk     = 1.0
	defaultLayerHeight   = 0.1
)

func defaultParams() shadow.Params {
	return shadow.Params{
		WidthInPixels: defaultWidthInPixels,
		CellSize:      defaultCellSize,
		WallWidth:     defaultWallWidth,
		BottomThk:     defaultBottomThk,
		LayerHeight:   defaultLayerHeight,
		DoHorizImage:  true,
		DoVertImage:   true,
	}
}

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	horizImage string // image cast when lit along X (left wall axis)
	vertImage  string // image cast when lit along Y (up wall axis)
	output     string // output path; empty means derive from the config
	preset     string // optional TOML preset file
	adaptive   bool   // pick quantization levels by k-means instead of uniform steps

	params shadow.Params
}

// newGenerateCmd creates the generate command, which runs the full
// pipeline: quantize, synthesize, merge, encode, write.
func newGenerateCmd() *cobra.Command {
	opts := generateOpts{params: defaultParams()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a shadow-casting STL from one or two images",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.preset != "" {
				p, err := loadPreset(opts.preset)
				if err != nil {
					return err
				}
				p.apply(&opts, cmd.Flags().Changed)
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.horizImage, "horiz", "", "image for the horizontal shadow (left walls)")
	f.StringVar(&opts.vertImage, "vert", "", "image for the vertical shadow (up walls)")
	f.StringVarP(&opts.output, "output", "o", "", "output STL path (default derives from parameters)")
	f.StringVar(&opts.preset, "preset", "", "TOML preset file with parameter defaults")
	f.BoolVar(&opts.adaptive, "adaptive-levels", false, "derive quantization levels from the image by k-means")
	f.IntVar(&opts.params.WidthInPixels, "width", defaultWidthInPixels, "target width in pixels")
	f.Float64Var(&opts.params.CellSize, "cell-size", defaultCellSize, "cell footprint per pixel in mm")
	f.Float64Var(&opts.params.WallWidth, "wall-width", defaultWallWidth, "wall thickness in mm")
	f.Float64Var(&opts.params.BottomThk, "bottom", defaultBottomThk, "base slab thickness in mm")
	f.Float64Var(&opts.params.LayerHeight, "layer-height", defaultLayerHeight, "print layer height in mm")
	f.IntVar(&opts.params.NumberOfColorsOverride, "colors", 0, "quantization level count (0 = auto)")
	f.BoolVar(&opts.params.DoHorizImage, "do-horiz", true, "enable the horizontal shadow axis")
	f.BoolVar(&opts.params.DoVertImage, "do-vert", true, "enable the vertical shadow axis")
	f.BoolVar(&opts.params.PlusWalls, "plus-walls", false, "center walls within their cells")

	return cmd
}

// runGenerate executes the pipeline. Each stage allocates fresh buffers;
// the context is checked between stages so an interrupt discards the
// in-flight result instead of writing a partial file.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	params := opts.params
	params.DoHorizImage = params.DoHorizImage && opts.horizImage != ""
	params.DoVertImage = params.DoVertImage && opts.vertImage != ""

	cfg, err := shadow.Resolve(params)
	if err != nil {
		return err
	}
	logger.Debugf("resolved config: %d colors, maxHeight=%.2fmm, border=%.2fmm",
		cfg.NumberOfColors, cfg.MaxHeight, cfg.Border)

	var horiz, vert *raster.Grid
	if cfg.DoHorizImage {
		if horiz, err = loadGrid(ctx, opts.horizImage, cfg, opts.adaptive); err != nil {
			return err
		}
	}
	if cfg.DoVertImage {
		if vert, err = loadGrid(ctx, opts.vertImage, cfg, opts.adaptive); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	prog := newProgress(logger)
	layout, err := shadow.Synthesize(horiz, vert, cfg)
	if err != nil {
		return err
	}
	boxes := layout.Boxes()
	prog.done(fmt.Sprintf("synthesized %d boxes", len(boxes)))
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mesh.FromLayout(layout)
	data, err := stl.Encode(m)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = cfg.FileStem() + ".stl"
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	bounds := shadow.ComputeBounds(boxes)
	fmt.Print(summary(out, m.TriangleCount(), len(boxes), bounds, len(data)))
	return nil
}

// loadGrid decodes, quantizes, and dithers one source image.
func loadGrid(ctx context.Context, path string, cfg shadow.Config, adaptive bool) (*raster.Grid, error) {
	logger := loggerFromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := raster.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if tone := raster.DominantTone(img); tone == raster.ToneLight {
		logger.Warnf("%s is predominantly light; walls will be short and the shadow faint", path)
	}

	levels := raster.UniformLevels(cfg.NumberOfColors)
	if adaptive {
		levels = raster.AdaptiveLevels(img, cfg.NumberOfColors)
		logger.Debugf("%s: adaptive levels %v", path, levels)
	}

	gray, err := raster.Grayscale(img, cfg.WidthInPixels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dithered, err := raster.Dither(gray, levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if stats, err := raster.QuantizationStats(gray, dithered); err == nil {
		logger.Debugf("%s: %dx%d, dither error mean=%.2f stddev=%.2f max=%.0f",
			path, dithered.W, dithered.H, stats.MeanAbsError, stats.StdDev, stats.MaxAbsError)
	}
	return dithered, nil
}
