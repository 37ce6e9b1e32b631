package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/meshslice/pkg/errors"
	"github.com/matzehuels/meshslice/pkg/export"
	"github.com/matzehuels/meshslice/pkg/geom"
	"github.com/matzehuels/meshslice/pkg/mesh"
	"github.com/matzehuels/meshslice/pkg/slicer"
)

// sliceOpts holds the command-line flags for the slice command.
type sliceOpts struct {
	config        string  // optional config file path
	output        string  // output directory for slice files
	layers        int     // number of horizontal layers
	direction     string  // "bottom_to_top" or "top_to_bottom"
	outlineMode   string  // "none", "bbox", or "contour"
	outlineOffset float64 // outline displacement distance
	format        string  // "dxf", "svg", or "json"
	workers       int     // concurrent slice workers
	scale         float64 // uniform scale applied to the input mesh
}

// newSliceCmd creates the slice command for cutting a mesh into layers.
//
// Default settings come from the config file (or built-in defaults):
//   - layers: 10, direction: bottom_to_top
//   - outline: none, outline-offset: 0.5
//   - format: dxf, workers: 1, scale: 1.0
func newSliceCmd() *cobra.Command {
	var opts sliceOpts

	cmd := &cobra.Command{
		Use:   "slice [file.stl]",
		Short: "Slice a mesh into per-layer vector-polygon files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.config)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, &cfg, &opts)
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runSlice(cmd.Context(), args[0], cfg, opts.output, verbose)
		},
	}

	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: $XDG_CONFIG_HOME/meshslice/config.toml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory (must be writable)")
	cmd.Flags().IntVarP(&opts.layers, "layers", "n", 0, "number of layers to slice into")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "slice direction: bottom_to_top (default), top_to_bottom")
	cmd.Flags().StringVar(&opts.outlineMode, "outline", "", "outline mode: none (default), bbox, contour")
	cmd.Flags().Float64Var(&opts.outlineOffset, "outline-offset", 0, "outline offset distance in length units")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dxf (default), svg, json")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "concurrent slice workers")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "uniform scale applied to the mesh (e.g. 25.4 for inch input)")

	return cmd
}

// applyFlagOverrides copies explicitly set flags over the file config.
func applyFlagOverrides(cmd *cobra.Command, cfg *Config, opts *sliceOpts) {
	if cmd.Flags().Changed("layers") {
		cfg.Layers = opts.layers
	}
	if cmd.Flags().Changed("direction") {
		cfg.Direction = opts.direction
	}
	if cmd.Flags().Changed("outline") {
		cfg.Outline = opts.outlineMode
	}
	if cmd.Flags().Changed("outline-offset") {
		cfg.OutlineOffset = opts.outlineOffset
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = opts.format
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = opts.scale
	}
}

// runSlice validates the configuration, loads the mesh, and drives a
// slicing run. The output directory is checked up front so an
// unwritable destination aborts before any geometry work.
func runSlice(ctx context.Context, input string, cfg Config, outDir string, verbose bool) error {
	logger := loggerFromContext(ctx)

	direction, err := slicer.ParseDirection(cfg.Direction)
	if err != nil {
		return err
	}
	outlineMode, err := slicer.ParseOutlineMode(cfg.Outline)
	if err != nil {
		return err
	}
	if err := errors.ValidateOutputDir(outDir); err != nil {
		return err
	}

	writer, err := export.NewWriter(cfg.Format, outDir)
	if err != nil {
		return err
	}

	logger.Infof("Slicing %s into %d layers (%s) to %s", input, cfg.Layers, cfg.Direction, outDir)

	tris, err := mesh.LoadSTL(input)
	if err != nil {
		return err
	}
	snap, err := mesh.Build(tris, geom.Transform{Scale: cfg.Scale})
	if err != nil {
		return err
	}
	logger.Debug("built mesh snapshot",
		"vertices", snap.VertexCount(),
		"edges", snap.EdgeCount(),
		"faces", snap.FaceCount())

	s, err := slicer.New(slicer.Options{
		NumLayers:     cfg.Layers,
		Direction:     direction,
		Outline:       outlineMode,
		OutlineOffset: cfg.OutlineOffset,
		Workers:       cfg.Workers,
	}, logger)
	if err != nil {
		return err
	}

	p := newProgress(logger)
	var spin *Spinner
	if !verbose {
		spin = newSpinnerWithContext(ctx, fmt.Sprintf("slicing %d layers...", cfg.Layers))
		spin.Start()
	}
	sum, runErr := s.Run(ctx, snap, writer)
	if spin != nil {
		spin.Stop()
	}

	if sum != nil {
		if err := export.WriteManifest(outDir, sum); err != nil {
			logger.Warn("failed to write manifest", "err", err)
		}
		printSummary(sum, outDir)
	}
	if runErr != nil {
		return runErr
	}
	p.done(fmt.Sprintf("Exported %d slice files to %s", sum.UnitsWritten, outDir))
	return nil
}

// printSummary prints the styled run summary.
func printSummary(sum *slicer.Summary, outDir string) {
	fmt.Println(styleTitle.Render("Slicing summary"))
	printDetail("run %s", sum.RunID)
	printDetail("z range %s to %s, layer height %s",
		styleNumber.Render(fmt.Sprintf("%.4f", sum.ZMin)),
		styleNumber.Render(fmt.Sprintf("%.4f", sum.ZMax)),
		styleNumber.Render(fmt.Sprintf("%.4f", sum.LayerHeight)))

	empty := 0
	for _, r := range sum.Slices {
		if r.Contours == 0 {
			empty++
		}
	}
	if empty > 0 {
		printWarning("%d empty slices produced no output", empty)
	}
	if sum.OutlineExported {
		printInfo("outline exported to %s", styleValue.Render(slicer.OutlineDest))
	}
	if sum.WriterFailures > 0 {
		printError("%d slices failed to write", sum.WriterFailures)
	} else {
		printSuccess("%d of %d slices written to %s",
			sum.UnitsWritten, sum.Layers, styleValue.Render(outDir))
	}
}
