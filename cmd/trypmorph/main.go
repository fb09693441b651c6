package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"trypmorph/pkg/config"
	tm "trypmorph/pkg/trypmorph"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("trypmorph", flag.ContinueOnError)
	phasePath := fs.String("phase-mask", "", "binary cell body mask image (required)")
	dnaMaskPath := fs.String("dna-mask", "", "binary DNA stain mask image (required)")
	mngPath := fs.String("mng", "", "MNG intensity image (required)")
	dnaPath := fs.String("dna", "", "DNA intensity image (required)")
	configPath := fs.String("config", "trypmorph.yaml", "YAML configuration file")
	overlayPath := fs.String("overlay", "", "write annotated overlay JPEG to this path")
	pretty := fs.Bool("pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *phasePath == "" || *dnaMaskPath == "" || *mngPath == "" || *dnaPath == "" {
		fs.Usage()
		return fmt.Errorf("-phase-mask, -dna-mask, -mng and -dna are all required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *overlayPath != "" {
		cfg.Output.OverlayPath = *overlayPath
	}
	if *pretty {
		cfg.Output.Pretty = true
	}

	params := &tm.Params{
		PrefilterRadius: cfg.Analysis.PrefilterRadius,
		PruneLength:     cfg.Analysis.PruneLength,
		MinArea:         cfg.Analysis.MinArea,
		KNThresholdArea: cfg.Analysis.KNThresholdArea,
	}

	cell := &tm.CellImage{}
	defer cell.Close()
	if cell.PhaseMask, err = loadImageMat(*phasePath); err != nil {
		return fmt.Errorf("loading phase mask: %w", err)
	}
	if cell.DNAMask, err = loadImageMat(*dnaMaskPath); err != nil {
		return fmt.Errorf("loading dna mask: %w", err)
	}
	if cell.MNG, err = loadImageMat(*mngPath); err != nil {
		return fmt.Errorf("loading mng image: %w", err)
	}
	if cell.DNA, err = loadImageMat(*dnaPath); err != nil {
		return fmt.Errorf("loading dna image: %w", err)
	}

	start := time.Now()
	signal, err := tm.CellSignalAnalysis(cell)
	if err != nil {
		return err
	}
	morphology, err := tm.CellMorphologyAnalysis(cell, params)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "analyzed %dx%d cell in %s: %s\n",
		cell.PhaseMask.Cols(), cell.PhaseMask.Rows(), time.Since(start), morphology.CountKN)

	if cfg.Output.OverlayPath != "" {
		err := tm.RenderMorphologyOverlay(morphology, cell.PhaseMask.Cols(), cell.PhaseMask.Rows(), cfg.Output.OverlayPath)
		if err != nil {
			return fmt.Errorf("rendering overlay: %w", err)
		}
	}

	out := tm.CellAnalysis{Signal: signal, Morphology: morphology}
	enc := json.NewEncoder(os.Stdout)
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
