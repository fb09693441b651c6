package trypmorph

import (
	"fmt"
	"runtime"
	"sync"
)

// CellAnalysis is the combined per-cell output of a batch run.
type CellAnalysis struct {
	Signal     *SignalStats      `json:"signal"`
	Morphology *MorphologyResult `json:"morphology"`
}

// AnalyzeBatch runs signal and morphology analysis over a set of cells on up
// to workers goroutines. Cells are fully independent, so no coordination is
// needed beyond the fan-out; results keep the input order. workers <= 0
// means one worker per CPU. The first validation error aborts the batch
// result, but every cell still runs to completion.
func AnalyzeBatch(cells []*CellImage, params *Params, workers int) ([]*CellAnalysis, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]*CellAnalysis, len(cells))
	errs := make([]error, len(cells))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, cell := range cells {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, cell *CellImage) {
			defer wg.Done()
			defer func() { <-sem }()

			signal, err := CellSignalAnalysis(cell)
			if err != nil {
				errs[i] = fmt.Errorf("cell %d: %w", i, err)
				return
			}
			morphology, err := CellMorphologyAnalysis(cell, params)
			if err != nil {
				errs[i] = fmt.Errorf("cell %d: %w", i, err)
				return
			}
			results[i] = &CellAnalysis{Signal: signal, Morphology: morphology}
		}(i, cell)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
