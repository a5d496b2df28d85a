// Package detector adapts tesseract to the pipeline's text detection
// contract, either in-process (gosseract) or through the tesseract binary.
package detector

import (
	"fmt"

	"github.com/nguyentantai21042004/translatocr/internal/config"
	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
	"github.com/nguyentantai21042004/translatocr/pkg/executor"
)

// Level selects the granularity of detected spans.
type Level string

const (
	LevelWord     Level = "word"
	LevelTextLine Level = "textline"
)

// NewFactory returns a Factory for the engine named in cfg.
func NewFactory(cfg config.DetectorConfig, exec executor.Executor, log logger.Logger) (Factory, error) {
	level := Level(cfg.Level)
	useGPU := cfg.GPUEnabled()

	switch cfg.Engine {
	case config.EngineTesseract:
		return func(pair language.Pair) (Detector, error) {
			return NewTesseract(pair, level, useGPU, log)
		}, nil
	case config.EngineTesseractCLI:
		return func(pair language.Pair) (Detector, error) {
			return NewCLI(pair, cfg.BinaryPath, level, exec, log)
		}, nil
	default:
		return nil, fmt.Errorf("unknown detector engine %q", cfg.Engine)
	}
}

// tesseractLangs lists the traineddata names for both sides, source first,
// without duplicates.
func tesseractLangs(pair language.Pair) ([]string, error) {
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	langs := []string{pair.Source.TesseractCode()}
	if pair.Target != pair.Source {
		langs = append(langs, pair.Target.TesseractCode())
	}
	return langs, nil
}
