package detector

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/translatocr/internal/language"
	"github.com/nguyentantai21042004/translatocr/internal/logger"
	"github.com/nguyentantai21042004/translatocr/internal/models"
	"github.com/nguyentantai21042004/translatocr/pkg/executor"
)

// tesseract TSV columns
const (
	colLevel = iota
	colPage
	colBlock
	colPar
	colLine
	colWord
	colLeft
	colTop
	colWidth
	colHeight
	colConf
	colText
	tsvColumns
)

const tsvWordLevel = 5

type implCLI struct {
	binary   string
	langs    string
	level    Level
	executor executor.Executor
	logger   logger.Logger
}

// NewCLI creates a detector that shells out to the tesseract binary and
// parses its TSV output.
func NewCLI(pair language.Pair, binary string, level Level, exec executor.Executor, log logger.Logger) (Detector, error) {
	langs, err := tesseractLangs(pair)
	if err != nil {
		return nil, err
	}
	if binary == "" {
		binary = "tesseract"
	}
	// the command runs in the image's directory
	if strings.ContainsRune(binary, filepath.Separator) && !filepath.IsAbs(binary) {
		if binary, err = filepath.Abs(binary); err != nil {
			return nil, fmt.Errorf("resolve tesseract binary: %w", err)
		}
	}
	return &implCLI{
		binary:   binary,
		langs:    strings.Join(langs, "+"),
		level:    level,
		executor: exec,
		logger:   log,
	}, nil
}

func (c *implCLI) Detect(ctx context.Context, imagePath string) ([]models.Detection, error) {
	// tesseract <image> stdout -l spa+eng tsv, run next to the image
	out, err := c.executor.ExecuteInDir(ctx, filepath.Dir(imagePath), c.binary,
		filepath.Base(imagePath), "stdout", "-l", c.langs, "tsv")
	if err != nil {
		return nil, fmt.Errorf("tesseract cli: %w", err)
	}

	words, err := parseTSV(out)
	if err != nil {
		return nil, fmt.Errorf("parse tesseract tsv: %w", err)
	}

	var detections []models.Detection
	if c.level == LevelWord {
		for _, w := range words {
			detections = append(detections, w.det)
		}
	} else {
		detections = groupLines(words)
	}

	c.logger.Debug(ctx, "tesseract cli found %d spans in %s", len(detections), imagePath)
	return detections, nil
}

func (c *implCLI) Close() error {
	return nil
}

type lineKey struct {
	page, block, par, line int
}

type tsvWord struct {
	key  lineKey
	det  models.Detection
	rect image.Rectangle
}

// parseTSV keeps word-level rows in output order.
func parseTSV(out string) ([]tsvWord, error) {
	var words []tsvWord
	for i, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		line = strings.TrimRight(line, "\r")
		if i == 0 && strings.HasPrefix(line, "level") {
			continue
		}
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < tsvColumns-1 {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", i+1, tsvColumns, len(fields))
		}
		for len(fields) < tsvColumns {
			fields = append(fields, "")
		}

		nums := make([]int, colConf)
		for col := colLevel; col < colConf; col++ {
			n, err := strconv.Atoi(fields[col])
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", i+1, col, err)
			}
			nums[col] = n
		}
		if nums[colLevel] != tsvWordLevel {
			continue
		}

		conf, err := strconv.ParseFloat(fields[colConf], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d confidence: %w", i+1, err)
		}

		rect := image.Rect(nums[colLeft], nums[colTop], nums[colLeft]+nums[colWidth], nums[colTop]+nums[colHeight])
		words = append(words, tsvWord{
			key:  lineKey{nums[colPage], nums[colBlock], nums[colPar], nums[colLine]},
			rect: rect,
			det: models.Detection{
				Box:        models.BoxFromRect(rect),
				Text:       strings.TrimSpace(fields[colText]),
				Confidence: normalizeConfidence(conf),
			},
		})
	}
	return words, nil
}

// groupLines merges words sharing a line into one span: union box, texts
// joined by spaces, mean confidence. Lines keep first-appearance order.
func groupLines(words []tsvWord) []models.Detection {
	type acc struct {
		rect  image.Rectangle
		texts []string
		conf  float64
		n     int
	}

	var order []lineKey
	lines := make(map[lineKey]*acc)
	for _, w := range words {
		a, ok := lines[w.key]
		if !ok {
			a = &acc{rect: w.rect}
			lines[w.key] = a
			order = append(order, w.key)
		}
		a.rect = a.rect.Union(w.rect)
		if w.det.Text != "" {
			a.texts = append(a.texts, w.det.Text)
		}
		a.conf += w.det.Confidence
		a.n++
	}

	out := make([]models.Detection, 0, len(order))
	for _, k := range order {
		a := lines[k]
		out = append(out, models.Detection{
			Box:        models.BoxFromRect(a.rect),
			Text:       strings.Join(a.texts, " "),
			Confidence: a.conf / float64(a.n),
		})
	}
	return out
}
