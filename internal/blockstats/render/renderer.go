// Package render draws derived block metrics as HTML line charts.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
	"go.uber.org/zap"
)

const (
	VolumeFile     = "transaction_volume.html"
	GenerationFile = "block_generation_time.html"

	noDataMessage = "no data, fetch first"
	// echarts draws "-" as a gap in the line.
	missingValue = "-"
)

// Renderer writes chart files into an output directory.
type Renderer struct {
	outputDir string
	logger    *zap.Logger
}

func NewRenderer(outputDir string, logger *zap.Logger) *Renderer {
	if outputDir == "" {
		outputDir = "."
	}
	return &Renderer{outputDir: outputDir, logger: logger}
}

// RenderVolume writes the transaction volume chart and returns its path.
// Nothing is written for an empty table and the returned path is empty.
func (r *Renderer) RenderVolume(table model.VolumeTable) (string, error) {
	if len(table.Rows) == 0 {
		r.logger.Info(noDataMessage, zap.String("chart", "transaction_volume"))
		return "", nil
	}
	return r.renderFile(VolumeFile, volumeChart(table))
}

// RenderGenerationTimes writes the block generation time chart and returns its path.
// Nothing is written for an empty table and the returned path is empty.
func (r *Renderer) RenderGenerationTimes(table model.GenerationTable) (string, error) {
	if len(table.Rows) == 0 {
		r.logger.Info(noDataMessage, zap.String("chart", "block_generation_time"))
		return "", nil
	}
	return r.renderFile(GenerationFile, generationChart(table))
}

// WriteVolume renders the transaction volume chart to w.
func (r *Renderer) WriteVolume(w io.Writer, table model.VolumeTable) error {
	if len(table.Rows) == 0 {
		r.logger.Info(noDataMessage, zap.String("chart", "transaction_volume"))
		return nil
	}
	return volumeChart(table).Render(w)
}

// WriteGenerationTimes renders the block generation time chart to w.
func (r *Renderer) WriteGenerationTimes(w io.Writer, table model.GenerationTable) error {
	if len(table.Rows) == 0 {
		r.logger.Info(noDataMessage, zap.String("chart", "block_generation_time"))
		return nil
	}
	return generationChart(table).Render(w)
}

func (r *Renderer) renderFile(name string, chart *charts.Line) (path string, err error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path = filepath.Join(r.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := chart.Render(f); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	r.logger.Info("chart written", zap.String("path", path))
	return path, nil
}

func volumeChart(table model.VolumeTable) *charts.Line {
	xs := make([]string, 0, len(table.Rows))
	ys := make([]opts.LineData, 0, len(table.Rows))
	for _, row := range table.Rows {
		xs = append(xs, strconv.FormatUint(row.BlockNumber, 10))
		ys = append(ys, opts.LineData{Value: row.TransactionCount})
	}

	line := newLine("Transaction Volume per Block", "Number of Transactions")
	line.SetXAxis(xs).AddSeries("transaction_count", ys)
	return line
}

func generationChart(table model.GenerationTable) *charts.Line {
	xs := make([]string, 0, len(table.Rows))
	ys := make([]opts.LineData, 0, len(table.Rows))
	for _, row := range table.Rows {
		xs = append(xs, strconv.FormatUint(row.BlockNumber, 10))
		if row.TimeDiff.Valid {
			ys = append(ys, opts.LineData{Value: row.TimeDiff.Seconds})
		} else {
			ys = append(ys, opts.LineData{Value: missingValue})
		}
	}

	line := newLine("Block Generation Time", "Time Difference (seconds)")
	line.SetXAxis(xs).AddSeries("time_diff", ys)
	return line
}

func newLine(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Block Number"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}
