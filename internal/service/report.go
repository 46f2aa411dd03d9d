package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/jeovahfialho/fidelity-trades/internal/domain"
	"github.com/jeovahfialho/fidelity-trades/internal/export"
	"github.com/jeovahfialho/fidelity-trades/internal/ingestion"
	"github.com/jeovahfialho/fidelity-trades/pkg/logger"
)

// ReportService runs the full pipeline for one export file: parse,
// summarize, write. It holds no state between invocations.
type ReportService struct {
	parser *ingestion.Parser
	writer *export.Writer
}

func NewReportService(parser *ingestion.Parser, writer *export.Writer) *ReportService {
	return &ReportService{
		parser: parser,
		writer: writer,
	}
}

type ProcessResult struct {
	Records  []domain.TradeRecord
	Summary  domain.TradeSummary
	Warnings []ingestion.RowWarning
}

// ProcessReader parses and summarizes an export without writing output.
func (s *ReportService) ProcessReader(ctx context.Context, r io.Reader) (*ProcessResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parsed, err := s.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}

	for _, warning := range parsed.Warnings {
		logger.Warn("degraded row",
			zap.Int("line", warning.Line),
			zap.String("reason", warning.Message))
	}

	summary := Summarize(parsed.Records)
	logger.Info("export parsed",
		zap.Int("records", summary.TotalCount),
		zap.Int("buys", summary.BuyCount),
		zap.Int("sells", summary.SellCount),
		zap.Int("symbols", len(summary.UniqueSymbols)))

	return &ProcessResult{
		Records:  parsed.Records,
		Summary:  summary,
		Warnings: parsed.Warnings,
	}, nil
}

// ProcessFile runs the pipeline from an input path to an output path.
func (s *ReportService) ProcessFile(ctx context.Context, inputPath, outputPath string) (*ProcessResult, error) {
	logger.Info("processing export",
		zap.String("input", inputPath),
		zap.String("output", outputPath))

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	result, err := s.ProcessReader(ctx, in)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("creating output: %w", err)
	}

	if err := s.writer.Write(out, result.Records); err != nil {
		out.Close()
		return nil, fmt.Errorf("writing output: %w", err)
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("closing output: %w", err)
	}

	logger.Info("output written",
		zap.String("file", outputPath),
		zap.Int("records", result.Summary.TotalCount))

	return result, nil
}
