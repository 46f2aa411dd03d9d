package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeovahfialho/fidelity-trades/internal/config"
	"github.com/jeovahfialho/fidelity-trades/internal/domain"
	"github.com/jeovahfialho/fidelity-trades/internal/export"
	"github.com/jeovahfialho/fidelity-trades/internal/ingestion"
	"github.com/jeovahfialho/fidelity-trades/internal/service"
	"github.com/jeovahfialho/fidelity-trades/pkg/logger"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "fidelity-trades",
		Short: "Fidelity trade export cleaner",
		Long: `Cleans Fidelity account-history CSV exports.
Locates the real data inside the export's noisy framing, normalizes each
trade into typed records and writes a standardized CSV plus a summary.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			level := cfg.LogLevel
			if verbose {
				level = "debug"
			}
			return logger.Init(level, cfg.Environment == "development")
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	cleanCmd := &cobra.Command{
		Use:   "clean [input.csv] [output.csv]",
		Short: "Parse an export and write the standardized CSV",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(args[0], args[1])
		},
	}

	summaryCmd := &cobra.Command{
		Use:   "summary [input.csv]",
		Short: "Print the trade summary for an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(args[0])
		},
	}

	rootCmd.AddCommand(cleanCmd, summaryCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		logger.Close()
		os.Exit(1)
	}

	logger.Close()
}

func newReportService(cfg *config.Config) *service.ReportService {
	parser := ingestion.NewParser(cfg.MaxLineBytes)
	writer := export.NewWriter()
	return service.NewReportService(parser, writer)
}

func runClean(inputPath, outputPath string) error {
	ctx := context.Background()
	cfg := config.Load()

	svc := newReportService(cfg)

	fmt.Printf("📥 Reading %s...\n", inputPath)

	result, err := svc.ProcessFile(ctx, inputPath, outputPath)
	if err != nil {
		return err
	}

	printSummary(result.Summary)

	for _, warning := range result.Warnings {
		fmt.Printf("⚠️  Line %d: %s\n", warning.Line, warning.Message)
	}

	fmt.Printf("\n✅ Wrote %d trades to %s\n", result.Summary.TotalCount, outputPath)

	return nil
}

func runSummary(inputPath string) error {
	ctx := context.Background()
	cfg := config.Load()

	svc := newReportService(cfg)

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer file.Close()

	result, err := svc.ProcessReader(ctx, file)
	if err != nil {
		return err
	}

	printSummary(result.Summary)

	return nil
}

func printSummary(summary domain.TradeSummary) {
	fmt.Println("\n📊 Trade Summary:")
	fmt.Printf("├─ Total Trades: %d\n", summary.TotalCount)
	fmt.Printf("├─ Buys: %d\n", summary.BuyCount)
	fmt.Printf("├─ Sells: %d\n", summary.SellCount)

	if len(summary.UniqueSymbols) > 0 {
		fmt.Printf("└─ Unique Symbols: %d (%s)\n",
			len(summary.UniqueSymbols),
			strings.Join(summary.UniqueSymbols, ", "))
	} else {
		fmt.Println("└─ Unique Symbols: 0")
	}
}
