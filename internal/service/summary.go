package service

import (
	"sort"

	"github.com/jeovahfialho/fidelity-trades/internal/domain"
)

// Summarize reduces a completed record sequence to its summary. Pure and
// order-independent; conversions and unknown actions count toward the total
// only. Symbols are deduplicated and sorted, empty symbols excluded.
func Summarize(records []domain.TradeRecord) domain.TradeSummary {
	summary := domain.TradeSummary{TotalCount: len(records)}

	symbols := make(map[string]struct{})
	for _, record := range records {
		switch record.Action {
		case domain.ActionBought:
			summary.BuyCount++
		case domain.ActionSold:
			summary.SellCount++
		}
		if record.Symbol != "" {
			symbols[record.Symbol] = struct{}{}
		}
	}

	summary.UniqueSymbols = make([]string, 0, len(symbols))
	for symbol := range symbols {
		summary.UniqueSymbols = append(summary.UniqueSymbols, symbol)
	}
	sort.Strings(summary.UniqueSymbols)

	return summary
}
