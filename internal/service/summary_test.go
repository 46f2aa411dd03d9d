package service

import (
	"reflect"
	"testing"

	"github.com/jeovahfialho/fidelity-trades/internal/domain"
)

func record(action domain.Action, symbol string) domain.TradeRecord {
	return domain.TradeRecord{Action: action, Symbol: symbol}
}

func TestSummarize(t *testing.T) {
	records := []domain.TradeRecord{
		record(domain.ActionBought, "AAPL"),
		record(domain.ActionSold, "AAPL"),
		record(domain.ActionBought, "MSFT"),
		record(domain.ActionConversion, "VTI"),
		record(domain.ActionUnknown, ""),
	}

	summary := Summarize(records)

	if summary.TotalCount != len(records) {
		t.Errorf("total = %d, want %d", summary.TotalCount, len(records))
	}
	if summary.BuyCount != 2 {
		t.Errorf("buys = %d, want 2", summary.BuyCount)
	}
	if summary.SellCount != 1 {
		t.Errorf("sells = %d, want 1", summary.SellCount)
	}
	if summary.BuyCount+summary.SellCount > summary.TotalCount {
		t.Error("buys + sells must not exceed total")
	}

	want := []string{"AAPL", "MSFT", "VTI"}
	if !reflect.DeepEqual(summary.UniqueSymbols, want) {
		t.Errorf("symbols = %v, want %v (sorted, deduplicated, empty excluded)", summary.UniqueSymbols, want)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalCount != 0 || summary.BuyCount != 0 || summary.SellCount != 0 {
		t.Errorf("empty input should produce zero counts, got %+v", summary)
	}
	if len(summary.UniqueSymbols) != 0 {
		t.Errorf("symbols = %v, want none", summary.UniqueSymbols)
	}
}
