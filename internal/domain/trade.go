package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Action is the standardized classification of a trade.
type Action string

const (
	ActionBought     Action = "Bought"
	ActionSold       Action = "Sold"
	ActionConversion Action = "Conversion"
	ActionUnknown    Action = "Unknown"
)

// TradeRecord is one normalized transaction from a brokerage export.
// Quantity and Amount are absolute values; the sign information lives in
// Action. Optional numeric fields use decimal.NullDecimal so an absent
// value is distinguishable from zero.
type TradeRecord struct {
	RunDate        time.Time           `json:"run_date"`
	RunMonth       int                 `json:"run_month"`
	RunYear        int                 `json:"run_year"`
	Action         Action              `json:"action"`
	Symbol         string              `json:"symbol"`
	Description    string              `json:"description"`
	Type           string              `json:"type"`
	Quantity       decimal.NullDecimal `json:"quantity"`
	Price          decimal.NullDecimal `json:"price"`
	Amount         decimal.NullDecimal `json:"amount"`
	SettlementDate *time.Time          `json:"settlement_date,omitempty"`
}

// TradeSummary aggregates a completed record sequence. Conversion and
// Unknown trades count toward TotalCount only.
type TradeSummary struct {
	TotalCount    int      `json:"total_count"`
	BuyCount      int      `json:"buy_count"`
	SellCount     int      `json:"sell_count"`
	UniqueSymbols []string `json:"unique_symbols"`
}
