package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jeovahfialho/fidelity-trades/internal/domain"
)

const dateLayout = "01/02/2006"

// Columns is the output contract. Downstream consumers depend on both the
// names and the positions, so the order is fixed.
var Columns = []string{
	"run_date",
	"run_month",
	"run_year",
	"action",
	"symbol",
	"description",
	"type",
	"quantity",
	"price",
	"amount",
	"settlement_date",
}

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes the record sequence as CSV, one header line followed by
// one line per record. Empty markers render as the empty string.
func (w *Writer) Write(out io.Writer, records []domain.TradeRecord) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, record := range records {
		if err := cw.Write(renderRecord(record)); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Render returns the serialized output as a string.
func (w *Writer) Render(records []domain.TradeRecord) (string, error) {
	var sb strings.Builder
	if err := w.Write(&sb, records); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderRecord(r domain.TradeRecord) []string {
	settlement := ""
	if r.SettlementDate != nil {
		settlement = r.SettlementDate.Format(dateLayout)
	}

	return []string{
		r.RunDate.Format(dateLayout),
		strconv.Itoa(r.RunMonth),
		strconv.Itoa(r.RunYear),
		string(r.Action),
		r.Symbol,
		r.Description,
		r.Type,
		renderDecimal(r.Quantity),
		renderDecimal(r.Price),
		renderDecimal(r.Amount),
		settlement,
	}
}

func renderDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}
