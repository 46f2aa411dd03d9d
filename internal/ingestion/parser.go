package ingestion

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeovahfialho/fidelity-trades/internal/domain"
)

var (
	ErrEmptyInput     = errors.New("input is empty")
	ErrNoHeader       = errors.New("no header line found")
	ErrMissingColumns = errors.New("header is missing required columns")
)

// Canonical column keys after header normalization (lowercased, trimmed,
// underscores folded to spaces, "($)" suffix removed), so "Price ($)",
// "Price" and "price" all map to the same field.
const (
	fieldRunDate        = "run date"
	fieldAction         = "action"
	fieldSymbol         = "symbol"
	fieldDescription    = "description"
	fieldType           = "type"
	fieldQuantity       = "quantity"
	fieldPrice          = "price"
	fieldAmount         = "amount"
	fieldSettlementDate = "settlement date"
)

// requiredColumns must appear in the header; the remaining known columns
// are optional and yield empty markers when absent.
var requiredColumns = []string{fieldRunDate, fieldAction, fieldSymbol}

// RowWarning reports a non-fatal problem on a single data row.
type RowWarning struct {
	Line    int
	Message string
}

// parseState drives the line scan. Exports mix metadata, one real header,
// data rows and trailing disclaimer text in a single file; the state
// machine separates them.
type parseState int

const (
	stateSeekingHeader parseState = iota
	stateReadingRows
	stateDone
)

type Parser struct {
	maxLineBytes int
}

func NewParser(maxLineBytes int) *Parser {
	if maxLineBytes <= 0 {
		maxLineBytes = 1024 * 1024
	}
	return &Parser{maxLineBytes: maxLineBytes}
}

type ParseResult struct {
	Records  []domain.TradeRecord
	Warnings []RowWarning
}

// Parse scans the export line by line. Leading blank lines are skipped, the
// first non-blank line is taken as the column header, and rows are read
// until a blank line or a row whose run date does not parse; everything
// from there on is disclaimer text and is discarded. Row order is
// preserved.
func (p *Parser) Parse(r io.Reader) (*ParseResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), p.maxLineBytes)

	result := &ParseResult{}
	var columns map[string]int

	state := stateSeekingHeader
	line := 0

	for state != stateDone && scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}

		switch state {
		case stateSeekingHeader:
			if strings.TrimSpace(text) == "" {
				continue
			}
			cols, err := headerColumns(text)
			if err != nil {
				return nil, err
			}
			columns = cols
			state = stateReadingRows

		case stateReadingRows:
			if strings.TrimSpace(text) == "" {
				state = stateDone
				continue
			}

			fields, err := splitLine(text)
			if err != nil {
				result.Warnings = append(result.Warnings, RowWarning{
					Line:    line,
					Message: fmt.Sprintf("unreadable row: %v", err),
				})
				continue
			}

			record, ok := buildRecord(fields, columns)
			if !ok {
				// The run date did not parse: the data block is over and
				// this line starts the trailing disclaimer.
				state = stateDone
				continue
			}

			if len(fields) != len(columns) {
				result.Warnings = append(result.Warnings, RowWarning{
					Line:    line,
					Message: fmt.Sprintf("expected %d fields, got %d", len(columns), len(fields)),
				})
			}

			result.Records = append(result.Records, record)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if columns == nil {
		if line == 0 {
			return nil, ErrEmptyInput
		}
		return nil, ErrNoHeader
	}

	return result, nil
}

func headerColumns(text string) (map[string]int, error) {
	cells, err := splitLine(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}

	columns := make(map[string]int, len(cells))
	for i, cell := range cells {
		columns[canonicalColumn(cell)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	return columns, nil
}

func canonicalColumn(cell string) string {
	cell = strings.ToLower(strings.TrimSpace(cell))
	cell = strings.ReplaceAll(cell, "_", " ")
	cell = strings.TrimSuffix(cell, "($)")
	return strings.TrimSpace(cell)
}

// splitLine parses a single physical line as one CSV record so quoted
// commas survive. A csv.Reader over the whole file would swallow the blank
// lines that terminate the data block.
func splitLine(text string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	return reader.Read()
}

// buildRecord assembles a typed record from a raw row. It reports ok=false
// when the run date does not parse, which the caller treats as the end of
// the data block rather than an error.
func buildRecord(fields []string, columns map[string]int) (domain.TradeRecord, bool) {
	get := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(fields) {
			return ""
		}
		return fields[idx]
	}

	runDate, err := parseDate(get(fieldRunDate))
	if err != nil {
		return domain.TradeRecord{}, false
	}

	record := domain.TradeRecord{
		RunDate:     runDate,
		RunMonth:    int(runDate.Month()),
		RunYear:     runDate.Year(),
		Action:      ClassifyAction(get(fieldAction)),
		Symbol:      normalizeText(get(fieldSymbol)),
		Description: normalizeText(get(fieldDescription)),
		Type:        normalizeText(get(fieldType)),
		Quantity:    parseAbsAmount(get(fieldQuantity)),
		Price:       parseAmount(get(fieldPrice)),
		Amount:      parseAbsAmount(get(fieldAmount)),
	}

	if settlement, err := parseDate(get(fieldSettlementDate)); err == nil {
		record.SettlementDate = &settlement
	}

	return record, true
}
