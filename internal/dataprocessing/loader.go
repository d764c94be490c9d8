package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"retailcli/internal/config"
	apperrors "retailcli/internal/errors"
	"retailcli/internal/validation"
	"retailcli/pkg/contracts/domain"
)

// Loader reads the source dataset into typed transaction records.
// The load is all-or-nothing: a single malformed row aborts it.
type Loader struct {
	logger    *slog.Logger
	validator *validation.InputValidator
	input     config.InputConfig
}

// NewLoader creates a loader for the configured input format.
func NewLoader(logger *slog.Logger, input config.InputConfig) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		validator: validation.NewInputValidator(logger),
		input:     input,
	}
}

// Load reads the file at path and returns one record per source row,
// preserving column order and raw values. Excel workbooks are detected by
// extension; everything else is read as delimited text through the declared
// encoding.
func (l *Loader) Load(path string) ([]domain.Transaction, error) {
	if err := l.validator.ValidateInputFile(path); err != nil {
		return nil, apperrors.LoadFailed("input validation failed", err)
	}

	var (
		rows []domain.Transaction
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = l.loadExcel(path)
	} else {
		rows, err = l.loadDelimited(path)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Info("Loaded source dataset",
		slog.String("path", path),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// loadDelimited reads a delimited text file through the configured encoding.
func (l *Loader) loadDelimited(path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.LoadFailed("failed to open input file", err)
	}
	defer file.Close()

	enc, err := config.ResolveEncoding(l.input.Encoding)
	if err != nil {
		return nil, apperrors.LoadFailed("unsupported input encoding", err)
	}

	reader := csv.NewReader(enc.NewDecoder().Reader(file))
	if l.input.Delimiter != "" {
		reader.Comma = rune(l.input.Delimiter[0])
	}

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.LoadFailed("failed to read header", err)
	}
	if err := verifyHeader(header); err != nil {
		return nil, err
	}

	var rows []domain.Transaction
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, apperrors.RowMalformed(line, err)
		}

		tx, err := l.parseRow(record)
		if err != nil {
			return nil, apperrors.RowMalformed(line, err)
		}
		rows = append(rows, tx)
	}

	return rows, nil
}

// loadExcel reads the first sheet of an Excel workbook under the same schema
// and the same all-or-nothing contract as the delimited path.
func (l *Loader) loadExcel(path string) ([]domain.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.LoadFailed("failed to open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.LoadFailed("workbook has no sheets", nil)
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.LoadFailed(fmt.Sprintf("failed to read sheet %s", sheet), err)
	}
	if len(raw) == 0 {
		return nil, apperrors.SchemaInvalid("workbook sheet is empty")
	}

	if err := verifyHeader(raw[0]); err != nil {
		return nil, err
	}

	var rows []domain.Transaction
	for i, record := range raw[1:] {
		// excelize trims trailing empty cells; restore the fixed width.
		for len(record) < len(domain.TransactionColumns) {
			record = append(record, "")
		}
		tx, err := l.parseRow(record)
		if err != nil {
			return nil, apperrors.RowMalformed(i+2, err)
		}
		rows = append(rows, tx)
	}

	return rows, nil
}

// verifyHeader checks the fixed 8-column schema, tolerating a BOM on the
// first column and surrounding whitespace.
func verifyHeader(header []string) error {
	if len(header) != len(domain.TransactionColumns) {
		return apperrors.SchemaInvalid(fmt.Sprintf(
			"expected %d columns, got %d", len(domain.TransactionColumns), len(header)))
	}
	for i, want := range domain.TransactionColumns {
		got := strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
		if !strings.EqualFold(got, want) {
			return apperrors.SchemaInvalid(fmt.Sprintf(
				"column %d: expected %q, got %q", i+1, want, got))
		}
	}
	return nil
}

// parseRow converts one raw record into a typed transaction. Quantity and
// unit price must parse here; a failure is structural and fails the load.
// The customer identifier is optional but must be numeric when present.
func (l *Loader) parseRow(record []string) (domain.Transaction, error) {
	quantity, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid quantity %q: %w", record[3], err)
	}

	unitPrice, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid unit price %q: %w", record[5], err)
	}

	customerID, err := parseCustomerID(record[6])
	if err != nil {
		return domain.Transaction{}, err
	}

	tx := domain.Transaction{
		InvoiceID:    strings.TrimSpace(record[0]),
		StockCode:    strings.TrimSpace(record[1]),
		Description:  strings.TrimSpace(record[2]),
		Quantity:     quantity,
		RawTimestamp: strings.TrimSpace(record[4]),
		UnitPrice:    unitPrice,
		CustomerID:   customerID,
		Country:      strings.TrimSpace(record[7]),
	}

	if err := l.validator.ValidateRecord(&tx); err != nil {
		return domain.Transaction{}, err
	}
	return tx, nil
}

// parseCustomerID parses the optional customer column. The Excel export
// renders identifiers as floats ("17850.0"), so both forms are accepted.
func parseCustomerID(raw string) (domain.NullInt64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.NullInt64{}, nil
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return domain.Int64Of(id), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return domain.NullInt64{}, fmt.Errorf("invalid customer id %q", raw)
	}
	return domain.Int64Of(int64(f)), nil
}
