// Package common provides shared CSV export and import functionality.
package common

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/fjacquet/fincontroller/internal/dateutils"
	"github.com/fjacquet/fincontroller/internal/fileutils"
	"github.com/fjacquet/fincontroller/internal/logging"
	"github.com/fjacquet/fincontroller/internal/models"
	"github.com/fjacquet/fincontroller/internal/parser"

	"github.com/gocarina/gocsv"
)

// Delimiter is the field separator for CSV files, configured from csv.delimiter.
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// ExportRow is the CSV shape of a transaction.
type ExportRow struct {
	ID          int    `csv:"id"`
	Type        string `csv:"type"`
	Date        string `csv:"date"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Description string `csv:"description"`
}

// NewExportRow converts a transaction, formatting the amount with two decimals.
func NewExportRow(t models.Transaction) ExportRow {
	return ExportRow{
		ID:          t.ID(),
		Type:        t.Kind().String(),
		Date:        dateutils.FormatDate(t.Date(), dateutils.LayoutBR),
		Amount:      t.Amount().StringFixed(2),
		Category:    t.Category().String(),
		Description: t.Description(),
	}
}

// Input converts an exported row back into a transaction form. The id is
// not carried over.
func (r ExportRow) Input() parser.Input {
	return parser.Input{
		Amount:      r.Amount,
		Kind:        r.Type,
		Date:        r.Date,
		Category:    r.Category,
		Description: r.Description,
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	logger = logging.OrDiscard(logger)
	logger.Debug("Reading CSV file", logging.F(logging.FieldFile, filePath))

	file, err := os.Open(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	logger.Debug("Successfully read CSV data", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteTransactionsToCSV writes transactions to csvFile, one row per
// transaction in the given order. Parent directories are created.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	logger = logging.OrDiscard(logger)
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	logger.Info("Writing transactions to CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)),
		logging.F(logging.FieldDelimiter, string(Delimiter)))

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]ExportRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, NewExportRow(t))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Successfully wrote transactions to CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(transactions)))
	return nil
}
