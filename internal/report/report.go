// Package report writes wallet transactions and budget summaries to
// export files. CSV is the interchange format for transactions; the
// budget report is written as YAML.
package report

import (
	"encoding/csv"
	"fmt"

	"fjacquet/homefinance/internal/config"
	"fjacquet/homefinance/internal/fileutils"
	"fjacquet/homefinance/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Delimiter is the CSV output delimiter, configurable via export.delimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter used for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// transactionRow is the flattened CSV shape of one transaction.
type transactionRow struct {
	ID       string `csv:"Id"`
	Date     string `csv:"Date"`
	Amount   string `csv:"Amount"`
	Category string `csv:"Category"`
	Wallet   string `csv:"Wallet"`
}

// WriteTransactionsCSV writes the wallet's transactions to a CSV file,
// creating the parent directory if needed.
func WriteTransactionsCSV(wallet models.Wallet, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(wallet.Transactions),
	}).Info("Writing transactions to CSV file")

	rows := make([]transactionRow, 0, len(wallet.Transactions))
	for _, tx := range wallet.Transactions {
		rows = append(rows, transactionRow{
			ID:       tx.ID,
			Date:     tx.Date,
			Amount:   tx.Amount.StringFixed(2),
			Category: tx.Category.Name,
			Wallet:   wallet.Name,
		})
	}

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote transactions to CSV file")
	return nil
}
