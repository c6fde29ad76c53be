package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"socialdesk/internal/errors"
	"socialdesk/internal/usecase"

	"github.com/google/uuid"
)

// parseArrivals reads product_id,quantity rows. A header row and blank lines are skipped.
// Repeated products are kept as separate lines; the ledger records each one.
func parseArrivals(r io.Reader) ([]usecase.ArrivalItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var items []usecase.ArrivalItem
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read arrivals")
		}

		line, _ := reader.FieldPos(0)
		productField := strings.TrimSpace(record[0])
		quantityField := strings.TrimSpace(record[1])

		if len(items) == 0 && strings.EqualFold(productField, "product_id") {
			continue
		}

		productID, err := uuid.Parse(productField)
		if err != nil {
			return nil, errors.Errorf("line %d: invalid product id %q", line, productField)
		}
		quantity, err := strconv.Atoi(quantityField)
		if err != nil || quantity <= 0 {
			return nil, errors.Errorf("line %d: quantity must be a positive integer, got %q", line, quantityField)
		}

		items = append(items, usecase.ArrivalItem{ProductID: productID, Quantity: quantity})
	}

	if len(items) == 0 {
		return nil, errors.New("no arrival lines found")
	}

	return items, nil
}
