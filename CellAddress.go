package main

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vanish000/Spreadsheet/contracts"
)

// CellAddress maps A1 notation onto the zero-based coordinates used by worksheets
type CellAddress struct {
}

func NewCellAddress() *CellAddress {
	return &CellAddress{}
}

func (a *CellAddress) Parse(address string) (row int, col int, err error) {
	address = strings.ToUpper(strings.TrimSpace(address))
	if address == "" {
		return 0, 0, fmt.Errorf("empty address: %w", contracts.InvalidCellAddressError)
	}

	col, row, err = excelize.CellNameToCoordinates(address)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", address, contracts.InvalidCellAddressError)
	}

	return row - 1, col - 1, nil
}

// Format falls back to R1C1 for coordinates Excel cannot address
func (a *CellAddress) Format(row int, col int) string {
	name, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", row+1, col+1)
	}
	return name
}
