package contracts

import "errors"

type Cell struct {
	Address  string `json:"address"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	Value    any    `json:"value"`
	Formula  string `json:"formula,omitempty"`
	Display  string `json:"display"`
	ReadOnly bool   `json:"readOnly"`
}

// CellList is keyed by A1 address
type CellList map[string]*Cell

var CellNotFoundError = errors.New("cell not found")

var CellReadOnlyError = errors.New("cell is read-only")

var InvalidCellAddressError = errors.New("invalid cell address")
