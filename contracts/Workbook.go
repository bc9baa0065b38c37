package contracts

import "errors"

type WorksheetSummary struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	RowCount    int    `json:"rowCount"`
	ColumnCount int    `json:"columnCount"`
	CellCount   int    `json:"cellCount"`
}

type WorkbookSummary struct {
	Id               string             `json:"id"`
	Title            string             `json:"title"`
	CurrentWorksheet int                `json:"currentWorksheet"`
	Worksheets       []WorksheetSummary `json:"worksheets"`
}

var WorkbookNotFoundError = errors.New("workbook not found")

var WorksheetNotFoundError = errors.New("worksheet not found")

var LastWorksheetError = errors.New("the last worksheet cannot be removed")

var InvalidRequestError = errors.New("invalid request")
