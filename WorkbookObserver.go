package main

import (
	"math"

	"github.com/vanish000/Spreadsheet/contracts"
	"github.com/vanish000/Spreadsheet/spreadsheet"
)

// ObserveWorkbook forwards the workbook's change notifications to the webhook
// dispatcher. Worksheets added later are observed as they appear.
func ObserveWorkbook(dispatcher contracts.WebhookDispatcher, addresses contracts.CellAddressParser, workbookId string, workbook *spreadsheet.Workbook) {
	observeWorksheet := func(worksheet *spreadsheet.Worksheet) {
		worksheet.CellChanged().Connect(func(position spreadsheet.CellPosition) {
			index := worksheetIndex(workbook, worksheet)
			if index < 0 {
				return
			}

			cell, _ := worksheet.CellAt(position.Row, position.Column)
			dispatcher.Notify(&contracts.WorkbookEvent{
				WorkbookId: workbookId,
				Event:      contracts.EventCellChanged,
				Worksheet:  index,
				Cell:       NewCellResponse(addresses, position, cell),
			})
		})

		worksheet.NameChanged().Connect(func(name string) {
			index := worksheetIndex(workbook, worksheet)
			if index < 0 {
				return
			}

			dispatcher.Notify(&contracts.WorkbookEvent{
				WorkbookId: workbookId,
				Event:      contracts.EventNameChanged,
				Worksheet:  index,
				Name:       name,
			})
		})
	}

	for _, worksheet := range workbook.Worksheets() {
		observeWorksheet(worksheet)
	}

	workbook.WorksheetAdded().Connect(func(index int) {
		worksheet := workbook.Worksheet(index)
		observeWorksheet(worksheet)

		dispatcher.Notify(&contracts.WorkbookEvent{
			WorkbookId: workbookId,
			Event:      contracts.EventWorksheetAdded,
			Worksheet:  index,
			Name:       worksheet.Name(),
		})
	})

	workbook.WorksheetRemoved().Connect(func(index int) {
		dispatcher.Notify(&contracts.WorkbookEvent{
			WorkbookId: workbookId,
			Event:      contracts.EventWorksheetRemoved,
			Worksheet:  index,
		})
	})

	workbook.CurrentWorksheetChanged().Connect(func(index int) {
		dispatcher.Notify(&contracts.WorkbookEvent{
			WorkbookId: workbookId,
			Event:      contracts.EventCurrentWorksheetChanged,
			Worksheet:  index,
		})
	})
}

// NewCellResponse describes the cell stored at position; cell may be nil for a deleted cell
func NewCellResponse(addresses contracts.CellAddressParser, position spreadsheet.CellPosition, cell *spreadsheet.Cell) *contracts.Cell {
	response := &contracts.Cell{
		Address: addresses.Format(position.Row, position.Column),
		Row:     position.Row,
		Column:  position.Column,
	}

	if cell != nil {
		response.Value = CellValue(cell.Value())
		response.Formula = cell.Formula()
		response.Display = cell.DisplayText()
		response.ReadOnly = cell.IsReadOnly()
	}

	return response
}

// CellValue converts a cell value into its JSON form: number, string or null
func CellValue(value spreadsheet.Value) any {
	if number, ok := value.Number(); ok {
		if math.IsInf(number, 0) || math.IsNaN(number) {
			return nil
		}
		return number
	}

	if text, ok := value.Text(); ok {
		return text
	}

	return nil
}

func worksheetIndex(workbook *spreadsheet.Workbook, worksheet *spreadsheet.Worksheet) int {
	for index, candidate := range workbook.Worksheets() {
		if candidate == worksheet {
			return index
		}
	}
	return -1
}
