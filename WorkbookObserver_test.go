package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vanish000/Spreadsheet/contracts"
	"github.com/vanish000/Spreadsheet/mocks"
	"github.com/vanish000/Spreadsheet/spreadsheet"
)

const observedWorkbookId = "6f1c5c1e-8e51-4b8a-9d0c-3b3c0b5b7a11"

func _eventMatcher(event string, worksheet int) any {
	return mock.MatchedBy(func(e *contracts.WorkbookEvent) bool {
		return e.WorkbookId == observedWorkbookId && e.Event == event && e.Worksheet == worksheet
	})
}

func TestObserveWorkbook(t *testing.T) {
	t.Run("cell_changed", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		workbook := spreadsheet.NewWorkbook()
		ObserveWorkbook(dispatcher, NewCellAddress(), observedWorkbookId, workbook)

		dispatcher.On("Notify", mock.MatchedBy(func(e *contracts.WorkbookEvent) bool {
			return e.Event == contracts.EventCellChanged && e.Cell != nil &&
				e.Cell.Address == "B3" &&
				e.Cell.Value == float64(4) &&
				e.Cell.Formula == "=2*2"
		})).Return().Once()

		workbook.Worksheet(0).Cell(2, 1).SetFormula("=2*2")
	})

	t.Run("worksheet_lifecycle", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		workbook := spreadsheet.NewWorkbook()
		ObserveWorkbook(dispatcher, NewCellAddress(), observedWorkbookId, workbook)

		dispatcher.On("Notify", mock.MatchedBy(func(e *contracts.WorkbookEvent) bool {
			return e.Event == contracts.EventWorksheetAdded && e.Worksheet == 1 && e.Name == "Plan"
		})).Return().Once()
		dispatcher.On("Notify", _eventMatcher(contracts.EventCurrentWorksheetChanged, 1)).Return().Once()
		dispatcher.On("Notify", mock.MatchedBy(func(e *contracts.WorkbookEvent) bool {
			return e.Event == contracts.EventNameChanged && e.Worksheet == 1 && e.Name == "Forecast"
		})).Return().Once()

		plan := workbook.AddWorksheet("Plan")
		workbook.SetCurrentWorksheet(1)
		plan.SetName("Forecast")
	})

	t.Run("events_follow_worksheet_index", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		workbook := spreadsheet.NewWorkbook()
		plan := workbook.AddWorksheet("Plan")
		ObserveWorkbook(dispatcher, NewCellAddress(), observedWorkbookId, workbook)

		dispatcher.On("Notify", _eventMatcher(contracts.EventWorksheetRemoved, 0)).Return().Once()
		dispatcher.On("Notify", _eventMatcher(contracts.EventCellChanged, 0)).Return().Once()

		workbook.RemoveWorksheet(0)
		plan.Cell(0, 0).SetValue(spreadsheet.NumberValue(1))
	})

	t.Run("removed_worksheet_is_silent", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		workbook := spreadsheet.NewWorkbook()
		ObserveWorkbook(dispatcher, NewCellAddress(), observedWorkbookId, workbook)
		dispatcher.On("Notify", mock.Anything).Return()

		first := workbook.Worksheet(0)
		workbook.AddWorksheet("")
		workbook.RemoveWorksheet(0)
		calls := len(dispatcher.Calls)

		first.Cell(0, 0).SetValue(spreadsheet.NumberValue(1))
		first.SetName("gone")

		assert.Len(t, dispatcher.Calls, calls)
	})
}

func TestNewCellResponse(t *testing.T) {
	position := spreadsheet.CellPosition{Row: 1, Column: 27}

	t.Run("deleted_cell", func(t *testing.T) {
		response := NewCellResponse(NewCellAddress(), position, nil)

		assert.Equal(t, &contracts.Cell{Address: "AB2", Row: 1, Column: 27}, response)
	})

	t.Run("read_only_text", func(t *testing.T) {
		cell := spreadsheet.NewCell(1, 27)
		cell.SetValue(spreadsheet.TextValue("hello"))
		cell.SetReadOnly(true)

		response := NewCellResponse(NewCellAddress(), position, cell)

		assert.Equal(t, "hello", response.Value)
		assert.Equal(t, "hello", response.Display)
		assert.True(t, response.ReadOnly)
	})
}

func TestCellValue(t *testing.T) {
	assert.Nil(t, CellValue(spreadsheet.EmptyValue()))
	assert.Equal(t, float64(1.5), CellValue(spreadsheet.NumberValue(1.5)))
	assert.Equal(t, "x", CellValue(spreadsheet.TextValue("x")))
	assert.Nil(t, CellValue(spreadsheet.NumberValue(math.Inf(1))))
	assert.Nil(t, CellValue(spreadsheet.NumberValue(math.NaN())))
}
