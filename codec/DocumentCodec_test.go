package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	json "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"

	"github.com/vanish000/Spreadsheet/spreadsheet"
)

func _prepareWorkbook() *spreadsheet.Workbook {
	workbook := spreadsheet.NewWorkbook()
	workbook.Worksheet(0).Cell(0, 0).SetFormula("=1+1")
	workbook.Worksheet(0).Cell(2, 1).SetValue(spreadsheet.TextValue("text"))

	second := workbook.AddWorksheet("Budget")
	second.Resize(10, 5)
	second.Cell(1, 1).SetValue(spreadsheet.NumberValue(3.5))
	second.Cell(1, 1).SetReadOnly(true)
	second.Cell(4, 4)

	workbook.SetCurrentWorksheet(1)
	return workbook
}

func TestDocumentCodec_Encode(t *testing.T) {
	codec := NewDocumentCodec()

	data, err := codec.Encode(_prepareWorkbook())
	assert.NoError(t, err)

	var doc map[string]any
	assert.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "1.0", doc["version"])
	assert.Equal(t, "Spreadsheet", doc["application"])
	assert.Equal(t, float64(0), doc["currentWorksheet"])

	worksheets := doc["worksheets"].([]any)
	assert.Len(t, worksheets, 2)

	first := worksheets[0].(map[string]any)
	assert.Equal(t, "Sheet1", first["name"])
	assert.Equal(t, float64(100), first["rowCount"])
	assert.Equal(t, float64(26), first["columnCount"])

	cells := first["cells"].([]any)
	assert.Len(t, cells, 2)

	formulaCell := cells[0].(map[string]any)
	assert.Equal(t, "=1+1", formulaCell["formula"])
	assert.Equal(t, float64(2), formulaCell["value"])
	assert.Equal(t, false, formulaCell["readOnly"])

	textCell := cells[1].(map[string]any)
	assert.NotContains(t, textCell, "formula")
	assert.Equal(t, "text", textCell["value"])
	assert.Equal(t, float64(2), textCell["row"])
	assert.Equal(t, float64(1), textCell["column"])

	second := worksheets[1].(map[string]any)
	assert.Equal(t, float64(10), second["rowCount"])
	// the untouched cell at (4, 4) is not written
	assert.Len(t, second["cells"].([]any), 1)
	assert.Equal(t, true, second["cells"].([]any)[0].(map[string]any)["readOnly"])
}

func TestDocumentCodec_Decode(t *testing.T) {
	codec := NewDocumentCodec()

	t.Run("round_trip", func(t *testing.T) {
		data, err := codec.Encode(_prepareWorkbook())
		assert.NoError(t, err)

		workbook := spreadsheet.NewWorkbook()
		assert.NoError(t, codec.Decode(data, workbook))

		assert.Equal(t, 2, workbook.WorksheetCount())
		assert.Equal(t, 0, workbook.CurrentIndex())

		cell := workbook.Worksheet(0).Cell(0, 0)
		assert.Equal(t, "=1+1", cell.Formula())
		assert.True(t, cell.Value().Equal(spreadsheet.NumberValue(2)))
		assert.Equal(t, "text", workbook.Worksheet(0).Cell(2, 1).DisplayText())

		budget := workbook.Worksheet(1)
		assert.Equal(t, "Budget", budget.Name())
		assert.Equal(t, 10, budget.RowCount())
		assert.Equal(t, 5, budget.ColumnCount())
		assert.True(t, budget.Cell(1, 1).IsReadOnly())
		assert.True(t, budget.Cell(1, 1).Value().Equal(spreadsheet.NumberValue(3.5)))
	})

	t.Run("unsupported_version", func(t *testing.T) {
		workbook := _prepareWorkbook()

		err := codec.Decode([]byte(`{"version": "2.0", "worksheets": []}`), workbook)

		assert.ErrorIs(t, err, ErrUnsupportedVersion)
		assert.Equal(t, 2, workbook.WorksheetCount())
		assert.Equal(t, 1, workbook.CurrentIndex())
		assert.Equal(t, "=1+1", workbook.Worksheet(0).Cell(0, 0).Formula())
	})

	t.Run("missing_version", func(t *testing.T) {
		workbook := spreadsheet.NewWorkbook()

		err := codec.Decode([]byte(`{"worksheets": []}`), workbook)

		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("malformed_json", func(t *testing.T) {
		workbook := _prepareWorkbook()

		err := codec.Decode([]byte(`{"version": "1.0", "worksheets": [`), workbook)

		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.Equal(t, 2, workbook.WorksheetCount())
	})

	t.Run("malformed_cell_keeps_workbook", func(t *testing.T) {
		workbook := _prepareWorkbook()
		removed := 0
		workbook.WorksheetRemoved().Connect(func(int) { removed++ })

		err := codec.Decode([]byte(`{"version": "1.0", "worksheets": [
			{"name": "a", "cells": [{"row": 0, "column": 0, "value": 1}]},
			{"name": "b", "cells": [{"row": -1, "column": 0, "value": 1}]}
		]}`), workbook)

		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.Equal(t, 0, removed)
		assert.Equal(t, "Sheet1", workbook.Worksheet(0).Name())
	})

	t.Run("unsupported_value_type", func(t *testing.T) {
		workbook := spreadsheet.NewWorkbook()

		err := codec.Decode([]byte(`{"version": "1.0", "worksheets": [
			{"name": "a", "cells": [{"row": 0, "column": 0, "value": {"nested": true}}]}
		]}`), workbook)

		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("no_worksheets", func(t *testing.T) {
		workbook := _prepareWorkbook()

		assert.NoError(t, codec.Decode([]byte(`{"version": "1.0"}`), workbook))

		assert.Equal(t, 1, workbook.WorksheetCount())
		assert.Equal(t, "Sheet1", workbook.CurrentWorksheet().Name())
		assert.Equal(t, 0, workbook.CurrentWorksheet().CellCount())
	})

	t.Run("value_types_and_defaults", func(t *testing.T) {
		workbook := spreadsheet.NewWorkbook()

		err := codec.Decode([]byte(`{"version": "1.0", "application": "other", "worksheets": [
			{"cells": [
				{"row": 0, "column": 0, "value": null},
				{"row": 0, "column": 1, "value": true},
				{"row": 0, "column": 2, "value": "5"},
				{"row": 0, "column": 3, "value": 5, "readOnly": true},
				{"row": 300, "column": 40, "formula": "=6/3", "value": 999}
			]}
		]}`), workbook)
		assert.NoError(t, err)

		worksheet := workbook.Worksheet(0)
		assert.Equal(t, "Sheet1", worksheet.Name())
		assert.Equal(t, spreadsheet.DefaultRowCount, worksheet.RowCount())
		assert.Equal(t, spreadsheet.DefaultColumnCount, worksheet.ColumnCount())

		assert.True(t, worksheet.Cell(0, 0).Value().IsEmpty())
		assert.True(t, worksheet.Cell(0, 1).Value().Equal(spreadsheet.TextValue("true")))
		assert.True(t, worksheet.Cell(0, 2).Value().Equal(spreadsheet.TextValue("5")))
		assert.True(t, worksheet.Cell(0, 3).Value().Equal(spreadsheet.NumberValue(5)))
		assert.True(t, worksheet.Cell(0, 3).IsReadOnly())
		assert.True(t, worksheet.Cell(300, 40).Value().Equal(spreadsheet.NumberValue(2)))
	})

	t.Run("notifications_after_swap", func(t *testing.T) {
		workbook := spreadsheet.NewWorkbook()
		var events []string
		workbook.WorksheetRemoved().Connect(func(int) {
			events = append(events, "removed")
		})
		workbook.WorksheetAdded().Connect(func(index int) {
			// the new sheet list is already in place
			events = append(events, workbook.Worksheet(index).Name())
		})

		assert.NoError(t, codec.Decode([]byte(`{"version": "1.0", "worksheets": [{"name": "x"}, {"name": "y"}]}`), workbook))

		assert.Equal(t, []string{"removed", "x", "y"}, events)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDocumentCodec_WriteRead(t *testing.T) {
	codec := NewDocumentCodec()

	t.Run("stream_round_trip", func(t *testing.T) {
		var buffer bytes.Buffer
		assert.NoError(t, codec.Write(_prepareWorkbook(), &buffer))
		assert.True(t, strings.HasPrefix(buffer.String(), "{"))

		workbook := spreadsheet.NewWorkbook()
		assert.NoError(t, codec.Read(&buffer, workbook))

		assert.Equal(t, 2, workbook.WorksheetCount())
		assert.Equal(t, "=1+1", workbook.Worksheet(0).Cell(0, 0).Formula())
	})

	t.Run("write_error", func(t *testing.T) {
		err := codec.Write(_prepareWorkbook(), failingWriter{})

		assert.ErrorIs(t, err, ErrFileAccess)
	})

	t.Run("read_error_keeps_workbook", func(t *testing.T) {
		workbook := _prepareWorkbook()

		err := codec.Read(iotest.ErrReader(errors.New("broken pipe")), workbook)

		assert.ErrorIs(t, err, ErrFileAccess)
		assert.Equal(t, 2, workbook.WorksheetCount())
	})

	t.Run("read_invalid_document", func(t *testing.T) {
		workbook := _prepareWorkbook()

		err := codec.Read(strings.NewReader(`{"version": "2.0"}`), workbook)

		assert.ErrorIs(t, err, ErrUnsupportedVersion)
		assert.Equal(t, "Budget", workbook.Worksheet(1).Name())
	})
}
