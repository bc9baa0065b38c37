package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func _recordCellChanges(worksheet *Worksheet) *[]CellPosition {
	changes := &[]CellPosition{}
	worksheet.CellChanged().Connect(func(position CellPosition) {
		*changes = append(*changes, position)
	})
	return changes
}

func TestWorksheet_Cell(t *testing.T) {
	t.Run("lazy_creation", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")

		_, ok := worksheet.CellAt(2, 3)
		assert.False(t, ok)

		cell := worksheet.Cell(2, 3)
		assert.NotNil(t, cell)
		assert.Same(t, cell, worksheet.Cell(2, 3))
		assert.Equal(t, 1, worksheet.CellCount())

		found, ok := worksheet.CellAt(2, 3)
		assert.True(t, ok)
		assert.Same(t, cell, found)
	})

	t.Run("beyond_declared_bounds", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")

		cell := worksheet.Cell(500, 80)
		cell.SetValue(TextValue("far"))

		assert.Equal(t, DefaultRowCount, worksheet.RowCount())
		assert.Equal(t, DefaultColumnCount, worksheet.ColumnCount())
		assert.Equal(t, "far", worksheet.Cell(500, 80).DisplayText())
	})

	t.Run("re_emits_value_changes_once", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")
		changes := _recordCellChanges(worksheet)

		worksheet.Cell(1, 1).SetValue(NumberValue(1))
		worksheet.Cell(1, 1).SetValue(NumberValue(2))
		worksheet.Cell(1, 1).SetValue(NumberValue(2))

		assert.Equal(t, []CellPosition{{1, 1}, {1, 1}}, *changes)
	})

	t.Run("formula_change_is_reported", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")
		changes := _recordCellChanges(worksheet)

		worksheet.Cell(0, 2).SetFormula("=1+1")

		assert.Equal(t, []CellPosition{{0, 2}}, *changes)
	})
}

func TestWorksheet_SetCell(t *testing.T) {
	t.Run("always_notifies", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")
		changes := _recordCellChanges(worksheet)
		cell := NewCell(0, 0)

		worksheet.SetCell(0, 0, cell)
		worksheet.SetCell(0, 0, cell)

		assert.Len(t, *changes, 2)
		assert.Same(t, cell, worksheet.Cell(0, 0))
	})

	t.Run("replaced_cell_is_detached", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")
		old := worksheet.Cell(4, 4)
		changes := _recordCellChanges(worksheet)

		replacement := NewCell(4, 4)
		worksheet.SetCell(4, 4, replacement)
		old.SetValue(TextValue("stale"))
		replacement.SetValue(TextValue("fresh"))

		assert.Equal(t, []CellPosition{{4, 4}, {4, 4}}, *changes)
		assert.Equal(t, "fresh", worksheet.Cell(4, 4).DisplayText())
	})

	t.Run("cell_wired_to_another_sheet_is_not_wired_twice", func(t *testing.T) {
		first := NewWorksheet("first")
		second := NewWorksheet("second")
		cell := first.Cell(0, 0)
		firstChanges := _recordCellChanges(first)
		secondChanges := _recordCellChanges(second)

		second.SetCell(1, 1, cell)
		cell.SetValue(NumberValue(1))

		assert.Equal(t, []CellPosition{{0, 0}}, *firstChanges)
		assert.Equal(t, []CellPosition{{1, 1}}, *secondChanges)
	})

	t.Run("nil_removes", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")
		worksheet.Cell(0, 0)

		worksheet.SetCell(0, 0, nil)

		assert.Equal(t, 0, worksheet.CellCount())
	})
}

func TestWorksheet_Bounds(t *testing.T) {
	t.Run("insert_and_remove", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")

		worksheet.InsertRow(0)
		worksheet.InsertColumn(0)
		assert.Equal(t, DefaultRowCount+1, worksheet.RowCount())
		assert.Equal(t, DefaultColumnCount+1, worksheet.ColumnCount())

		worksheet.RemoveRow(0)
		worksheet.RemoveColumn(0)
		assert.Equal(t, DefaultRowCount, worksheet.RowCount())
		assert.Equal(t, DefaultColumnCount, worksheet.ColumnCount())
	})

	t.Run("floor_of_one", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")
		worksheet.Resize(1, 1)

		worksheet.RemoveRow(0)
		worksheet.RemoveColumn(0)

		assert.Equal(t, 1, worksheet.RowCount())
		assert.Equal(t, 1, worksheet.ColumnCount())

		worksheet.Resize(-5, 0)
		assert.Equal(t, 1, worksheet.RowCount())
		assert.Equal(t, 1, worksheet.ColumnCount())
	})

	t.Run("shrink_keeps_cells", func(t *testing.T) {
		worksheet := NewWorksheet("Sheet1")
		worksheet.Cell(50, 20).SetValue(TextValue("kept"))

		worksheet.Resize(10, 10)

		cell, ok := worksheet.CellAt(50, 20)
		assert.True(t, ok)
		assert.Equal(t, "kept", cell.DisplayText())
	})
}

func TestWorksheet_Clear(t *testing.T) {
	worksheet := NewWorksheet("Sheet1")
	worksheet.Resize(7, 8)
	old := worksheet.Cell(1, 1)
	changes := _recordCellChanges(worksheet)

	worksheet.Clear()
	old.SetValue(TextValue("detached"))

	assert.Equal(t, 0, worksheet.CellCount())
	assert.Empty(t, *changes)
	assert.Equal(t, 7, worksheet.RowCount())
	assert.Equal(t, 8, worksheet.ColumnCount())
}

func TestWorksheet_SetName(t *testing.T) {
	worksheet := NewWorksheet("Sheet1")
	var names []string
	worksheet.NameChanged().Connect(func(name string) {
		names = append(names, name)
	})

	worksheet.SetName("Sheet1")
	worksheet.SetName("Budget")
	worksheet.SetName("Budget")

	assert.Equal(t, []string{"Budget"}, names)
	assert.Equal(t, "Budget", worksheet.Name())
}

func TestWorksheet_Cells(t *testing.T) {
	worksheet := NewWorksheet("Sheet1")
	worksheet.Cell(2, 0)
	worksheet.Cell(0, 5)
	worksheet.Cell(0, 1)
	worksheet.Cell(1, 3)

	assert.Equal(t, []CellPosition{{0, 1}, {0, 5}, {1, 3}, {2, 0}}, worksheet.Positions())

	cells := worksheet.Cells()
	assert.Len(t, cells, 4)
	assert.Equal(t, 0, cells[0].Row())
	assert.Equal(t, 1, cells[0].Column())
	assert.Equal(t, 2, cells[3].Row())
}
