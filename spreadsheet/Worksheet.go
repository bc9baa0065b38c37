package spreadsheet

import "sort"

const (
	DefaultRowCount    = 100
	DefaultColumnCount = 26
)

type CellPosition struct {
	Row    int
	Column int
}

type storedCell struct {
	cell       *Cell
	connection ConnectionID
	connected  bool
}

// Worksheet is a sparse grid. Row and column counts are declared bounds used
// for scanning; a cell may live at any non-negative coordinate.
type Worksheet struct {
	name        string
	rowCount    int
	columnCount int
	cells       map[CellPosition]*storedCell

	cellChanged Signal[CellPosition]
	nameChanged Signal[string]
}

func NewWorksheet(name string) *Worksheet {
	return &Worksheet{
		name:        name,
		rowCount:    DefaultRowCount,
		columnCount: DefaultColumnCount,
		cells:       make(map[CellPosition]*storedCell),
	}
}

func (w *Worksheet) Name() string {
	return w.name
}

func (w *Worksheet) SetName(name string) {
	if w.name != name {
		w.name = name
		w.nameChanged.Emit(name)
	}
}

func (w *Worksheet) RowCount() int {
	return w.rowCount
}

func (w *Worksheet) ColumnCount() int {
	return w.columnCount
}

func (w *Worksheet) CellChanged() *Signal[CellPosition] {
	return &w.cellChanged
}

func (w *Worksheet) NameChanged() *Signal[string] {
	return &w.nameChanged
}

// Cell returns the cell at (row, col), creating an empty one on first access
func (w *Worksheet) Cell(row int, col int) *Cell {
	key := CellPosition{Row: row, Column: col}

	if stored, ok := w.cells[key]; ok {
		return stored.cell
	}

	cell := NewCell(row, col)
	w.cells[key] = w.wire(key, cell)
	return cell
}

// CellAt never allocates
func (w *Worksheet) CellAt(row int, col int) (*Cell, bool) {
	stored, ok := w.cells[CellPosition{Row: row, Column: col}]
	if !ok {
		return nil, false
	}
	return stored.cell, true
}

// SetCell replaces whatever lives at (row, col) and always reports a change
func (w *Worksheet) SetCell(row int, col int, cell *Cell) {
	key := CellPosition{Row: row, Column: col}

	if previous, ok := w.cells[key]; ok {
		if previous.cell == cell {
			w.cellChanged.Emit(key)
			return
		}
		w.unwire(previous)
	}

	if cell == nil {
		delete(w.cells, key)
	} else {
		w.cells[key] = w.wire(key, cell)
	}

	w.cellChanged.Emit(key)
}

func (w *Worksheet) InsertRow(row int) {
	w.rowCount++
}

func (w *Worksheet) InsertColumn(col int) {
	w.columnCount++
}

// RemoveRow only shrinks the declared bounds; cells beyond them stay stored
func (w *Worksheet) RemoveRow(row int) {
	if w.rowCount > 1 {
		w.rowCount--
	}
}

func (w *Worksheet) RemoveColumn(col int) {
	if w.columnCount > 1 {
		w.columnCount--
	}
}

func (w *Worksheet) Resize(rowCount int, columnCount int) {
	w.rowCount = max(rowCount, 1)
	w.columnCount = max(columnCount, 1)
}

func (w *Worksheet) Clear() {
	for _, stored := range w.cells {
		w.unwire(stored)
	}
	w.cells = make(map[CellPosition]*storedCell)
}

func (w *Worksheet) CellCount() int {
	return len(w.cells)
}

// Cells lists stored cells ordered by row, then column
func (w *Worksheet) Cells() []*Cell {
	positions := w.positions()
	cells := make([]*Cell, 0, len(positions))
	for _, position := range positions {
		cells = append(cells, w.cells[position].cell)
	}
	return cells
}

// Positions lists coordinates of stored cells ordered by row, then column.
// The coordinate of a cell placed with SetCell may differ from its own Row/Column.
func (w *Worksheet) Positions() []CellPosition {
	return w.positions()
}

func (w *Worksheet) positions() []CellPosition {
	positions := make([]CellPosition, 0, len(w.cells))
	for position := range w.cells {
		positions = append(positions, position)
	}

	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Row != positions[j].Row {
			return positions[i].Row < positions[j].Row
		}
		return positions[i].Column < positions[j].Column
	})

	return positions
}

func (w *Worksheet) wire(key CellPosition, cell *Cell) *storedCell {
	stored := &storedCell{cell: cell}
	if cell.wired {
		return stored
	}

	cell.wired = true
	stored.connected = true
	stored.connection = cell.valueChanged.Connect(func(struct{}) {
		w.cellChanged.Emit(key)
	})
	return stored
}

func (w *Worksheet) unwire(stored *storedCell) {
	if !stored.connected {
		return
	}

	stored.cell.valueChanged.Disconnect(stored.connection)
	stored.cell.wired = false
	stored.connected = false
}
