package spreadsheet

import (
	"errors"
	"strconv"
)

var ErrEmptyWorksheetList = errors.New("workbook needs at least one worksheet")

// Workbook owns an ordered list of worksheets and the index of the active one.
// It is not safe for concurrent use.
type Workbook struct {
	worksheets   []*Worksheet
	currentIndex int

	worksheetAdded          Signal[int]
	worksheetRemoved        Signal[int]
	currentWorksheetChanged Signal[int]
}

func NewWorkbook() *Workbook {
	w := &Workbook{currentIndex: -1}
	w.AddWorksheet("Sheet1")
	return w
}

func (w *Workbook) WorksheetAdded() *Signal[int] {
	return &w.worksheetAdded
}

func (w *Workbook) WorksheetRemoved() *Signal[int] {
	return &w.worksheetRemoved
}

func (w *Workbook) CurrentWorksheetChanged() *Signal[int] {
	return &w.currentWorksheetChanged
}

func (w *Workbook) WorksheetCount() int {
	return len(w.worksheets)
}

func (w *Workbook) CurrentIndex() int {
	return w.currentIndex
}

func (w *Workbook) Worksheets() []*Worksheet {
	worksheets := make([]*Worksheet, len(w.worksheets))
	copy(worksheets, w.worksheets)
	return worksheets
}

func (w *Workbook) Worksheet(index int) *Worksheet {
	if index >= 0 && index < len(w.worksheets) {
		return w.worksheets[index]
	}
	return nil
}

func (w *Workbook) CurrentWorksheet() *Worksheet {
	return w.Worksheet(w.currentIndex)
}

// AddWorksheet appends a sheet. An empty name becomes "Sheet<N>"; names are not
// checked for uniqueness.
func (w *Workbook) AddWorksheet(name string) *Worksheet {
	if name == "" {
		name = "Sheet" + strconv.Itoa(len(w.worksheets)+1)
	}

	worksheet := NewWorksheet(name)
	w.worksheets = append(w.worksheets, worksheet)

	if w.currentIndex == -1 {
		w.currentIndex = 0
	}

	w.worksheetAdded.Emit(len(w.worksheets) - 1)
	return worksheet
}

// RemoveWorksheet ignores out-of-range indexes and never removes the last sheet
func (w *Workbook) RemoveWorksheet(index int) {
	if index < 0 || index >= len(w.worksheets) || len(w.worksheets) <= 1 {
		return
	}

	w.worksheets = append(w.worksheets[:index], w.worksheets[index+1:]...)

	if w.currentIndex >= len(w.worksheets) {
		w.currentIndex = len(w.worksheets) - 1
	}

	w.worksheetRemoved.Emit(index)
}

func (w *Workbook) SetCurrentWorksheet(index int) {
	if index >= 0 && index < len(w.worksheets) && index != w.currentIndex {
		w.currentIndex = index
		w.currentWorksheetChanged.Emit(index)
	}
}

// ReplaceWorksheets swaps the whole sheet list at once; the first new sheet
// becomes current.
func (w *Workbook) ReplaceWorksheets(worksheets []*Worksheet) error {
	if len(worksheets) == 0 {
		return ErrEmptyWorksheetList
	}

	previousCount := len(w.worksheets)
	w.worksheets = make([]*Worksheet, len(worksheets))
	copy(w.worksheets, worksheets)
	w.currentIndex = 0

	for index := previousCount - 1; index >= 0; index-- {
		w.worksheetRemoved.Emit(index)
	}
	for index := range w.worksheets {
		w.worksheetAdded.Emit(index)
	}
	w.currentWorksheetChanged.Emit(0)

	return nil
}
