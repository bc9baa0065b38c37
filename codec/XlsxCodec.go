package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/vanish000/Spreadsheet/spreadsheet"
)

const xlsxMaxSheetNameLength = 31

const xlsxForbiddenSheetNameChars = `:\/?*[]`

// XlsxCodec exchanges whole workbooks with Excel files. Formula cells carry both
// the formula and its evaluated value; text that looks like a number comes back
// as a number.
type XlsxCodec struct{}

func NewXlsxCodec() *XlsxCodec {
	return &XlsxCodec{}
}

func (c *XlsxCodec) Export(workbook *spreadsheet.Workbook, writer io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	used := map[string]bool{}
	for index, worksheet := range workbook.Worksheets() {
		sheetName := c.sheetName(worksheet.Name(), index, used)

		var err error
		if index == 0 {
			err = f.SetSheetName("Sheet1", sheetName)
		} else {
			_, err = f.NewSheet(sheetName)
		}
		if err != nil {
			return fmt.Errorf("sheet %q: %w", worksheet.Name(), err)
		}

		if err = c.exportCells(f, sheetName, worksheet); err != nil {
			return fmt.Errorf("sheet %q: %w", worksheet.Name(), err)
		}
	}

	return f.Write(writer)
}

// Import replaces the workbook sheets only when the whole file was read.
func (c *XlsxCodec) Import(reader io.Reader, workbook *spreadsheet.Workbook) error {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}
	defer f.Close()

	worksheets := make([]*spreadsheet.Worksheet, 0)
	for _, sheetName := range f.GetSheetList() {
		worksheet, err := c.importSheet(f, sheetName)
		if err != nil {
			return fmt.Errorf("sheet %q: %w", sheetName, err)
		}
		worksheets = append(worksheets, worksheet)
	}

	if len(worksheets) == 0 {
		worksheets = append(worksheets, spreadsheet.NewWorksheet("Sheet1"))
	}

	return workbook.ReplaceWorksheets(worksheets)
}

func (c *XlsxCodec) exportCells(f *excelize.File, sheetName string, worksheet *spreadsheet.Worksheet) error {
	for _, position := range worksheet.Positions() {
		cell, _ := worksheet.CellAt(position.Row, position.Column)
		if cell.IsEmpty() {
			continue
		}

		ref, err := excelize.CoordinatesToCellName(position.Column+1, position.Row+1)
		if err != nil {
			return err
		}

		value := cell.Value()
		if number, ok := value.Number(); ok {
			err = f.SetCellValue(sheetName, ref, number)
		} else if text, ok := value.Text(); ok {
			err = f.SetCellValue(sheetName, ref, text)
		}
		if err != nil {
			return err
		}

		if formula := cell.Formula(); formula != "" {
			if err = f.SetCellFormula(sheetName, ref, strings.TrimPrefix(formula, spreadsheet.FormulaPrefix)); err != nil {
				return err
			}
		}
	}

	return nil
}

// importSheet reads raw cell values so numbers keep their full precision.
// Formula cells without a cached value are kept and evaluated again.
func (c *XlsxCodec) importSheet(f *excelize.File, sheetName string) (*spreadsheet.Worksheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	worksheet := spreadsheet.NewWorksheet(sheetName)
	columnCount := 0

	for rowIndex, row := range rows {
		columnCount = max(columnCount, len(row))

		for colIndex, text := range row {
			ref, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				return nil, err
			}

			formula, err := f.GetCellFormula(sheetName, ref)
			if err != nil {
				return nil, err
			}

			if formula == "" && text == "" {
				continue
			}

			cell := worksheet.Cell(rowIndex, colIndex)
			if formula != "" {
				cell.SetFormula(spreadsheet.FormulaPrefix + formula)
			} else if number, err := strconv.ParseFloat(text, 64); err == nil {
				cell.SetValue(spreadsheet.NumberValue(number))
			} else {
				cell.SetValue(spreadsheet.TextValue(text))
			}
		}
	}

	worksheet.Resize(max(len(rows), spreadsheet.DefaultRowCount), max(columnCount, spreadsheet.DefaultColumnCount))
	return worksheet, nil
}

// sheetName makes a worksheet name acceptable to Excel: no forbidden
// characters, at most 31 characters, unique inside the file.
func (c *XlsxCodec) sheetName(name string, index int, used map[string]bool) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(xlsxForbiddenSheetNameChars, r) {
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))

	if name == "" {
		name = "Sheet" + strconv.Itoa(index+1)
	}

	candidate := truncateRunes(name, xlsxMaxSheetNameLength)
	for suffix := 2; used[strings.ToLower(candidate)]; suffix++ {
		tail := " (" + strconv.Itoa(suffix) + ")"
		candidate = truncateRunes(name, xlsxMaxSheetNameLength-utf8.RuneCountInString(tail)) + tail
	}

	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
