package codec

import (
	"bufio"
	"io"
	"strings"

	"github.com/vanish000/Spreadsheet/spreadsheet"
)

const csvMaxLineSize = 16 * 1024 * 1024

// CsvCodec moves cell values, not formulas, between a worksheet and CSV text.
type CsvCodec struct{}

func NewCsvCodec() *CsvCodec {
	return &CsvCodec{}
}

// Export writes the smallest origin-anchored rectangle covering every cell with
// content inside the declared bounds. A sheet without content yields one empty line.
func (c *CsvCodec) Export(worksheet *spreadsheet.Worksheet, writer io.Writer) error {
	maxRow, maxCol := 0, 0
	for _, position := range worksheet.Positions() {
		if position.Row >= worksheet.RowCount() || position.Column >= worksheet.ColumnCount() {
			continue
		}

		cell, _ := worksheet.CellAt(position.Row, position.Column)
		if !cell.IsEmpty() {
			maxRow = max(maxRow, position.Row)
			maxCol = max(maxCol, position.Column)
		}
	}

	buffered := bufio.NewWriter(writer)
	fields := make([]string, maxCol+1)

	for row := 0; row <= maxRow; row++ {
		for col := 0; col <= maxCol; col++ {
			fields[col] = ""
			if cell, ok := worksheet.CellAt(row, col); ok {
				fields[col] = quoteCsvField(cell.Value().String())
			}
		}

		if _, err := buffered.WriteString(strings.Join(fields, ",")); err != nil {
			return err
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}

	return buffered.Flush()
}

// Import writes every field as a text value starting at (0, 0). Existing cells
// outside the imported rectangle are kept. Cell change notifications are held
// back until the whole input has been applied.
func (c *CsvCodec) Import(worksheet *spreadsheet.Worksheet, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), csvMaxLineSize)

	previouslyBlocked := worksheet.CellChanged().Block(true)
	changed := make([]spreadsheet.CellPosition, 0)

	row := 0
	for scanner.Scan() {
		for col, field := range splitCsvLine(scanner.Text()) {
			if c.apply(worksheet, row, col, field) {
				changed = append(changed, spreadsheet.CellPosition{Row: row, Column: col})
			}
		}
		row++
	}

	worksheet.CellChanged().Block(previouslyBlocked)
	for _, position := range changed {
		worksheet.CellChanged().Emit(position)
	}

	return scanner.Err()
}

func (c *CsvCodec) apply(worksheet *spreadsheet.Worksheet, row int, col int, field string) bool {
	value := spreadsheet.TextValue(field)
	if field == "" {
		value = spreadsheet.EmptyValue()
		if _, ok := worksheet.CellAt(row, col); !ok {
			return false
		}
	}

	cell := worksheet.Cell(row, col)
	changed := cell.Formula() != "" || !cell.Value().Equal(value)
	cell.SetValue(value)
	return changed
}

func quoteCsvField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// splitCsvLine splits one physical line. Quoted fields cannot span lines.
func splitCsvLine(line string) []string {
	fields := make([]string, 0, 8)
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		char := runes[i]

		switch {
		case char == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case char == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}

	return append(fields, current.String())
}
