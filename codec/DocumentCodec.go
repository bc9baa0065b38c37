package codec

import (
	"fmt"
	"io"
	"math"
	"strconv"

	json "github.com/bytedance/sonic"

	"github.com/vanish000/Spreadsheet/spreadsheet"
)

const DocumentVersion = "1.0"

const DocumentApplication = "Spreadsheet"

type document struct {
	Version          string            `json:"version"`
	Application      string            `json:"application"`
	Worksheets       []worksheetRecord `json:"worksheets"`
	CurrentWorksheet int               `json:"currentWorksheet"`
}

type worksheetRecord struct {
	Name        string       `json:"name"`
	RowCount    *int         `json:"rowCount"`
	ColumnCount *int         `json:"columnCount"`
	Cells       []cellRecord `json:"cells"`
}

type cellRecord struct {
	Row      int     `json:"row"`
	Column   int     `json:"column"`
	Formula  *string `json:"formula,omitempty"`
	Value    any     `json:"value"`
	ReadOnly bool    `json:"readOnly"`
}

// DocumentCodec reads and writes the JSON workbook document.
type DocumentCodec struct {
	indent string
}

func NewDocumentCodec() *DocumentCodec {
	return &DocumentCodec{indent: "    "}
}

func (c *DocumentCodec) Encode(workbook *spreadsheet.Workbook) ([]byte, error) {
	doc := document{
		Version:     DocumentVersion,
		Application: DocumentApplication,
		Worksheets:  make([]worksheetRecord, 0, workbook.WorksheetCount()),
		// the format has no notion of the active sheet yet
		CurrentWorksheet: 0,
	}

	for _, worksheet := range workbook.Worksheets() {
		doc.Worksheets = append(doc.Worksheets, c.encodeWorksheet(worksheet))
	}

	return json.ConfigStd.MarshalIndent(doc, "", c.indent)
}

func (c *DocumentCodec) Write(workbook *spreadsheet.Workbook, writer io.Writer) error {
	data, err := c.Encode(workbook)
	if err != nil {
		return err
	}

	if _, err = writer.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return nil
}

// Decode validates the whole document before touching the workbook. On error
// the workbook keeps its previous sheets.
func (c *DocumentCodec) Decode(data []byte, workbook *spreadsheet.Workbook) error {
	doc := document{}
	if err := json.ConfigStd.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}

	if doc.Version != DocumentVersion {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, doc.Version)
	}

	worksheets := make([]*spreadsheet.Worksheet, 0, len(doc.Worksheets))
	for index, record := range doc.Worksheets {
		worksheet, err := c.decodeWorksheet(index, record)
		if err != nil {
			return err
		}
		worksheets = append(worksheets, worksheet)
	}

	if len(worksheets) == 0 {
		worksheets = append(worksheets, spreadsheet.NewWorksheet("Sheet1"))
	}

	return workbook.ReplaceWorksheets(worksheets)
}

func (c *DocumentCodec) Read(reader io.Reader, workbook *spreadsheet.Workbook) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	return c.Decode(data, workbook)
}

func (c *DocumentCodec) encodeWorksheet(worksheet *spreadsheet.Worksheet) worksheetRecord {
	rowCount := worksheet.RowCount()
	columnCount := worksheet.ColumnCount()

	record := worksheetRecord{
		Name:        worksheet.Name(),
		RowCount:    &rowCount,
		ColumnCount: &columnCount,
		Cells:       make([]cellRecord, 0),
	}

	for _, position := range worksheet.Positions() {
		cell, _ := worksheet.CellAt(position.Row, position.Column)
		if cell.IsEmpty() {
			continue
		}

		cellObj := cellRecord{
			Row:      position.Row,
			Column:   position.Column,
			Value:    encodeValue(cell.Value()),
			ReadOnly: cell.IsReadOnly(),
		}
		if formula := cell.Formula(); formula != "" {
			cellObj.Formula = &formula
		}

		record.Cells = append(record.Cells, cellObj)
	}

	return record
}

func (c *DocumentCodec) decodeWorksheet(index int, record worksheetRecord) (*spreadsheet.Worksheet, error) {
	name := record.Name
	if name == "" {
		name = "Sheet" + strconv.Itoa(index+1)
	}

	worksheet := spreadsheet.NewWorksheet(name)

	rowCount, columnCount := spreadsheet.DefaultRowCount, spreadsheet.DefaultColumnCount
	if record.RowCount != nil {
		rowCount = *record.RowCount
	}
	if record.ColumnCount != nil {
		columnCount = *record.ColumnCount
	}
	worksheet.Resize(rowCount, columnCount)

	for cellIndex, cellObj := range record.Cells {
		if cellObj.Row < 0 || cellObj.Column < 0 {
			return nil, fmt.Errorf("%w: worksheet %d cell %d: negative coordinate (%d, %d)",
				ErrInvalidDocument, index, cellIndex, cellObj.Row, cellObj.Column)
		}

		value, err := decodeValue(cellObj.Value)
		if err != nil {
			return nil, fmt.Errorf("worksheet %d cell %d: %w", index, cellIndex, err)
		}

		cell := worksheet.Cell(cellObj.Row, cellObj.Column)
		if cellObj.Formula != nil {
			cell.SetFormula(*cellObj.Formula)
		} else {
			cell.SetValue(value)
		}
		cell.SetReadOnly(cellObj.ReadOnly)
	}

	return worksheet, nil
}

func encodeValue(value spreadsheet.Value) any {
	if number, ok := value.Number(); ok {
		// JSON has no representation for them
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

func decodeValue(raw any) (spreadsheet.Value, error) {
	switch typed := raw.(type) {
	case nil:
		return spreadsheet.EmptyValue(), nil
	case float64:
		return spreadsheet.NumberValue(typed), nil
	case string:
		return spreadsheet.TextValue(typed), nil
	case bool:
		return spreadsheet.TextValue(strconv.FormatBool(typed)), nil
	default:
		return spreadsheet.EmptyValue(), fmt.Errorf("%w: unsupported value type %T", ErrInvalidDocument, raw)
	}
}
