package codec

import (
	"fmt"
	"os"

	"github.com/vanish000/Spreadsheet/spreadsheet"
)

var (
	documentCodec = NewDocumentCodec()
	csvCodec      = NewCsvCodec()
	xlsxCodec     = NewXlsxCodec()
)

func SaveWorkbook(workbook *spreadsheet.Workbook, fileName string) error {
	return writeFile(fileName, func(file *os.File) error {
		return documentCodec.Write(workbook, file)
	})
}

// LoadWorkbook leaves the workbook as it was when the file cannot be read or parsed
func LoadWorkbook(workbook *spreadsheet.Workbook, fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer file.Close()

	return documentCodec.Read(file, workbook)
}

func ExportCsv(worksheet *spreadsheet.Worksheet, fileName string) error {
	return writeFile(fileName, func(file *os.File) error {
		return csvCodec.Export(worksheet, file)
	})
}

func ImportCsv(worksheet *spreadsheet.Worksheet, fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer file.Close()

	if err = csvCodec.Import(worksheet, file); err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	return nil
}

func ExportXlsx(workbook *spreadsheet.Workbook, fileName string) error {
	return writeFile(fileName, func(file *os.File) error {
		return xlsxCodec.Export(workbook, file)
	})
}

func ImportXlsx(workbook *spreadsheet.Workbook, fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer file.Close()

	return xlsxCodec.Import(file, workbook)
}

func writeFile(fileName string, write func(file *os.File) error) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	err = write(file)
	closeErr := file.Close()

	if err != nil {
		return err
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %w", ErrFileAccess, closeErr)
	}
	return nil
}
