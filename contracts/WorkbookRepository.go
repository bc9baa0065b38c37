package contracts

import "errors"

type WorkbookRecord struct {
	Title    string
	Document []byte
}

type WorkbookRepository interface {
	Save(workbookId string, record *WorkbookRecord) error
	Load(workbookId string) (*WorkbookRecord, error)
	Delete(workbookId string) error
	List() ([]string, error)
}

var SavedWorkbookNotFoundError = errors.New("saved workbook not found")
