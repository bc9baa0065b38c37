package contracts

type RecordSerializer interface {
	Marshal(record *WorkbookRecord) []byte
	Unmarshal([]byte) (*WorkbookRecord, error)
}
