package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vanish000/Spreadsheet/contracts"
)

var SerializerError = errors.New("invalid serialized data")

const maxTitleLength = 1<<16 - 1

type RecordBinarySerializer struct {
}

func NewRecordBinarySerializer() *RecordBinarySerializer {
	return &RecordBinarySerializer{}
}

// Marshal lays the record out as uint16 LE title length, title, document.
// Titles longer than 65535 bytes are cut at the last whole rune.
func (s *RecordBinarySerializer) Marshal(record *contracts.WorkbookRecord) []byte {
	titleBytes := []byte(record.Title)
	if len(titleBytes) > maxTitleLength {
		cut := maxTitleLength
		for cut > 0 && !utf8.RuneStart(titleBytes[cut]) {
			cut--
		}
		titleBytes = titleBytes[:cut]
	}

	serializedData := make([]byte, 0, 2+len(titleBytes)+len(record.Document))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(titleBytes)))
	serializedData = append(serializedData, titleBytes...)
	serializedData = append(serializedData, record.Document...)
	return serializedData
}

// Unmarshal copies the document out of data, which may be owned by a bbolt transaction
func (s *RecordBinarySerializer) Unmarshal(data []byte) (*contracts.WorkbookRecord, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: should be more than 2 bytes (data: %v)", SerializerError, string(data))
	}

	titleLength := int(binary.LittleEndian.Uint16(data))
	if len(data) < titleLength+2 {
		return nil, fmt.Errorf("%w: title size is less than bytes amount (titleSize: %d; data: %v)", SerializerError, titleLength, string(data))
	}

	return &contracts.WorkbookRecord{
		Title:    string(data[2 : titleLength+2]),
		Document: append([]byte(nil), data[titleLength+2:]...),
	}, nil
}
