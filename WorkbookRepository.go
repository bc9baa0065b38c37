package main

import (
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/vanish000/Spreadsheet/contracts"
)

var workbooksBucket = []byte("workbooks")

// WorkbookRepository keeps saved workbook documents in a single bbolt bucket
type WorkbookRepository struct {
	db         *bbolt.DB
	serializer contracts.RecordSerializer
}

func NewWorkbookRepository(db *bbolt.DB, serializer contracts.RecordSerializer) *WorkbookRepository {
	return &WorkbookRepository{
		db:         db,
		serializer: serializer,
	}
}

func (r *WorkbookRepository) Save(workbookId string, record *contracts.WorkbookRecord) error {
	key := []byte(strings.ToLower(workbookId))
	serializedData := r.serializer.Marshal(record)

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(workbooksBucket)
		if err != nil {
			return err
		}

		return bucket.Put(key, serializedData)
	})
}

func (r *WorkbookRepository) Load(workbookId string) (record *contracts.WorkbookRecord, err error) {
	workbookId = strings.ToLower(workbookId)

	err = r.db.View(func(tx *bbolt.Tx) error {
		byteValue, err := r.get(tx, workbookId)
		if err != nil {
			return err
		}

		record, err = r.serializer.Unmarshal(byteValue)
		return err
	})

	return
}

func (r *WorkbookRepository) Delete(workbookId string) error {
	workbookId = strings.ToLower(workbookId)

	return r.db.Update(func(tx *bbolt.Tx) error {
		if _, err := r.get(tx, workbookId); err != nil {
			return err
		}

		return tx.Bucket(workbooksBucket).Delete([]byte(workbookId))
	})
}

// List returns saved workbook ids in key order
func (r *WorkbookRepository) List() ([]string, error) {
	workbookIds := make([]string, 0)

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(workbooksBucket)
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			workbookIds = append(workbookIds, string(k))
		}
		return nil
	})

	return workbookIds, err
}

func (r *WorkbookRepository) get(tx *bbolt.Tx, workbookId string) ([]byte, error) {
	bucket := tx.Bucket(workbooksBucket)
	if bucket == nil {
		return nil, fmt.Errorf("%s: %w", workbookId, contracts.SavedWorkbookNotFoundError)
	}

	byteValue := bucket.Get([]byte(workbookId))
	if byteValue == nil {
		return nil, fmt.Errorf("%s: %w", workbookId, contracts.SavedWorkbookNotFoundError)
	}

	return byteValue, nil
}
