package main

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vanish000/Spreadsheet/contracts"
)

func TestWorkbookSessions(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		var opened []*WorkbookSession
		sessions := NewWorkbookSessions(func(session *WorkbookSession) {
			opened = append(opened, session)
		})

		session := sessions.Create("Budget")

		_, err := uuid.Parse(session.Id)
		assert.NoError(t, err)
		assert.Equal(t, "Budget", session.Title)
		assert.Equal(t, 1, session.Workbook.WorksheetCount())
		assert.Equal(t, []*WorkbookSession{session}, opened)
	})

	t.Run("get_any_spelling", func(t *testing.T) {
		sessions := NewWorkbookSessions(nil)
		session := sessions.Create("")

		found, err := sessions.Get(strings.ToUpper(session.Id))

		assert.NoError(t, err)
		assert.Same(t, session, found)
	})

	t.Run("get_unknown", func(t *testing.T) {
		sessions := NewWorkbookSessions(nil)

		_, err := sessions.Get(uuid.NewString())
		assert.ErrorIs(t, err, contracts.WorkbookNotFoundError)

		_, err = sessions.Get("not-a-uuid")
		assert.ErrorIs(t, err, contracts.WorkbookNotFoundError)
	})

	t.Run("open_reuses_session", func(t *testing.T) {
		opened := 0
		sessions := NewWorkbookSessions(func(*WorkbookSession) { opened++ })
		workbookId := uuid.NewString()

		first, created, err := sessions.Open(workbookId, "first")
		assert.NoError(t, err)
		assert.True(t, created)

		second, created, err := sessions.Open(strings.ToUpper(workbookId), "second")
		assert.NoError(t, err)
		assert.False(t, created)
		assert.Same(t, first, second)
		assert.Equal(t, "first", second.Title)
		assert.Equal(t, 1, opened)
	})

	t.Run("open_invalid_id", func(t *testing.T) {
		sessions := NewWorkbookSessions(nil)

		session, created, err := sessions.Open("workbook", "")

		assert.Nil(t, session)
		assert.False(t, created)
		assert.ErrorIs(t, err, contracts.WorkbookNotFoundError)
	})

	t.Run("close", func(t *testing.T) {
		sessions := NewWorkbookSessions(nil)
		session := sessions.Create("")

		assert.NoError(t, sessions.Close(session.Id))
		assert.ErrorIs(t, sessions.Close(session.Id), contracts.WorkbookNotFoundError)

		_, err := sessions.Get(session.Id)
		assert.ErrorIs(t, err, contracts.WorkbookNotFoundError)
	})

	t.Run("ids", func(t *testing.T) {
		sessions := NewWorkbookSessions(nil)
		_, _, _ = sessions.Open("00000000-0000-0000-0000-000000000002", "")
		_, _, _ = sessions.Open("00000000-0000-0000-0000-000000000001", "")

		assert.Equal(t, []string{
			"00000000-0000-0000-0000-000000000001",
			"00000000-0000-0000-0000-000000000002",
		}, sessions.Ids())
	})

	t.Run("concurrent_create", func(t *testing.T) {
		sessions := NewWorkbookSessions(nil)
		wg := sync.WaitGroup{}

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sessions.Create("")
			}()
		}
		wg.Wait()

		assert.Len(t, sessions.Ids(), 20)
	})
}

func TestCanonicalWorkbookId(t *testing.T) {
	workbookId, err := CanonicalWorkbookId("6F1C5C1E-8E51-4B8A-9D0C-3B3C0B5B7A11")
	assert.NoError(t, err)
	assert.Equal(t, "6f1c5c1e-8e51-4b8a-9d0c-3b3c0b5b7a11", workbookId)

	_, err = CanonicalWorkbookId("")
	assert.ErrorIs(t, err, contracts.WorkbookNotFoundError)
}
