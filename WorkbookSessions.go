package main

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vanish000/Spreadsheet/contracts"
	"github.com/vanish000/Spreadsheet/spreadsheet"
)

// WorkbookSession is one open workbook. The workbook itself is not safe for
// concurrent use, so every access goes through the session lock.
type WorkbookSession struct {
	sync.Mutex
	Id       string
	Title    string
	Workbook *spreadsheet.Workbook
}

type WorkbookSessions struct {
	mutex    sync.RWMutex
	sessions map[string]*WorkbookSession
	onOpen   func(session *WorkbookSession)
}

// NewWorkbookSessions calls onOpen, when set, for every newly opened session
func NewWorkbookSessions(onOpen func(session *WorkbookSession)) *WorkbookSessions {
	return &WorkbookSessions{
		sessions: map[string]*WorkbookSession{},
		onOpen:   onOpen,
	}
}

func (s *WorkbookSessions) Create(title string) *WorkbookSession {
	session, _ := s.open(uuid.NewString(), title)
	return session
}

// Open returns the session with the given id, creating an empty one when it is
// not open yet. The boolean reports whether the session was created.
func (s *WorkbookSessions) Open(workbookId string, title string) (*WorkbookSession, bool, error) {
	canonicalId, err := CanonicalWorkbookId(workbookId)
	if err != nil {
		return nil, false, err
	}

	session, created := s.open(canonicalId, title)
	return session, created, nil
}

func (s *WorkbookSessions) Get(workbookId string) (*WorkbookSession, error) {
	canonicalId, err := CanonicalWorkbookId(workbookId)
	if err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	session, ok := s.sessions[canonicalId]
	if !ok {
		return nil, fmt.Errorf("%s: %w", workbookId, contracts.WorkbookNotFoundError)
	}
	return session, nil
}

func (s *WorkbookSessions) Close(workbookId string) error {
	canonicalId, err := CanonicalWorkbookId(workbookId)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.sessions[canonicalId]; !ok {
		return fmt.Errorf("%s: %w", workbookId, contracts.WorkbookNotFoundError)
	}

	delete(s.sessions, canonicalId)
	return nil
}

func (s *WorkbookSessions) Ids() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *WorkbookSessions) open(canonicalId string, title string) (*WorkbookSession, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if session, ok := s.sessions[canonicalId]; ok {
		return session, false
	}

	session := &WorkbookSession{
		Id:       canonicalId,
		Title:    title,
		Workbook: spreadsheet.NewWorkbook(),
	}
	s.sessions[canonicalId] = session

	if s.onOpen != nil {
		s.onOpen(session)
	}

	return session, true
}

// CanonicalWorkbookId accepts any uuid spelling and returns the lower-case form
func CanonicalWorkbookId(workbookId string) (string, error) {
	parsed, err := uuid.Parse(workbookId)
	if err != nil {
		return "", fmt.Errorf("%s: %w", workbookId, contracts.WorkbookNotFoundError)
	}
	return parsed.String(), nil
}
