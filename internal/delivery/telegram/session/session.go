package session

import (
	"sync"

	"planning-bot/internal/app/service"
	"planning-bot/internal/domain"
)

// Session is the navigation state of one chat: the shop and week being
// edited, the grid cursor and the clipboard.
type Session struct {
	Shop        string
	Week        domain.WeekKey
	Day         domain.Day
	EmployeeIdx int
	Clipboard   *service.Clipboard
}

// SelectShop switches shop and drops everything tied to the previous one.
func (s *Session) SelectShop(shop string) {
	if s.Shop == shop {
		return
	}
	s.Shop = shop
	s.Week = ""
	s.EmployeeIdx = 0
	s.Clipboard.CancelStaged()
}

func (s *Session) SelectWeek(week domain.WeekKey) {
	s.Week = week
	s.Clipboard.CancelStaged()
}

// Employee returns the employee under the grid cursor, clamping the
// cursor to the list.
func (s *Session) Employee(employees []string) (string, bool) {
	if len(employees) == 0 {
		return "", false
	}
	if s.EmployeeIdx < 0 || s.EmployeeIdx >= len(employees) {
		s.EmployeeIdx = 0
	}
	return employees[s.EmployeeIdx], true
}

type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns the session of chat, creating it on first use.
func (st *Store) Get(chat int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[chat]
	if !ok {
		s = &Session{Day: domain.Monday, Clipboard: service.NewClipboard()}
		st.sessions[chat] = s
	}
	return s
}
