package db

import (
	"database/sql"
	"sync"
	"time"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// MemoryStore is an in-memory Store used by tests in place of Postgres.
type MemoryStore struct {
	mu       sync.Mutex
	nextID   int
	accounts map[int]*model.Account
	fasting  map[int]map[string]model.FastingEntry
	tracker  map[int]map[string]map[string]bool
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:   1,
		accounts: make(map[int]*model.Account),
		fasting:  make(map[int]map[string]model.FastingEntry),
		tracker:  make(map[int]map[string]map[string]bool),
	}
}

func (m *MemoryStore) CreateAccount(email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	now := time.Now()
	m.accounts[id] = &model.Account{
		ID: id, Email: email, HashedPassword: hashedPassword, Name: name,
		CreatedAt: now, UpdatedAt: now,
	}
	return id, nil
}

func (m *MemoryStore) GetAccountByEmail(email string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Email == email {
			copy := *a
			return &copy, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MemoryStore) GetAccountByID(id int) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copy := *a
	return &copy, nil
}

func (m *MemoryStore) UpdateAccountProfile(id int, email string, name *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[id]
	if !ok {
		return sql.ErrNoRows
	}
	a.Email = email
	a.Name = name
	a.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) ListAccountIDs() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int, 0, len(m.accounts))
	for id := range m.accounts {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MemoryStore) UpsertFastingDay(accountID int, date, status string, reason *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fasting[accountID] == nil {
		m.fasting[accountID] = make(map[string]model.FastingEntry)
	}
	m.fasting[accountID][date] = model.FastingEntry{
		AccountID: accountID, Date: date, Status: status, Reason: reason, UpdatedAt: time.Now(),
	}
	return nil
}

func (m *MemoryStore) GetFastingLog(accountID int) (map[string]model.FastingEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]model.FastingEntry, len(m.fasting[accountID]))
	for k, v := range m.fasting[accountID] {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) SetTrackerItem(accountID int, date, item string, done bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tracker[accountID] == nil {
		m.tracker[accountID] = make(map[string]map[string]bool)
	}
	if m.tracker[accountID][date] == nil {
		m.tracker[accountID][date] = make(map[string]bool)
	}
	m.tracker[accountID][date][item] = done
	return nil
}

func (m *MemoryStore) GetTrackerEntry(accountID int, date string) (map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]bool, len(m.tracker[accountID][date]))
	for k, v := range m.tracker[accountID][date] {
		out[k] = v
	}
	return out, nil
}

func (m *MemoryStore) GetTrackerLog(accountID int) (map[string]map[string]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]map[string]bool, len(m.tracker[accountID]))
	for date, items := range m.tracker[accountID] {
		day := make(map[string]bool, len(items))
		for k, v := range items {
			day[k] = v
		}
		out[date] = day
	}
	return out, nil
}
