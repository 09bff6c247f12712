// exposes a Store interface that is passed to services and API endpoints
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

type Store interface {
	// account functions
	CreateAccount(email, hashedPassword string, name *string) (int, error)
	GetAccountByEmail(email string) (*model.Account, error)
	GetAccountByID(id int) (*model.Account, error)
	UpdateAccountProfile(id int, email string, name *string) error
	ListAccountIDs() ([]int, error)

	// fasting log functions
	UpsertFastingDay(accountID int, date, status string, reason *string) error
	GetFastingLog(accountID int) (map[string]model.FastingEntry, error)

	// worship tracker functions
	SetTrackerItem(accountID int, date, item string, done bool) error
	GetTrackerEntry(accountID int, date string) (map[string]bool, error)
	GetTrackerLog(accountID int) (map[string]map[string]bool, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(db *sqlx.DB) Store {
	return &pgStore{db: db}
}
