package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// inserts a new account, returns the new account ID.
func (s *pgStore) CreateAccount(email, hashedPassword string, name *string) (int, error) {
	query := `
	INSERT INTO accounts (email, hashed_password, name, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING id;
	`
	var newID int
	err := s.db.QueryRow(query, email, hashedPassword, name).Scan(&newID)
	if err != nil {
		log.Error().Msg("failed to create account")
		return 0, err
	}
	return newID, nil
}

// fetches an account by email. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetAccountByEmail(email string) (*model.Account, error) {
	var a model.Account
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM accounts
	WHERE email = $1;
	`
	err := s.db.Get(&a, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Msg("failed to get account by email")
		return nil, err
	}
	return &a, nil
}

// fetches an account by ID. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetAccountByID(id int) (*model.Account, error) {
	var a model.Account
	query := `
	SELECT id, email, hashed_password, name, created_at, updated_at
	FROM accounts
	WHERE id = $1;
	`
	err := s.db.Get(&a, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Msg("failed to get account by id")
		return nil, err
	}
	return &a, nil
}

// updates an account's email and name, and bumps updated_at.
func (s *pgStore) UpdateAccountProfile(id int, email string, name *string) error {
	query := `
	UPDATE accounts
	SET email = $2,
	name = $3,
	updated_at = now()
	WHERE id = $1;
	`
	res, err := s.db.Exec(query, id, email, name)
	if err != nil {
		log.Error().Msg("failed to update account profile - exec")
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// lists every account id, used by the reminder worker sweep.
func (s *pgStore) ListAccountIDs() ([]int, error) {
	var ids []int
	if err := s.db.Select(&ids, `SELECT id FROM accounts ORDER BY id;`); err != nil {
		log.Error().Msg("failed to list account ids")
		return nil, err
	}
	return ids, nil
}
