package db

import (
	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// upserts one day of the fasting log. Each edit replaces the whole day.
func (s *pgStore) UpsertFastingDay(accountID int, date, status string, reason *string) error {
	query := `
	INSERT INTO fasting_log (account_id, date, status, reason, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (account_id, date)
	DO UPDATE SET status = $3, reason = $4, updated_at = now();
	`
	if _, err := s.db.Exec(query, accountID, date, status, reason); err != nil {
		log.Error().Str("date", date).Msg("failed to upsert fasting day")
		return err
	}
	return nil
}

// fetches the account's whole fasting log keyed by date.
func (s *pgStore) GetFastingLog(accountID int) (map[string]model.FastingEntry, error) {
	var rows []model.FastingEntry
	query := `
	SELECT account_id, date, status, reason, updated_at
	FROM fasting_log
	WHERE account_id = $1;
	`
	if err := s.db.Select(&rows, query, accountID); err != nil {
		log.Error().Msg("failed to get fasting log")
		return nil, err
	}

	entries := make(map[string]model.FastingEntry, len(rows))
	for _, r := range rows {
		entries[r.Date] = r
	}
	return entries, nil
}
