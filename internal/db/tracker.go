package db

import (
	"github.com/rs/zerolog/log"

	"github.com/alfarizi/ramadhan-companion/internal/model"
)

// toggles one worship item for one day.
func (s *pgStore) SetTrackerItem(accountID int, date, item string, done bool) error {
	query := `
	INSERT INTO tracker_log (account_id, date, item, done, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (account_id, date, item)
	DO UPDATE SET done = $4, updated_at = now();
	`
	if _, err := s.db.Exec(query, accountID, date, item, done); err != nil {
		log.Error().Str("date", date).Str("item", item).Msg("failed to set tracker item")
		return err
	}
	return nil
}

// fetches one day's tracker entry as item -> done.
func (s *pgStore) GetTrackerEntry(accountID int, date string) (map[string]bool, error) {
	var rows []model.TrackerItemRow
	query := `
	SELECT account_id, date, item, done, updated_at
	FROM tracker_log
	WHERE account_id = $1 AND date = $2;
	`
	if err := s.db.Select(&rows, query, accountID, date); err != nil {
		log.Error().Str("date", date).Msg("failed to get tracker entry")
		return nil, err
	}

	entry := make(map[string]bool, len(rows))
	for _, r := range rows {
		entry[r.Item] = r.Done
	}
	return entry, nil
}

// fetches the account's whole tracker log keyed by date.
func (s *pgStore) GetTrackerLog(accountID int) (map[string]map[string]bool, error) {
	var rows []model.TrackerItemRow
	query := `
	SELECT account_id, date, item, done, updated_at
	FROM tracker_log
	WHERE account_id = $1;
	`
	if err := s.db.Select(&rows, query, accountID); err != nil {
		log.Error().Msg("failed to get tracker log")
		return nil, err
	}

	logByDate := make(map[string]map[string]bool)
	for _, r := range rows {
		if logByDate[r.Date] == nil {
			logByDate[r.Date] = make(map[string]bool)
		}
		logByDate[r.Date][r.Item] = r.Done
	}
	return logByDate, nil
}
