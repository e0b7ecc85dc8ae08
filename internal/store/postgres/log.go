// internal/store/postgres/log.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/calebfernandez/levelup/internal/models"
)

type LogStore struct {
	db *sql.DB
}

func NewLogStore(db *sql.DB) *LogStore {
	return &LogStore{db: db}
}

func (s *LogStore) CreateLog(ctx context.Context, log *models.Log) error {
	return s.db.QueryRowContext(ctx, `
		INSERT INTO logs (weight, user_id)
		VALUES ($1, $2)
		RETURNING id, date_logged
	`, log.Weight, log.UserID).Scan(&log.ID, &log.DateLogged)
}

func (s *LogStore) ListLogsByUser(ctx context.Context, userID int) ([]models.Log, error) {
	// Insertion order, not measurement order: multiple logs per day are
	// allowed and no re-sorting is applied.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, weight, date_logged, user_id
		FROM logs
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.Log
	for rows.Next() {
		var log models.Log
		if err := rows.Scan(&log.ID, &log.Weight, &log.DateLogged, &log.UserID); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
