package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/pkg/entity"
)

type MoodLogsRepository struct {
	conn PgConnection
}

func NewMoodLogsRepo(cfg DBConfig) *MoodLogsRepository {
	return NewMoodLogsRepoWithConn(Connect(cfg))
}

func NewMoodLogsRepoWithConn(conn PgConnection) *MoodLogsRepository {
	mustPing(conn, "moodLogsRepo")
	return &MoodLogsRepository{
		conn: conn,
	}
}

// CreateWithStats inserts the entry and applies update to the owner's counters in one transaction.
// The owner's row is locked while update runs so concurrent entries are serialized.
// Missing owner row leaves the entry saved and the counters untouched.
func (mr *MoodLogsRepository) CreateWithStats(ctx context.Context, entry *entity.MoodEntry, update StatsUpdateFunc) (*entity.MoodEntry, error) {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning mood entry transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	created := *entry
	row := tx.QueryRow(ctx, `INSERT INTO mood_logs (owner_id, mood, note) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		entry.OwnerID, entry.Mood, entry.Note)
	if err = row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, errors.New("creating mood entry error: " + err.Error())
	}

	var prev entity.ProfileStats
	row = tx.QueryRow(ctx, `SELECT streak, last_log_date, last_mood, total_logs, positive_days, logged_after_bad_day FROM users WHERE id = $1 FOR UPDATE;`,
		entry.OwnerID)
	err = row.Scan(&prev.Streak, &prev.LastLogDate, &prev.LastMood, &prev.TotalLogs, &prev.PositiveDays, &prev.LoggedAfterBadDay)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return nil, errors.New("reading profile stats error: " + err.Error())
	default:
		next := update(prev)
		_, err = tx.Exec(ctx, `UPDATE users SET streak = $1, last_log_date = $2, last_mood = $3, total_logs = $4, positive_days = $5, logged_after_bad_day = $6 WHERE id = $7;`,
			next.Streak, next.LastLogDate, next.LastMood, next.TotalLogs, next.PositiveDays, next.LoggedAfterBadDay, entry.OwnerID)
		if err != nil {
			return nil, errors.New("updating profile stats error: " + err.Error())
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing mood entry error: " + err.Error())
	}
	return &created, nil
}

func (mr *MoodLogsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MoodEntry, error) {
	entry := entity.MoodEntry{ID: id}
	row := mr.conn.QueryRow(ctx, `SELECT owner_id, mood, note, created_at FROM mood_logs WHERE id = $1;`, id)
	if err := row.Scan(&entry.OwnerID, &entry.Mood, &entry.Note, &entry.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMoodNotFound
		}
		return nil, errors.New("getting mood entry by id error: " + err.Error())
	}
	return &entry, nil
}

func (mr *MoodLogsRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]entity.MoodEntry, error) {
	rows, err := mr.conn.Query(ctx, `SELECT id, owner_id, mood, note, created_at
		FROM mood_logs WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, ownerID, limit, offset)
	if err != nil {
		return nil, errors.New("getting mood entries by owner error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.MoodEntry, 0, limit)
	for rows.Next() {
		e := entity.MoodEntry{}
		if err = rows.Scan(&e.ID, &e.OwnerID, &e.Mood, &e.Note, &e.CreatedAt); err != nil {
			return nil, errors.New("mood entry row parsing error: " + err.Error())
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected mood entry rows error: " + err.Error())
	}
	return entries, nil
}

func (mr *MoodLogsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM mood_logs WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting mood entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMoodNotFound
	}
	return nil
}
