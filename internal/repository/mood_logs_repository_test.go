package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMoodWithStats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMoodLogsRepoWithConn(mock)
	insert := regexp.QuoteMeta(`INSERT INTO mood_logs (owner_id, mood, note) VALUES ($1, $2, $3) RETURNING id, created_at;`)
	selectStats := regexp.QuoteMeta(`SELECT streak, last_log_date, last_mood, total_logs, positive_days, logged_after_bad_day FROM users WHERE id = $1 FOR UPDATE;`)
	updateStats := regexp.QuoteMeta(`UPDATE users SET streak = $1, last_log_date = $2, last_mood = $3, total_logs = $4, positive_days = $5, logged_after_bad_day = $6 WHERE id = $7;`)
	statsColumns := []string{"streak", "last_log_date", "last_mood", "total_logs", "positive_days", "logged_after_bad_day"}

	ownerID := uuid.New()
	entryID := uuid.New()
	createdAt := time.Now()
	entry := &entity.MoodEntry{OwnerID: ownerID, Mood: "good", Note: "walked the dog"}
	next := entity.ProfileStats{Streak: 6, LastLogDate: "2025-03-10", LastMood: "good", TotalLogs: 13, PositiveDays: 3}
	var seen *entity.ProfileStats
	update := func(prev entity.ProfileStats) entity.ProfileStats {
		seen = &prev
		return next
	}

	testCases := []struct {
		Desc         string
		Error        error
		UpdateCalled bool
		MockPrepFunc func()
	}{
		{
			Desc:         "entry and stats written",
			UpdateCalled: true,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(insert).WithArgs(ownerID, "good", "walked the dog").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(entryID, createdAt))
				mock.ExpectQuery(selectStats).WithArgs(ownerID).
					WillReturnRows(pgxmock.NewRows(statsColumns).AddRow(5, "2025-03-09", "sad", 12, 2, false))
				mock.ExpectExec(updateStats).WithArgs(6, "2025-03-10", "good", 13, 3, false, ownerID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			Desc:         "missing profile keeps the entry",
			UpdateCalled: false,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(insert).WithArgs(ownerID, "good", "walked the dog").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(entryID, createdAt))
				mock.ExpectQuery(selectStats).WithArgs(ownerID).WillReturnError(pgx.ErrNoRows)
				mock.ExpectCommit()
			},
		},
		{
			Desc:  "insert error rolls back",
			Error: errors.New("creating mood entry error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(insert).WithArgs(ownerID, "good", "walked the dog").WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
		{
			Desc:         "stats update error rolls back",
			Error:        errors.New("updating profile stats error: db error"),
			UpdateCalled: true,
			MockPrepFunc: func() {
				mock.ExpectBegin()
				mock.ExpectQuery(insert).WithArgs(ownerID, "good", "walked the dog").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(entryID, createdAt))
				mock.ExpectQuery(selectStats).WithArgs(ownerID).
					WillReturnRows(pgxmock.NewRows(statsColumns).AddRow(5, "2025-03-09", "sad", 12, 2, false))
				mock.ExpectExec(updateStats).WithArgs(6, "2025-03-10", "good", 13, 3, false, ownerID).
					WillReturnError(errors.New("db error"))
				mock.ExpectRollback()
			},
		},
		{
			Desc:  "begin error",
			Error: errors.New("beginning mood entry transaction error: db error"),
			MockPrepFunc: func() {
				mock.ExpectBegin().WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			seen = nil
			tc.MockPrepFunc()
			created, err := repo.CreateWithStats(ctx, entry, update)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Equal(t, entryID, created.ID)
				assert.Equal(t, createdAt, created.CreatedAt)
				assert.Equal(t, "good", created.Mood)
			}
			if tc.UpdateCalled {
				require.NotNil(t, seen)
				assert.Equal(t, entity.ProfileStats{Streak: 5, LastLogDate: "2025-03-09", LastMood: "sad", TotalLogs: 12, PositiveDays: 2}, *seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMoodsByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMoodLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, owner_id, mood, note, created_at
		FROM mood_logs WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`)
	ownerID := uuid.New()
	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "owner_id", "mood", "note", "created_at"}).
		AddRow(uuid.New(), ownerID, "great", "", now).
		AddRow(uuid.New(), ownerID, "sad", "rainy", now.Add(-time.Hour))

	mock.ExpectQuery(query).WithArgs(ownerID, 7, 0).WillReturnRows(rows)
	entries, err := repo.GetByOwner(context.Background(), ownerID, 7, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "great", entries[0].Mood)
	assert.Equal(t, "rainy", entries[1].Note)

	mock.ExpectQuery(query).WithArgs(ownerID, 7, 0).WillReturnError(errors.New("db error"))
	_, err = repo.GetByOwner(context.Background(), ownerID, 7, 0)
	assert.EqualError(t, err, "getting mood entries by owner error: db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAndDeleteMood(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewMoodLogsRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	ownerID := uuid.New()
	selectQuery := regexp.QuoteMeta(`SELECT owner_id, mood, note, created_at FROM mood_logs WHERE id = $1;`)
	deleteQuery := regexp.QuoteMeta(`DELETE FROM mood_logs WHERE id = $1;`)

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(selectQuery).WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"owner_id", "mood", "note", "created_at"}).AddRow(ownerID, "neutral", "", now))
		entry, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.MoodEntry{ID: id, OwnerID: ownerID, Mood: "neutral", CreatedAt: now}, *entry)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(selectQuery).WithArgs(id).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrMoodNotFound)
	})
	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id))
	})
	t.Run("delete missing", func(t *testing.T) {
		mock.ExpectExec(deleteQuery).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrMoodNotFound)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
