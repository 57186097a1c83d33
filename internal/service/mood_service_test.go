package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	repomocks "github.com/limbo/serene/internal/repository/mocks"
	"github.com/limbo/serene/internal/service"
	svcmocks "github.com/limbo/serene/internal/service/mocks"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moodDeps struct {
	moods    *repomocks.MockMoodLogsRepositoryI
	users    *repomocks.MockUsersRepositoryI
	activity *repomocks.MockActivityRepositoryI
	hook     *svcmocks.MockMoodCreatedHook
}

func newMoodService(t *testing.T, now time.Time) (*service.MoodService, moodDeps) {
	ctrl := gomock.NewController(t)
	deps := moodDeps{
		moods:    repomocks.NewMockMoodLogsRepositoryI(ctrl),
		users:    repomocks.NewMockUsersRepositoryI(ctrl),
		activity: repomocks.NewMockActivityRepositoryI(ctrl),
		hook:     svcmocks.NewMockMoodCreatedHook(ctrl),
	}
	ms := service.NewMoodService(deps.moods, deps.users, deps.activity, deps.hook, time.UTC).
		WithClock(func() time.Time { return now })
	return ms, deps
}

func TestRecordMood(t *testing.T) {
	// 01:30 UTC on March 10 is still March 9 in New York
	now := time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC)
	ms, deps := newMoodService(t, now)
	ownerID := uuid.New()
	entryID := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		Req          service.RecordMoodRequest
		Prev         entity.ProfileStats
		Expected     entity.ProfileStats
		MockPrepFunc func(req service.RecordMoodRequest, prev, expected entity.ProfileStats)
	}{
		{
			Desc:     "streak continues from yesterday",
			Req:      service.RecordMoodRequest{Mood: "good", Note: "slept well"},
			Prev:     entity.ProfileStats{Streak: 5, LastLogDate: "2025-03-09", LastMood: "terrible", TotalLogs: 12, PositiveDays: 3},
			Expected: entity.ProfileStats{Streak: 6, LastLogDate: "2025-03-10", LastMood: "good", TotalLogs: 13, PositiveDays: 4, LoggedAfterBadDay: true},
		},
		{
			Desc:     "device timezone decides the calendar day",
			Req:      service.RecordMoodRequest{Mood: "sad", Timezone: "America/New_York"},
			Prev:     entity.ProfileStats{Streak: 2, LastLogDate: "2025-03-08", LastMood: "good", TotalLogs: 4, PositiveDays: 2},
			Expected: entity.ProfileStats{Streak: 3, LastLogDate: "2025-03-09", LastMood: "sad", TotalLogs: 5, PositiveDays: 2},
		},
		{
			Desc:     "gap resets streak",
			Req:      service.RecordMoodRequest{Mood: "neutral"},
			Prev:     entity.ProfileStats{Streak: 5, LastLogDate: "2025-03-07", LastMood: "good", TotalLogs: 9, PositiveDays: 6},
			Expected: entity.ProfileStats{Streak: 1, LastLogDate: "2025-03-10", LastMood: "neutral", TotalLogs: 10, PositiveDays: 6},
		},
		{
			Desc:  "unknown mood",
			Error: errorvalues.ErrValidation,
			Req:   service.RecordMoodRequest{Mood: "meh"},
		},
		{
			Desc:  "note too long",
			Error: errorvalues.ErrValidation,
			Req:   service.RecordMoodRequest{Mood: "good", Note: string(make([]rune, 301))},
		},
		{
			Desc:  "unknown timezone",
			Error: errorvalues.ErrInvalidTZ,
			Req:   service.RecordMoodRequest{Mood: "good", Timezone: "Mars/Olympus"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			if tc.Error == nil {
				deps.moods.EXPECT().CreateWithStats(gomock.Any(), &entity.MoodEntry{OwnerID: ownerID, Mood: tc.Req.Mood, Note: tc.Req.Note}, gomock.Any()).
					DoAndReturn(func(ctx context.Context, entry *entity.MoodEntry, update repository.StatsUpdateFunc) (*entity.MoodEntry, error) {
						assert.Equal(t, tc.Expected, update(tc.Prev))
						created := *entry
						created.ID = entryID
						created.CreatedAt = now
						return &created, nil
					})
				deps.hook.EXPECT().OnMoodCreated(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, entry entity.MoodEntry) error {
					assert.Equal(t, entryID, entry.ID)
					return errors.New("push is down")
				})
			}
			entry, err := ms.RecordMood(context.Background(), ownerID, &tc.Req)
			ms.WaitHooks()
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entryID, entry.ID)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		deps.moods.EXPECT().CreateWithStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
		_, err := ms.RecordMood(context.Background(), ownerID, &service.RecordMoodRequest{Mood: "great"})
		assert.EqualError(t, err, "repository error: db error")
	})
}

func TestDeleteMood(t *testing.T) {
	ms, deps := newMoodService(t, time.Now())
	id := uuid.New()
	ownerID := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "deleted",
			MockPrepFunc: func() {
				deps.moods.EXPECT().GetByID(gomock.Any(), id).Return(&entity.MoodEntry{ID: id, OwnerID: ownerID}, nil)
				deps.moods.EXPECT().Delete(gomock.Any(), id).Return(nil)
			},
		},
		{
			Desc:  "wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				deps.moods.EXPECT().GetByID(gomock.Any(), id).Return(&entity.MoodEntry{ID: id, OwnerID: uuid.New()}, nil)
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrMoodNotFound,
			MockPrepFunc: func() {
				deps.moods.EXPECT().GetByID(gomock.Any(), id).Return(nil, errorvalues.ErrMoodNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := ms.DeleteMood(context.Background(), id, ownerID)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestListMoodsLimits(t *testing.T) {
	ms, deps := newMoodService(t, time.Now())
	ownerID := uuid.New()
	deps.moods.EXPECT().GetByOwner(gomock.Any(), ownerID, 30, 0).Return([]entity.MoodEntry{}, nil)
	_, err := ms.ListMoods(context.Background(), ownerID, service.PaginationOpts{})
	assert.NoError(t, err)
	deps.moods.EXPECT().GetByOwner(gomock.Any(), ownerID, 500, 10).Return([]entity.MoodEntry{}, nil)
	_, err = ms.ListMoods(context.Background(), ownerID, service.PaginationOpts{Limit: 10000, Offset: 10})
	assert.NoError(t, err)
}

func TestGetTrend(t *testing.T) {
	ms, deps := newMoodService(t, time.Now())
	ownerID := uuid.New()
	entries := []entity.MoodEntry{{Mood: "terrible"}, {Mood: "terrible"}, {Mood: "terrible"}}
	deps.moods.EXPECT().GetByOwner(gomock.Any(), ownerID, wellness.TrendWindow, 0).Return(entries, nil)

	trend, err := ms.GetTrend(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, wellness.TrendCritical, trend.Status)
	assert.True(t, trend.Alert)
	require.NotNil(t, trend.Average)
	assert.Equal(t, 1.0, *trend.Average)
}

func TestGetBadges(t *testing.T) {
	ms, deps := newMoodService(t, time.Now())
	ownerID := uuid.New()
	deps.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(&entity.User{
		ID:    ownerID,
		Stats: entity.ProfileStats{Streak: 7, TotalLogs: 10, PositiveDays: 2},
	}, nil)
	deps.activity.EXPECT().GetFlags(gomock.Any(), ownerID).Return(entity.ActivityFlags{UsedBreathing: true}, nil)

	view, err := ms.GetBadges(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, 12, view.Total)
	earned := []string{}
	for _, b := range view.Badges {
		if b.Earned {
			earned = append(earned, b.ID)
		}
	}
	assert.ElementsMatch(t, []string{"first_log", "streak_3", "streak_7", "logs_10", "breathed"}, earned)
	assert.Equal(t, 5, view.Earned)

	deps.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(nil, errorvalues.ErrUserNotFound)
	_, err = ms.GetStats(context.Background(), ownerID)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
