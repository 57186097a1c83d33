package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/serene/internal/error_values"
	repomocks "github.com/limbo/serene/internal/repository/mocks"
	"github.com/limbo/serene/internal/service"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/limbo/serene/pkg/push"
	pushmocks "github.com/limbo/serene/pkg/push/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moods(ids ...string) []entity.MoodEntry {
	res := make([]entity.MoodEntry, 0, len(ids))
	for _, id := range ids {
		res = append(res, entity.MoodEntry{Mood: id})
	}
	return res
}

func TestOnMoodCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	moodsRepo := repomocks.NewMockMoodLogsRepositoryI(ctrl)
	sender := pushmocks.NewMockSender(ctrl)
	ns := service.NewNotificationService(usersRepo, moodsRepo, sender, nil)
	ownerID := uuid.New()
	entry := entity.MoodEntry{ID: uuid.New(), OwnerID: ownerID, Mood: "terrible"}

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "three terrible entries alert",
			MockPrepFunc: func() {
				moodsRepo.EXPECT().GetByOwner(gomock.Any(), ownerID, wellness.LowMoodWindow, 0).Return(moods("terrible", "terrible", "terrible"), nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(&entity.User{ID: ownerID, PushToken: strPtr("tok")}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, msg push.Message) error {
					assert.Equal(t, "tok", msg.Token)
					assert.Equal(t, service.NotificationTypeLowMood, msg.Data["type"])
					return nil
				})
			},
		},
		{
			Desc: "two low entries are not enough",
			MockPrepFunc: func() {
				moodsRepo.EXPECT().GetByOwner(gomock.Any(), ownerID, wellness.LowMoodWindow, 0).Return(moods("terrible", "terrible"), nil)
			},
		},
		{
			Desc: "mean of exactly 2.5 does not alert",
			MockPrepFunc: func() {
				moodsRepo.EXPECT().GetByOwner(gomock.Any(), ownerID, wellness.LowMoodWindow, 0).Return(moods("terrible", "neutral", "sad", "good"), nil)
			},
		},
		{
			Desc: "user without token skipped",
			MockPrepFunc: func() {
				moodsRepo.EXPECT().GetByOwner(gomock.Any(), ownerID, wellness.LowMoodWindow, 0).Return(moods("sad", "sad", "terrible"), nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(&entity.User{ID: ownerID}, nil)
			},
		},
		{
			Desc: "missing profile skipped",
			MockPrepFunc: func() {
				moodsRepo.EXPECT().GetByOwner(gomock.Any(), ownerID, wellness.LowMoodWindow, 0).Return(moods("sad", "sad", "terrible"), nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:  "send failure reported",
			Error: errorvalues.ErrPushFailed,
			MockPrepFunc: func() {
				moodsRepo.EXPECT().GetByOwner(gomock.Any(), ownerID, wellness.LowMoodWindow, 0).Return(moods("sad", "sad", "terrible"), nil)
				usersRepo.EXPECT().FindByID(gomock.Any(), ownerID).Return(&entity.User{ID: ownerID, PushToken: strPtr("tok")}, nil)
				sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("unregistered"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := ns.OnMoodCreated(context.Background(), entry)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSendDailyReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	usersRepo := repomocks.NewMockUsersRepositoryI(ctrl)
	sender := pushmocks.NewMockSender(ctrl)
	ns := service.NewNotificationService(usersRepo, repomocks.NewMockMoodLogsRepositoryI(ctrl), sender, nil)

	t.Run("one batch for all targets", func(t *testing.T) {
		targets := []entity.PushTarget{{UserID: uuid.New(), Token: "a"}, {UserID: uuid.New(), Token: "b"}, {UserID: uuid.New(), Token: ""}}
		usersRepo.EXPECT().ListWithPushToken(gomock.Any(), service.ReminderBatchLimit).Return(targets, nil)
		sender.EXPECT().SendBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, msgs []push.Message) (push.BatchResult, error) {
			require.Len(t, msgs, 2)
			assert.Equal(t, "a", msgs[0].Token)
			assert.Equal(t, service.NotificationTypeReminder, msgs[1].Data["type"])
			return push.BatchResult{Success: 1, Failure: 1}, nil
		})
		res, err := ns.SendDailyReminders(context.Background())
		require.NoError(t, err)
		assert.Equal(t, push.BatchResult{Success: 1, Failure: 1}, res)
	})
	t.Run("nobody to remind", func(t *testing.T) {
		usersRepo.EXPECT().ListWithPushToken(gomock.Any(), service.ReminderBatchLimit).Return([]entity.PushTarget{}, nil)
		res, err := ns.SendDailyReminders(context.Background())
		require.NoError(t, err)
		assert.Zero(t, res)
	})
	t.Run("batch failure", func(t *testing.T) {
		usersRepo.EXPECT().ListWithPushToken(gomock.Any(), service.ReminderBatchLimit).Return([]entity.PushTarget{{Token: "a"}}, nil)
		sender.EXPECT().SendBatch(gomock.Any(), gomock.Any()).Return(push.BatchResult{}, errors.New("unavailable"))
		_, err := ns.SendDailyReminders(context.Background())
		assert.ErrorIs(t, err, errorvalues.ErrPushFailed)
	})
}
