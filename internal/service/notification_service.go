package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/limbo/serene/pkg/push"
)

// Users loaded per daily reminder run
const ReminderBatchLimit = 500

const (
	NotificationTypeLowMood  = "low_mood"
	NotificationTypeReminder = "daily_reminder"
)

const (
	lowMoodTitle  = "We're here for you 💙"
	lowMoodBody   = "It looks like the last few days have been tough. Try a breathing exercise or talk to someone you trust."
	reminderTitle = "How are you feeling today?"
	reminderBody  = "Take a moment to check in with yourself and log your mood."
)

type NotificationService struct {
	usersRepo repository.UsersRepositoryI
	moodsRepo repository.MoodLogsRepositoryI
	sender    push.Sender
	logger    *slog.Logger
}

func NewNotificationService(usersRepo repository.UsersRepositoryI, moodsRepo repository.MoodLogsRepositoryI,
	sender push.Sender, logger *slog.Logger) *NotificationService {
	if usersRepo == nil || moodsRepo == nil || sender == nil {
		log.Fatal("on notification service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{
		usersRepo: usersRepo,
		moodsRepo: moodsRepo,
		sender:    sender,
		logger:    logger,
	}
}

// OnMoodCreated sends the low mood push when the author's recent entries call for it.
// Authors without a push token are skipped silently.
func (ns *NotificationService) OnMoodCreated(ctx context.Context, entry entity.MoodEntry) error {
	recent, err := ns.moodsRepo.GetByOwner(ctx, entry.OwnerID, wellness.LowMoodWindow, 0)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	if !wellness.ShouldAlertLowMood(recent) {
		return nil
	}
	user, err := ns.usersRepo.FindByID(ctx, entry.OwnerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil
		}
		return errors.New("repository error: " + err.Error())
	}
	if user.PushToken == nil || *user.PushToken == "" {
		return nil
	}
	err = ns.sender.Send(ctx, push.Message{
		Token: *user.PushToken,
		Title: lowMoodTitle,
		Body:  lowMoodBody,
		Data:  map[string]string{"type": NotificationTypeLowMood},
	})
	if err != nil {
		return errors.Join(errorvalues.ErrPushFailed, err)
	}
	ns.logger.InfoContext(ctx, "low mood notification sent", slog.String("uid", entry.OwnerID.String()))
	return nil
}

// SendDailyReminders makes a single batch call without retries
func (ns *NotificationService) SendDailyReminders(ctx context.Context) (push.BatchResult, error) {
	targets, err := ns.usersRepo.ListWithPushToken(ctx, ReminderBatchLimit)
	if err != nil {
		return push.BatchResult{}, errors.New("repository error: " + err.Error())
	}
	msgs := make([]push.Message, 0, len(targets))
	for _, t := range targets {
		if t.Token == "" {
			continue
		}
		msgs = append(msgs, push.Message{
			Token: t.Token,
			Title: reminderTitle,
			Body:  reminderBody,
			Data:  map[string]string{"type": NotificationTypeReminder},
		})
	}
	if len(msgs) == 0 {
		return push.BatchResult{}, nil
	}
	res, err := ns.sender.SendBatch(ctx, msgs)
	if err != nil {
		return res, errors.Join(errorvalues.ErrPushFailed, err)
	}
	ns.logger.InfoContext(ctx, "daily reminders sent",
		slog.Int("success", res.Success),
		slog.Int("failure", res.Failure))
	return res, nil
}
