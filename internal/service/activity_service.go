package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/pkg/entity"
)

const defaultJournalLimit = 50

type ActivityService struct {
	repo repository.ActivityRepositoryI
}

func NewActivityService(activityRepo repository.ActivityRepositoryI) *ActivityService {
	if activityRepo == nil {
		log.Fatal("provided nil activityRepo")
	}
	return &ActivityService{
		repo: activityRepo,
	}
}

func (as *ActivityService) GetFlags(ctx context.Context, uid uuid.UUID) (entity.ActivityFlags, error) {
	flags, err := as.repo.GetFlags(ctx, uid)
	if err != nil {
		return entity.ActivityFlags{}, errors.New("repository error: " + err.Error())
	}
	return flags, nil
}

func (as *ActivityService) MarkBreathingUsed(ctx context.Context, uid uuid.UUID) error {
	return as.setFlag(ctx, uid, repository.FlagUsedBreathing)
}

func (as *ActivityService) MarkOnboardingSeen(ctx context.Context, uid uuid.UUID) error {
	return as.setFlag(ctx, uid, repository.FlagOnboardingSeen)
}

func (as *ActivityService) setFlag(ctx context.Context, uid uuid.UUID, flag string) error {
	if err := as.repo.SetFlag(ctx, uid, flag); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (as *ActivityService) SaveJournalEntry(ctx context.Context, uid uuid.UUID, req *JournalRequest) (*entity.JournalEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	entry := entity.JournalEntry{
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := as.repo.AddJournalEntry(ctx, uid, entry); err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entry, nil
}

func (as *ActivityService) ListJournal(ctx context.Context, uid uuid.UUID, limit int) ([]entity.JournalEntry, error) {
	if limit <= 0 {
		limit = defaultJournalLimit
	}
	entries, err := as.repo.ListJournal(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}

func (as *ActivityService) SaveAffirmation(ctx context.Context, uid uuid.UUID, req *AffirmationRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := as.repo.AddAffirmation(ctx, uid, req.Text); err != nil {
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (as *ActivityService) ListAffirmations(ctx context.Context, uid uuid.UUID) ([]string, error) {
	res, err := as.repo.ListAffirmations(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return res, nil
}
