package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
)

const (
	defaultMoodsLimit = 30
	maxMoodsLimit     = 500
	hookTimeout       = 30 * time.Second
)

type MoodService struct {
	moodsRepo    repository.MoodLogsRepositoryI
	usersRepo    repository.UsersRepositoryI
	activityRepo repository.ActivityRepositoryI
	hook         MoodCreatedHook
	defaultLoc   *time.Location
	now          func() time.Time
	logger       *slog.Logger
	hooks        sync.WaitGroup
}

// NewMoodService builds the service. hook may be nil, defaultLoc is used for requests without a timezone.
func NewMoodService(moodsRepo repository.MoodLogsRepositoryI, usersRepo repository.UsersRepositoryI,
	activityRepo repository.ActivityRepositoryI, hook MoodCreatedHook, defaultLoc *time.Location) *MoodService {
	if moodsRepo == nil || usersRepo == nil || activityRepo == nil {
		log.Fatal("on mood service provided nil repos")
	}
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &MoodService{
		moodsRepo:    moodsRepo,
		usersRepo:    usersRepo,
		activityRepo: activityRepo,
		hook:         hook,
		defaultLoc:   defaultLoc,
		now:          time.Now,
		logger:       slog.Default(),
	}
}

// WithClock replaces the wall clock used for calendar days
func (ms *MoodService) WithClock(now func() time.Time) *MoodService {
	ms.now = now
	return ms
}

func (ms *MoodService) WithLogger(logger *slog.Logger) *MoodService {
	ms.logger = logger
	return ms
}

func (ms *MoodService) RecordMood(ctx context.Context, ownerID uuid.UUID, req *RecordMoodRequest) (*entity.MoodEntry, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	loc, err := resolveLocation(req.Timezone, ms.defaultLoc)
	if err != nil {
		return nil, err
	}
	now := ms.now().In(loc)
	entry, err := ms.moodsRepo.CreateWithStats(ctx, &entity.MoodEntry{
		OwnerID: ownerID,
		Mood:    req.Mood,
		Note:    req.Note,
	}, func(prev entity.ProfileStats) entity.ProfileStats {
		return wellness.NextStats(prev, req.Mood, now)
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	ms.runHook(*entry)
	return entry, nil
}

// runHook calls the hook in background, its failures are only logged
func (ms *MoodService) runHook(entry entity.MoodEntry) {
	if ms.hook == nil {
		return
	}
	ms.hooks.Add(1)
	go func() {
		defer ms.hooks.Done()
		ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
		defer cancel()
		if err := ms.hook.OnMoodCreated(ctx, entry); err != nil {
			ms.logger.Warn("mood created hook failed",
				slog.String("entry_id", entry.ID.String()),
				slog.String("error", err.Error()))
		}
	}()
}

// WaitHooks blocks until every started hook has returned
func (ms *MoodService) WaitHooks() {
	ms.hooks.Wait()
}

func (ms *MoodService) ListMoods(ctx context.Context, ownerID uuid.UUID, pagination PaginationOpts) ([]entity.MoodEntry, error) {
	limit := pagination.Limit
	if limit <= 0 {
		limit = defaultMoodsLimit
	}
	limit = min(limit, maxMoodsLimit)
	entries, err := ms.moodsRepo.GetByOwner(ctx, ownerID, limit, max(pagination.Offset, 0))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return entries, nil
}

func (ms *MoodService) DeleteMood(ctx context.Context, id, ownerID uuid.UUID) error {
	entry, err := ms.moodsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMoodNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if entry.OwnerID != ownerID {
		return errorvalues.ErrWrongOwner
	}
	if err = ms.moodsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrMoodNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (ms *MoodService) GetTrend(ctx context.Context, ownerID uuid.UUID) (*wellness.Trend, error) {
	entries, err := ms.moodsRepo.GetByOwner(ctx, ownerID, wellness.TrendWindow, 0)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	trend := wellness.AnalyzeTrend(entries)
	return &trend, nil
}

func (ms *MoodService) GetStats(ctx context.Context, ownerID uuid.UUID) (*StatsView, error) {
	user, err := ms.usersRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	flags, err := ms.activityRepo.GetFlags(ctx, ownerID)
	if err != nil {
		return nil, errors.New("activity repository error: " + err.Error())
	}
	return &StatsView{
		ProfileStats:  user.Stats,
		UsedBreathing: flags.UsedBreathing,
		UsedJournal:   flags.UsedJournal,
	}, nil
}

func (ms *MoodService) GetBadges(ctx context.Context, ownerID uuid.UUID) (*BadgesView, error) {
	stats, err := ms.GetStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	badges := wellness.EvaluateBadges(stats.badgeStats())
	return &BadgesView{
		Badges: badges,
		Earned: wellness.EarnedCount(badges),
		Total:  len(badges),
	}, nil
}

func (sv *StatsView) badgeStats() wellness.Stats {
	return wellness.StatsFrom(sv.ProfileStats, entity.ActivityFlags{
		UsedBreathing: sv.UsedBreathing,
		UsedJournal:   sv.UsedJournal,
	})
}
