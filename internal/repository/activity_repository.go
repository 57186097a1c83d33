package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/serene/pkg/cleanup"
	"github.com/limbo/serene/pkg/entity"
	"github.com/redis/go-redis/v9"
)

const (
	FlagOnboardingSeen = "onboarding_seen"
	FlagUsedBreathing  = "used_breathing"

	keyPrefix = "serene:"
	// Journal entries above the cap are trimmed away, oldest first
	journalCap = 500
)

// ActivityRepository keeps the locally scoped, non-critical flags in Redis.
// It is never the source of truth for streaks or counters.
type ActivityRepository struct {
	rdb redis.Cmdable
}

func NewActivityRepo(redisURL string) *ActivityRepository {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("invalid redis url: " + err.Error())
	}
	rdb := redis.NewClient(opts)
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	return NewActivityRepoWithClient(rdb)
}

func NewActivityRepoWithClient(rdb redis.Cmdable) *ActivityRepository {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("error while pinging redis for activityRepo: " + err.Error())
	}
	return &ActivityRepository{
		rdb: rdb,
	}
}

func flagsKey(uid uuid.UUID) string        { return fmt.Sprintf("%sflags:%s", keyPrefix, uid) }
func journalKey(uid uuid.UUID) string      { return fmt.Sprintf("%sjournal:%s", keyPrefix, uid) }
func affirmationsKey(uid uuid.UUID) string { return fmt.Sprintf("%saffirmations:%s", keyPrefix, uid) }

func (ar *ActivityRepository) SetFlag(ctx context.Context, uid uuid.UUID, flag string) error {
	if err := ar.rdb.HSet(ctx, flagsKey(uid), flag, "1").Err(); err != nil {
		return errors.New("setting activity flag error: " + err.Error())
	}
	return nil
}

func (ar *ActivityRepository) GetFlags(ctx context.Context, uid uuid.UUID) (entity.ActivityFlags, error) {
	var (
		flagsCmd   *redis.MapStringStringCmd
		journalLen *redis.IntCmd
	)
	_, err := ar.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		flagsCmd = pipe.HGetAll(ctx, flagsKey(uid))
		journalLen = pipe.LLen(ctx, journalKey(uid))
		return nil
	})
	if err != nil {
		return entity.ActivityFlags{}, errors.New("reading activity flags error: " + err.Error())
	}
	flags := flagsCmd.Val()
	return entity.ActivityFlags{
		OnboardingSeen: flags[FlagOnboardingSeen] == "1",
		UsedBreathing:  flags[FlagUsedBreathing] == "1",
		UsedJournal:    journalLen.Val() > 0,
	}, nil
}

func (ar *ActivityRepository) AddJournalEntry(ctx context.Context, uid uuid.UUID, entry entity.JournalEntry) error {
	data, err := sonic.Marshal(entry)
	if err != nil {
		return errors.New("encoding journal entry error: " + err.Error())
	}
	_, err = ar.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, journalKey(uid), data)
		pipe.LTrim(ctx, journalKey(uid), 0, journalCap-1)
		return nil
	})
	if err != nil {
		return errors.New("saving journal entry error: " + err.Error())
	}
	return nil
}

// ListJournal returns newest entries first
func (ar *ActivityRepository) ListJournal(ctx context.Context, uid uuid.UUID, limit int) ([]entity.JournalEntry, error) {
	raw, err := ar.rdb.LRange(ctx, journalKey(uid), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.New("reading journal error: " + err.Error())
	}
	entries := make([]entity.JournalEntry, 0, len(raw))
	for _, r := range raw {
		var e entity.JournalEntry
		if err = sonic.UnmarshalString(r, &e); err != nil {
			// A broken entry must not hide the rest of the journal
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (ar *ActivityRepository) AddAffirmation(ctx context.Context, uid uuid.UUID, text string) error {
	if err := ar.rdb.SAdd(ctx, affirmationsKey(uid), text).Err(); err != nil {
		return errors.New("saving affirmation error: " + err.Error())
	}
	return nil
}

func (ar *ActivityRepository) ListAffirmations(ctx context.Context, uid uuid.UUID) ([]string, error) {
	res, err := ar.rdb.SMembers(ctx, affirmationsKey(uid)).Result()
	if err != nil {
		return nil, errors.New("reading affirmations error: " + err.Error())
	}
	return res, nil
}

func (ar *ActivityRepository) DeleteAll(ctx context.Context, uid uuid.UUID) error {
	if err := ar.rdb.Del(ctx, flagsKey(uid), journalKey(uid), affirmationsKey(uid)).Err(); err != nil {
		return errors.New("deleting activity data error: " + err.Error())
	}
	return nil
}
