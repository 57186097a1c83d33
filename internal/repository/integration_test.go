package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/serene/internal/error_values"
	"github.com/limbo/serene/internal/repository"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/pressly/goose"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestMoodLogIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupTestDB(t)
	users := repository.NewUsersRepo(cfg)
	moods := repository.NewMoodLogsRepo(cfg)
	chat := repository.NewChatRepo(cfg)
	ctx := context.Background()

	name := "river"
	hash := "pass_hash"
	uid, err := users.Create(ctx, &entity.User{Name: &name, PasswordHash: &hash, DisplayName: "River", Language: "en"})
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	stepStats := func(mood string, now time.Time) repository.StatsUpdateFunc {
		return func(prev entity.ProfileStats) entity.ProfileStats {
			return wellness.NextStats(prev, mood, now)
		}
	}

	t.Run("stats follow entries", func(t *testing.T) {
		for i, mood := range []string{"sad", "good", "great"} {
			_, err := moods.CreateWithStats(ctx, &entity.MoodEntry{OwnerID: uid, Mood: mood}, stepStats(mood, day.AddDate(0, 0, i)))
			require.NoError(t, err)
		}
		user, err := users.FindByID(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 3, user.Stats.Streak)
		assert.Equal(t, 3, user.Stats.TotalLogs)
		assert.Equal(t, 2, user.Stats.PositiveDays)
		assert.Equal(t, "great", user.Stats.LastMood)
		assert.Equal(t, "2025-03-12", user.Stats.LastLogDate)
	})
	t.Run("entry without profile", func(t *testing.T) {
		stranger := uuid.New()
		created, err := moods.CreateWithStats(ctx, &entity.MoodEntry{OwnerID: stranger, Mood: "neutral"}, stepStats("neutral", day))
		require.NoError(t, err)
		entries, err := moods.GetByOwner(ctx, stranger, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, created.ID, entries[0].ID)
	})
	t.Run("newest first", func(t *testing.T) {
		entries, err := moods.GetByOwner(ctx, uid, 2, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "great", entries[0].Mood)
		assert.Equal(t, "good", entries[1].Mood)
	})
	t.Run("push targets", func(t *testing.T) {
		require.NoError(t, users.SetPushToken(ctx, uid, "device-token"))
		targets, err := users.ListWithPushToken(ctx, 500)
		require.NoError(t, err)
		assert.Equal(t, []entity.PushTarget{{UserID: uid, Token: "device-token"}}, targets)

		require.NoError(t, users.SetReminderEnabled(ctx, uid, false))
		targets, err = users.ListWithPushToken(ctx, 500)
		require.NoError(t, err)
		assert.Empty(t, targets)

		// Re-registering keeps reminders off
		require.NoError(t, users.SetPushToken(ctx, uid, "device-token"))
		targets, err = users.ListWithPushToken(ctx, 500)
		require.NoError(t, err)
		assert.Empty(t, targets)
	})
	t.Run("delete user with data", func(t *testing.T) {
		_, err := chat.Create(ctx, &entity.ChatMessage{OwnerID: uid, Role: entity.ChatRoleUser, Text: "hi"})
		require.NoError(t, err)
		require.NoError(t, users.Delete(ctx, uid))
		_, err = users.FindByID(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		entries, err := moods.GetByOwner(ctx, uid, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
		history, err := chat.GetByOwner(ctx, uid, 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestCommunityIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupTestDB(t)
	users := repository.NewUsersRepo(cfg)
	community := repository.NewCommunityRepo(cfg)
	ctx := context.Background()

	uid, err := users.Create(ctx, &entity.User{DisplayName: "Guest", Language: "en", Anonymous: true})
	require.NoError(t, err)

	post, err := community.CreatePost(ctx, &entity.CommunityPost{OwnerID: uid, Text: "first week logging", Category: "motivation"})
	require.NoError(t, err)
	_, err = community.CreatePost(ctx, &entity.CommunityPost{OwnerID: uuid.New(), Text: "ghost", Category: "general"})
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

	for i := 0; i < 3; i++ {
		_, err = community.IncrementLikes(ctx, post.ID)
		require.NoError(t, err)
	}
	_, err = community.AddReply(ctx, &entity.Reply{PostID: post.ID, OwnerID: uid, Text: "keep going"})
	require.NoError(t, err)
	_, err = community.AddReply(ctx, &entity.Reply{PostID: uuid.New(), OwnerID: uid, Text: "lost"})
	assert.ErrorIs(t, err, errorvalues.ErrPostNotFound)

	got, err := community.GetPostByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Likes)
	assert.Equal(t, 1, got.ReplyCount)

	listed, err := community.ListPosts(ctx, "motivation", 10, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	listed, err = community.ListPosts(ctx, "anxiety", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, listed)

	require.NoError(t, community.DeletePost(ctx, post.ID))
	replies, err := community.ListReplies(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, replies)
}

func TestActivityIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	rdb := setupTestRedis(t)
	repo := repository.NewActivityRepoWithClient(rdb)
	ctx := context.Background()
	uid := uuid.New()

	flags, err := repo.GetFlags(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityFlags{}, flags)

	require.NoError(t, repo.SetFlag(ctx, uid, repository.FlagUsedBreathing))
	require.NoError(t, repo.AddJournalEntry(ctx, uid, entity.JournalEntry{Text: "first", CreatedAt: time.Now()}))
	require.NoError(t, repo.AddJournalEntry(ctx, uid, entity.JournalEntry{Text: "second", CreatedAt: time.Now()}))
	flags, err = repo.GetFlags(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityFlags{UsedBreathing: true, UsedJournal: true}, flags)

	journal, err := repo.ListJournal(ctx, uid, 10)
	require.NoError(t, err)
	require.Len(t, journal, 2)
	assert.Equal(t, "second", journal[0].Text)

	require.NoError(t, repo.AddAffirmation(ctx, uid, "I am enough"))
	require.NoError(t, repo.AddAffirmation(ctx, uid, "I am enough"))
	affirmations, err := repo.ListAffirmations(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"I am enough"}, affirmations)

	require.NoError(t, repo.DeleteAll(ctx, uid))
	flags, err = repo.GetFlags(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, entity.ActivityFlags{}, flags)
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("serene"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}

func setupTestRedis(t *testing.T) *redis.Client {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal("error running redis container: " + err.Error())
	}
	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		rdb.Close()
		container.Terminate(ctx)
	})
	return rdb
}
