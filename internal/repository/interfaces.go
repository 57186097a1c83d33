package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/limbo/serene/pkg/entity"
)

// Computes the owner's next counters from the current ones
type StatsUpdateFunc func(prev entity.ProfileStats) entity.ProfileStats

type UsersRepositoryI interface {
	// Creates new user in database, returns its id. Name may be nil for anonymous users
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates display name, email and language
	UpdateProfile(ctx context.Context, user *entity.User) error
	SetOnboarded(ctx context.Context, uid uuid.UUID) error
	// Stores push token. Enables reminders on the first registration only
	SetPushToken(ctx context.Context, uid uuid.UUID, token string) error
	ClearPushToken(ctx context.Context, uid uuid.UUID) error
	// Switches reminders. Disabling clears the push token
	SetReminderEnabled(ctx context.Context, uid uuid.UUID, enabled bool) error
	// Lists users with a push token and reminders not disabled
	ListWithPushToken(ctx context.Context, limit int) ([]entity.PushTarget, error)
	// Deletes user with their mood log and chat history
	Delete(ctx context.Context, uid uuid.UUID) error
}

type MoodLogsRepositoryI interface {
	// Inserts entry and updates owner's counters with update in one transaction
	CreateWithStats(ctx context.Context, entry *entity.MoodEntry, update StatsUpdateFunc) (*entity.MoodEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MoodEntry, error)
	// Lists owner's entries newest first
	GetByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]entity.MoodEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChatRepositoryI interface {
	Create(ctx context.Context, msg *entity.ChatMessage) (*entity.ChatMessage, error)
	// Lists owner's messages newest first
	GetByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.ChatMessage, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}

type CommunityRepositoryI interface {
	CreatePost(ctx context.Context, post *entity.CommunityPost) (*entity.CommunityPost, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*entity.CommunityPost, error)
	// Lists posts newest first, empty category means any
	ListPosts(ctx context.Context, category string, limit, offset int) ([]entity.CommunityPost, error)
	// Atomically increments likes, returns the new value
	IncrementLikes(ctx context.Context, id uuid.UUID) (int, error)
	// Inserts reply and increments the post's reply counter
	AddReply(ctx context.Context, reply *entity.Reply) (*entity.Reply, error)
	ListReplies(ctx context.Context, postID uuid.UUID) ([]entity.Reply, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

type ActivityRepositoryI interface {
	SetFlag(ctx context.Context, uid uuid.UUID, flag string) error
	GetFlags(ctx context.Context, uid uuid.UUID) (entity.ActivityFlags, error)
	AddJournalEntry(ctx context.Context, uid uuid.UUID, entry entity.JournalEntry) error
	// Lists journal newest first
	ListJournal(ctx context.Context, uid uuid.UUID, limit int) ([]entity.JournalEntry, error)
	AddAffirmation(ctx context.Context, uid uuid.UUID, text string) error
	ListAffirmations(ctx context.Context, uid uuid.UUID) ([]string, error)
	DeleteAll(ctx context.Context, uid uuid.UUID) error
}
