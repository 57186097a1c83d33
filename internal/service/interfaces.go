package service

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/limbo/serene/internal/scheduler"
	"github.com/limbo/serene/internal/wellness"
	"github.com/limbo/serene/pkg/entity"
	"github.com/limbo/serene/pkg/push"
)

type RegisterRequest struct {
	Name        string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password    string `validate:"required,min=8,max=72"`
	DisplayName string `validate:"max=100"`
	Language    string `validate:"omitempty,len=2"`
}

type UpdateProfileRequest struct {
	DisplayName string  `validate:"max=100"`
	Email       *string `validate:"omitempty,email,max=254"`
	Language    string  `validate:"omitempty,len=2"`
}

type RecordMoodRequest struct {
	Mood string `validate:"required,mood"`
	Note string `validate:"max=300"`
	// IANA zone of the device, configured default when empty
	Timezone string
}

type ChatRequest struct {
	Text string `validate:"required,max=1000"`
}

type CreatePostRequest struct {
	Text     string `validate:"required,max=400"`
	Category string `validate:"required,post_category"`
}

type ReplyRequest struct {
	Text string `validate:"required,max=400"`
}

type JournalRequest struct {
	Text string `validate:"required,max=5000"`
}

type AffirmationRequest struct {
	Text string `validate:"required,max=200"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type StatsView struct {
	entity.ProfileStats
	UsedBreathing bool `json:"used_breathing"`
	UsedJournal   bool `json:"used_journal"`
}

type BadgesView struct {
	Badges []wellness.BadgeStatus `json:"badges"`
	Earned int                    `json:"earned"`
	Total  int                    `json:"total"`
}

type ChatReply struct {
	Reply entity.ChatMessage `json:"reply"`
	// Set from the user's own input and recent history, independently of the reply
	ShowResources bool                `json:"show_resources"`
	Crisis        bool                `json:"crisis"`
	Helplines     []wellness.Helpline `json:"helplines,omitempty"`
}

type PostView struct {
	Post          entity.CommunityPost `json:"post"`
	ShowResources bool                 `json:"show_resources"`
}

type ReplyView struct {
	Reply         entity.Reply `json:"reply"`
	ShowResources bool         `json:"show_resources"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	// Creates user without credentials
	AnonymousSignIn(ctx context.Context, language string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	CompleteOnboarding(ctx context.Context, id uuid.UUID) error
	RegisterPushToken(ctx context.Context, id uuid.UUID, token string) error
	SetReminders(ctx context.Context, id uuid.UUID, enabled bool) error
	// Drops the device push token
	Logout(ctx context.Context, id uuid.UUID) error
	// Anonymous accounts are deleted without password
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type MoodServiceI interface {
	// Saves entry and updates owner's streak and counters atomically
	RecordMood(ctx context.Context, ownerID uuid.UUID, req *RecordMoodRequest) (*entity.MoodEntry, error)
	ListMoods(ctx context.Context, ownerID uuid.UUID, pagination PaginationOpts) ([]entity.MoodEntry, error)
	// Owner only. Counters are left as they are
	DeleteMood(ctx context.Context, id, ownerID uuid.UUID) error
	GetTrend(ctx context.Context, ownerID uuid.UUID) (*wellness.Trend, error)
	GetStats(ctx context.Context, ownerID uuid.UUID) (*StatsView, error)
	GetBadges(ctx context.Context, ownerID uuid.UUID) (*BadgesView, error)
}

// MoodCreatedHook runs after a mood entry is committed
type MoodCreatedHook interface {
	OnMoodCreated(ctx context.Context, entry entity.MoodEntry) error
}

type NotificationServiceI interface {
	MoodCreatedHook
	// Sends the generic reminder to every reachable user in one batch
	SendDailyReminders(ctx context.Context) (push.BatchResult, error)
}

type ChatServiceI interface {
	SendMessage(ctx context.Context, ownerID uuid.UUID, req *ChatRequest) (*ChatReply, error)
	// Returns messages oldest first
	History(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.ChatMessage, error)
	ClearHistory(ctx context.Context, ownerID uuid.UUID) error
}

type CommunityServiceI interface {
	CreatePost(ctx context.Context, ownerID uuid.UUID, req *CreatePostRequest) (*PostView, error)
	ListPosts(ctx context.Context, category string, pagination PaginationOpts) ([]entity.CommunityPost, error)
	LikePost(ctx context.Context, id uuid.UUID) (int, error)
	AddReply(ctx context.Context, postID, ownerID uuid.UUID, req *ReplyRequest) (*ReplyView, error)
	ListReplies(ctx context.Context, postID uuid.UUID) ([]entity.Reply, error)
	DeletePost(ctx context.Context, id, ownerID uuid.UUID) error
}

type ActivityServiceI interface {
	GetFlags(ctx context.Context, uid uuid.UUID) (entity.ActivityFlags, error)
	MarkBreathingUsed(ctx context.Context, uid uuid.UUID) error
	MarkOnboardingSeen(ctx context.Context, uid uuid.UUID) error
	SaveJournalEntry(ctx context.Context, uid uuid.UUID, req *JournalRequest) (*entity.JournalEntry, error)
	ListJournal(ctx context.Context, uid uuid.UUID, limit int) ([]entity.JournalEntry, error)
	SaveAffirmation(ctx context.Context, uid uuid.UUID, req *AffirmationRequest) error
	ListAffirmations(ctx context.Context, uid uuid.UUID) ([]string, error)
}

type ExportServiceI interface {
	// Writes date,time,mood,score,note rows newest first
	ExportCSV(ctx context.Context, ownerID uuid.UUID, timezone string, w io.Writer) error
	// Writes print-ready HTML report
	ExportHTML(ctx context.Context, ownerID uuid.UUID, timezone string, w io.Writer) error
}

type JobsServiceI interface {
	List() []scheduler.ListItem
	Run(ctx context.Context, name string) error
}
