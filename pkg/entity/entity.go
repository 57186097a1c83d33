package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         *string
	PasswordHash *string
	DisplayName  string
	Email        *string
	Language     string
	Anonymous    bool
	Onboarded    bool
	// Nil until the first push token registration
	ReminderEnabled *bool
	PushToken       *string
	CreatedAt       time.Time
	Stats           ProfileStats
}

// Rolling counters kept on the user row and updated on every new mood entry
type ProfileStats struct {
	Streak            int    `json:"streak"`
	LastLogDate       string `json:"last_log_date"`
	LastMood          string `json:"last_mood"`
	TotalLogs         int    `json:"total_logs"`
	PositiveDays      int    `json:"positive_days"`
	LoggedAfterBadDay bool   `json:"logged_after_bad_day"`
}

// Public view of user
type Profile struct {
	ID              uuid.UUID    `json:"uid"`
	Name            string       `json:"name,omitempty"`
	DisplayName     string       `json:"display_name"`
	Email           *string      `json:"email"`
	Language        string       `json:"language"`
	Anonymous       bool         `json:"anonymous"`
	Onboarded       bool         `json:"onboarded"`
	ReminderEnabled bool         `json:"reminder_enabled"`
	HasPushToken    bool         `json:"has_push_token"`
	Stats           ProfileStats `json:"stats"`
}

func (u *User) Profile() Profile {
	p := Profile{
		ID:           u.ID,
		DisplayName:  u.DisplayName,
		Email:        u.Email,
		Language:     u.Language,
		Anonymous:    u.Anonymous,
		Onboarded:    u.Onboarded,
		HasPushToken: u.PushToken != nil,
		Stats:        u.Stats,
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.ReminderEnabled != nil {
		p.ReminderEnabled = *u.ReminderEnabled
	}
	return p
}

type MoodEntry struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"uid"`
	Mood      string    `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleCompanion ChatRole = "companion"
)

type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"uid"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CommunityPost struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"uid"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	Likes      int       `json:"likes"`
	ReplyCount int       `json:"reply_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type Reply struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	OwnerID   uuid.UUID `json:"uid"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type JournalEntry struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Non-critical per-user flags kept outside of the database
type ActivityFlags struct {
	OnboardingSeen bool `json:"onboarding_seen"`
	UsedBreathing  bool `json:"used_breathing"`
	UsedJournal    bool `json:"used_journal"`
}

type PushTarget struct {
	UserID uuid.UUID
	Token  string
}
