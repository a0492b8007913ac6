package entity

import (
	"time"

	"github.com/google/uuid"
)

type DoseEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	TakenAt   time.Time `json:"taken_at"`
	CreatedAt time.Time `json:"created_at"`
}

type DoseStatus string

const (
	DoseTaken DoseStatus = "taken"
	// Reserved for reminder scheduling, the timeline never emits it.
	DoseReminder DoseStatus = "reminder"
	DoseMissed   DoseStatus = "missed"
)

type DayStatus struct {
	Date   time.Time  `json:"date"`
	Status DoseStatus `json:"status"`
}

type AdherenceSnapshot struct {
	AsOf              time.Time   `json:"as_of"`
	CurrentStreak     int         `json:"current_streak"`
	TakenToday        bool        `json:"taken_today"`
	WeeklyTimeline    []DayStatus `json:"weekly_timeline"`
	MonthlyPercentage int         `json:"monthly_percentage"`
}

type Mood string

const (
	MoodHopeful   Mood = "hopeful"
	MoodGrateful  Mood = "grateful"
	MoodAngry     Mood = "angry"
	MoodTired     Mood = "tired"
	MoodHealing   Mood = "healing"
	MoodResilient Mood = "resilient"
)

type Tag string

const (
	TagNone            Tag = "none"
	TagTreatmentWins   Tag = "treatment_wins"
	TagFaithAndHealing Tag = "faith_and_healing"
	TagJustVenting     Tag = "just_venting"
)

type Alias struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Alias     string    `json:"alias"`
	CreatedAt time.Time `json:"created_at"`
}

type ThreadPost struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"uid"`
	AliasID          uuid.UUID `json:"alias_id"`
	Alias            string    `json:"alias,omitempty"`
	Content          string    `json:"content"`
	Mood             Mood      `json:"mood"`
	Tag              Tag       `json:"tag"`
	WarmRepliesCount int       `json:"warm_replies_count"`
	IsFlagged        bool      `json:"-"`
	IsApproved       bool      `json:"-"`
	IsUnderReview    bool      `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Visible reports whether the post may appear in the public feed.
func (p *ThreadPost) Visible() bool {
	return p.IsApproved && !p.IsUnderReview
}

type ThreadReply struct {
	ID            uuid.UUID `json:"id"`
	ThreadID      uuid.UUID `json:"thread_id"`
	UserID        uuid.UUID `json:"uid"`
	AliasID       uuid.UUID `json:"alias_id"`
	Alias         string    `json:"alias,omitempty"`
	Content       string    `json:"content"`
	Mood          Mood      `json:"mood"`
	IsFlagged     bool      `json:"-"`
	IsUnderReview bool      `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

type FlagStatus string

const FlagPending FlagStatus = "pending"

// ModerationFlag is a user report. Exactly one of ThreadID and ReplyID is set.
type ModerationFlag struct {
	ID             uuid.UUID  `json:"id"`
	ThreadID       *uuid.UUID `json:"thread_id,omitempty"`
	ReplyID        *uuid.UUID `json:"reply_id,omitempty"`
	ReporterUserID uuid.UUID  `json:"reporter_uid"`
	Reason         string     `json:"reason"`
	Status         FlagStatus `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}
