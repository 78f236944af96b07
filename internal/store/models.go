package store

import "time"

type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email    *string   `gorm:"size:255" json:"email"`
	JoinDate time.Time `gorm:"not null" json:"join_date"`
	TotalXP  int       `gorm:"column:total_xp;not null;default:0" json:"total_xp"`
}

func (User) TableName() string { return "users" }

// Progress is one logged study session.
type Progress struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	User            string    `gorm:"column:user;size:64;not null;index" json:"user"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Reflection      *string   `json:"reflection"`
	XPGained        int       `gorm:"column:xp_gained;not null;default:0" json:"xp_gained"`
}

func (Progress) TableName() string { return "progress" }

type Quest struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:128;not null" json:"name"`
	Description string     `gorm:"not null" json:"description"`
	Difficulty  string     `gorm:"size:16;not null" json:"difficulty"`
	XPReward    int        `gorm:"column:xp_reward;not null" json:"xp_reward"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	AssignedTo  *string    `gorm:"size:64;index" json:"assigned_to"`
	IsDaily     bool       `gorm:"not null;default:false" json:"is_daily"`
	Deadline    *time.Time `json:"deadline"`
}

func (Quest) TableName() string { return "quests" }

type Level struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	User         string `gorm:"column:user;size:64;not null;uniqueIndex" json:"user"`
	CurrentLevel int    `gorm:"not null;default:1" json:"current_level"`
	TotalXP      int    `gorm:"column:total_xp;not null;default:0" json:"total_xp"`
	XPToNext     int    `gorm:"column:xp_to_next;not null;default:100" json:"xp_to_next"`
}

func (Level) TableName() string { return "levels" }

type Avatar struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	User       string  `gorm:"column:user;size:64;not null;uniqueIndex" json:"user"`
	AvatarName *string `json:"avatar_name"`
	Hairstyle  *string `json:"hairstyle"`
	Outfit     *string `json:"outfit"`
	Accessory  *string `json:"accessory"`
	Theme      string  `gorm:"size:32;not null;default:default" json:"theme"`
}

func (Avatar) TableName() string { return "avatars" }

type Badge struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:128;not null;uniqueIndex" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	XPRequired  int     `gorm:"column:xp_required;not null" json:"xp_required"`
	IconURL     *string `gorm:"column:icon_url" json:"icon_url"`
}

func (Badge) TableName() string { return "badges" }

// TextAIReflection is a written reflection together with the mentor's answer.
type TextAIReflection struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	User           string    `gorm:"column:user;size:64;not null;index" json:"user"`
	Date           time.Time `gorm:"not null" json:"date"`
	ReflectionText string    `gorm:"not null" json:"reflection_text"`
	AIFeedback     string    `gorm:"column:ai_feedback" json:"ai_feedback"`
	Summary        string    `json:"summary"`
	XPReward       int       `gorm:"column:xp_reward;not null;default:0" json:"xp_reward"`
}

func (TextAIReflection) TableName() string { return "text_ai_reflections" }

// BossBattle is the persisted outcome of a finished battle.
type BossBattle struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	User           string    `gorm:"column:user;size:64;not null;index" json:"user"`
	Date           time.Time `gorm:"not null" json:"date"`
	Score          int       `gorm:"not null;default:0" json:"score"`
	TotalQuestions int       `gorm:"not null;default:5" json:"total_questions"`
	XPReward       int       `gorm:"column:xp_reward;not null;default:0" json:"xp_reward"`
	Difficulty     string    `gorm:"size:16;not null;default:medium" json:"difficulty"`
	Status         string    `gorm:"size:16" json:"status"`
	Completed      bool      `gorm:"not null;default:false" json:"completed"`
}

func (BossBattle) TableName() string { return "boss_battles" }

type Friend struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	User           string    `gorm:"column:user;size:64;not null;uniqueIndex:idx_friend_pair" json:"user"`
	FriendUsername string    `gorm:"size:64;not null;uniqueIndex:idx_friend_pair" json:"friend_username"`
	Since          time.Time `gorm:"not null" json:"since"`
	Status         string    `gorm:"size:16;not null;default:accepted" json:"status"`
}

func (Friend) TableName() string { return "friends" }

// Leaderboard is the per-user ranking snapshot, refreshed on every XP credit.
type Leaderboard struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	User          string    `gorm:"column:user;size:64;not null;uniqueIndex" json:"user"`
	TotalXP       int       `gorm:"column:total_xp;not null;default:0;index" json:"total_xp"`
	CurrentStreak int       `gorm:"not null;default:0" json:"current_streak"`
	LastUpdated   time.Time `gorm:"not null" json:"last_updated"`
}

func (Leaderboard) TableName() string { return "leaderboards" }

func allModels() []any {
	return []any{
		&User{}, &Progress{}, &Quest{}, &Level{}, &Avatar{}, &Badge{},
		&TextAIReflection{}, &BossBattle{}, &Friend{}, &Leaderboard{},
	}
}
