package model

import "time"

// User is a credential record. RefreshToken holds the single currently
// valid refresh token for the user; overwriting it invalidates the
// previous one.
type User struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	RefreshToken   *string   `json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Task is a to-do item owned by exactly one user. UserID never changes
// after creation.
type Task struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UserID       int64     `gorm:"index;not null" json:"user_id"`
	DatetimeToDo time.Time `gorm:"not null" json:"datetime_to_do"`
	TaskInfo     string    `gorm:"not null" json:"task_info"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	AccessTTL    time.Duration `json:"-"`
	RefreshTTL   time.Duration `json:"-"`
}
