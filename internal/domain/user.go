package domain

import "time"

// UserProfile is the account record. Email is fixed at registration; Name,
// Phone and AvatarUrl are the client-editable fields.
type UserProfile struct {
	ID          int64     `json:"id,string" form:"id"`
	Name        string    `json:"name" form:"name"`
	Email       string    `gorm:"uniqueIndex;size:256" json:"email" form:"email"`
	Phone       string    `gorm:"size:32" json:"phone" form:"phone"`
	AvatarUrl   string    `gorm:"size:1024" json:"avatar_url" form:"avatar_url"`
	Password    string    `json:"-" form:"-"`
	LastUpdated time.Time `json:"last_updated"`
	LastLogin   time.Time `json:"last_login"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// PasswordReset holds a pending password-reset token dispatched by mail.
type PasswordReset struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `gorm:"index" json:"user_id,string"`
	Token     string    `gorm:"uniqueIndex;size:64" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}
