package types

import (
	"time"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName  string    `gorm:"column:user_name;not null" json:"userName"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	// Derived from the likes/comments relations on every read, never stored.
	LikeCount    int64 `gorm:"-" json:"likeCount"`
	CommentCount int64 `gorm:"-" json:"commentCount"`
}

func (Post) TableName() string { return "posts" }
