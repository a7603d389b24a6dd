package types

import (
	"time"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index" json:"postId"`
	Post      *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"-"`
	UserName  string    `gorm:"column:user_name;not null" json:"userName"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Comment) TableName() string { return "comments" }
