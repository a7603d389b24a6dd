package types

import (
	"time"
)

// Like records that a user has liked a post. Identity is the
// (post, user) pair; there is no surrogate id.
type Like struct {
	PostID    int64     `gorm:"column:post_id;primaryKey;autoIncrement:false" json:"postId"`
	Post      *Post     `gorm:"constraint:OnDelete:CASCADE;foreignKey:PostID;references:ID" json:"-"`
	UserName  string    `gorm:"column:user_name;primaryKey" json:"userName"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (Like) TableName() string { return "likes" }
