package model

import "time"

// Comment is a reply attached to a post.
type Comment struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Body     string    `json:"body" gorm:"type:text;not null"`
	Created  time.Time `json:"created" gorm:"<-:create;autoCreateTime;not null"`
	AuthorID uint      `json:"author_id" gorm:"<-:create;not null;index"`
	PostID   uint      `json:"post_id" gorm:"<-:create;not null;index"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID"`
	Post   Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comment" }
