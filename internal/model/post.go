package model

import "time"

// Post is a blog entry. Created and AuthorID are written once on insert.
type Post struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title" gorm:"size:255;not null"`
	Body     string    `json:"body" gorm:"type:text"`
	Created  time.Time `json:"created" gorm:"<-:create;autoCreateTime;not null;index"`
	AuthorID uint      `json:"author_id" gorm:"<-:create;not null;index"`

	// Relations
	Author User `json:"-" gorm:"foreignKey:AuthorID"`
}

func (Post) TableName() string { return "post" }
