package model

import (
	"time"
)

type Post struct {
	ID                  uint64     `gorm:"primaryKey" json:"id"`
	AuthorID            uint64     `gorm:"not null;index:idx_author_id" json:"authorId"`
	CategoryID          uint64     `gorm:"not null;index:idx_category_id" json:"categoryId"`
	Title               string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug                string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_slug" json:"slug"`
	Description         string     `gorm:"type:varchar(500)" json:"description"`
	Content             string     `gorm:"type:longtext;not null" json:"content"`
	FeaturedImage       *string    `gorm:"type:varchar(500)" json:"featuredImage"`
	FeaturedImageObject *string    `gorm:"type:varchar(255)" json:"-"`
	MinRead             int        `gorm:"not null;default:1" json:"minRead"`
	Views               int64      `gorm:"not null;default:0" json:"views"`
	Published           bool       `gorm:"type:tinyint(1);not null;default:0" json:"published"`
	PublishedAt         *time.Time `json:"publishedAt"`
	MetaTitle           string     `gorm:"type:varchar(255)" json:"metaTitle"`
	MetaDescription     string     `gorm:"type:varchar(500)" json:"metaDescription"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorID;references:ID" json:"author"`
	Category Category  `gorm:"foreignKey:CategoryID;references:ID" json:"category"`
	Tags     []PostTag `gorm:"foreignKey:PostID;references:ID" json:"tags,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID;references:ID" json:"likes,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID" json:"comments,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}
