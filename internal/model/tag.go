package model

import "time"

type Tag struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	Value     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_tag_value" json:"value"`
	CreatedAt time.Time `json:"-"`
}

func (Tag) TableName() string {
	return "tags"
}
