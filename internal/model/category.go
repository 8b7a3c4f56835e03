package model

import "time"

type Category struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	Value     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_value" json:"value"`
	CreatedAt time.Time `json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
