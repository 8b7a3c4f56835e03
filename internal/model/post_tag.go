package model

type PostTag struct {
	PostID uint64 `gorm:"primaryKey" json:"-"`
	TagID  uint64 `gorm:"primaryKey;index:idx_tag_id" json:"-"`

	Tag Tag `gorm:"foreignKey:TagID;references:ID" json:"tag"`
}

func (PostTag) TableName() string {
	return "post_tags"
}
