package types

import (
	"time"
)

// ArticleRead marks one article as completed by one user. The composite
// primary key makes repeated reads an upsert, never a second row.
type ArticleRead struct {
	UserID    string    `gorm:"column:user_id;primaryKey" json:"user_id"`
	ArticleID string    `gorm:"column:article_id;primaryKey" json:"article_id"`
	ReadAt    time.Time `gorm:"column:read_at;not null;index:idx_user_read_at" json:"read_at"`
}

func (ArticleRead) TableName() string { return "user_article_reads" }
