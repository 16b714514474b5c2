package types

type Article struct {
	ID               string          `gorm:"column:article_id;primaryKey" json:"article_id"`
	CurriculumItemID string          `gorm:"column:curriculum_item_id;not null;index:idx_curriculum_item_level,unique" json:"curriculum_item_id"`
	CurriculumItem   *CurriculumItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:CurriculumItemID;references:ID" json:"curriculum_item,omitempty"`
	SubTopicID       int             `gorm:"column:sub_topic_id;not null;index:idx_sub_topic_level" json:"sub_topic_id"`
	LevelCode        string          `gorm:"column:level_code;not null;index:idx_curriculum_item_level,unique;index:idx_sub_topic_level" json:"level_code"`
	Title            string          `gorm:"column:title;not null" json:"title"`
	Body             string          `gorm:"column:body;type:text;not null" json:"body"`
}

func (Article) TableName() string { return "articles" }
