package types

type CurriculumItem struct {
	ID         string        `gorm:"column:curriculum_item_id;primaryKey" json:"curriculum_item_id"`
	SubTopicID int           `gorm:"column:sub_topic_id;not null;index" json:"sub_topic_id"`
	PathID     string        `gorm:"column:path_id;not null;index:idx_path_sort_order,unique" json:"path_id"`
	Path       *LearningPath `gorm:"constraint:OnDelete:CASCADE;foreignKey:PathID;references:ID" json:"path,omitempty"`
	Title      string        `gorm:"column:title;not null" json:"title"`
	SortOrder  int           `gorm:"column:sort_order;not null;index:idx_path_sort_order,unique" json:"sort_order"`
}

func (CurriculumItem) TableName() string { return "curriculum_items" }
