package types

type LearningPath struct {
	ID          string    `gorm:"column:path_id;primaryKey" json:"path_id"`
	SubTopicID  int       `gorm:"column:sub_topic_id;not null;index" json:"sub_topic_id"`
	SubTopic    *SubTopic `gorm:"constraint:OnDelete:CASCADE;foreignKey:SubTopicID;references:ID" json:"sub_topic,omitempty"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsDefault   bool      `gorm:"column:is_default" json:"is_default"`
}

func (LearningPath) TableName() string { return "learning_paths" }
