package types

import (
	"time"

	"gorm.io/datatypes"
)

// CuratedSubTopic is an editorially prepared sub topic, the hand built
// counterpart of GeneratedSubTopic.
type CuratedSubTopic struct {
	ID                       int            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title                    string         `gorm:"column:title;not null;index" json:"title"`
	Description              string         `gorm:"column:description;type:text" json:"description"`
	MainTopicID              int            `gorm:"column:main_topic_id;not null;index" json:"main_topic_id"`
	LevelID                  int            `gorm:"column:level_id;not null;index" json:"level_id"`
	Level                    *Level         `gorm:"foreignKey:LevelID;references:ID" json:"level,omitempty"`
	Keywords                 datatypes.JSON `gorm:"type:json;column:keywords" json:"keywords"`
	LearningObjectives       datatypes.JSON `gorm:"type:json;column:learning_objectives" json:"learning_objectives"`
	Prerequisites            datatypes.JSON `gorm:"type:json;column:prerequisites" json:"prerequisites"`
	EstimatedDurationMinutes int            `gorm:"column:estimated_duration_minutes" json:"estimated_duration_minutes"`
	DifficultyScore          int            `gorm:"column:difficulty_score" json:"difficulty_score"`
	PopularityScore          int            `gorm:"column:popularity_score;not null;default:0" json:"popularity_score"`
	IsActive                 bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt                time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt                time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CuratedSubTopic) TableName() string { return "curated_sub_topics" }
