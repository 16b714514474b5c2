package types

import (
	"time"

	"gorm.io/datatypes"
)

// GeneratedSubTopic is one sub topic produced under a GenerationRequest.
// Rows are soft deleted through IsActive so the generation history stays
// intact.
type GeneratedSubTopic struct {
	ID                       int                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title                    string             `gorm:"column:title;not null;index" json:"title"`
	Description              string             `gorm:"column:description;type:text" json:"description"`
	MainTopicID              int                `gorm:"column:main_topic_id;not null;index" json:"main_topic_id"`
	GenerationRequestID      int                `gorm:"column:generation_request_id;not null;index" json:"generation_request_id"`
	GenerationRequest        *GenerationRequest `gorm:"constraint:OnDelete:CASCADE;foreignKey:GenerationRequestID;references:ID" json:"generation_request,omitempty"`
	Keywords                 datatypes.JSON     `gorm:"type:json;column:keywords" json:"keywords"`
	LearningObjectives       datatypes.JSON     `gorm:"type:json;column:learning_objectives" json:"learning_objectives"`
	Prerequisites            datatypes.JSON     `gorm:"type:json;column:prerequisites" json:"prerequisites"`
	EstimatedDurationMinutes int                `gorm:"column:estimated_duration_minutes" json:"estimated_duration_minutes"`
	DifficultyScore          int                `gorm:"column:difficulty_score" json:"difficulty_score"` // 1-10
	IsActive                 bool               `gorm:"column:is_active;not null;default:true" json:"is_active"`
	QualityScore             *float64           `gorm:"column:quality_score" json:"quality_score,omitempty"`
	CreatedAt                time.Time          `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt                time.Time          `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (GeneratedSubTopic) TableName() string { return "generated_sub_topics" }
