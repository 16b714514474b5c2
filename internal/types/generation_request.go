package types

import (
	"time"

	"gorm.io/datatypes"
)

const (
	GenerationStatusPending    = "pending"
	GenerationStatusProcessing = "processing"
	GenerationStatusCompleted  = "completed"
	GenerationStatusFailed     = "failed"
)

// GenerationRequest is the audit record of one attempt to obtain LLM
// generated sub topics. It reaches exactly one terminal state; a retry is
// a new request with its own cost.
type GenerationRequest struct {
	ID              int            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID          string         `gorm:"column:user_id;not null;index" json:"user_id"`
	MainTopicID     int            `gorm:"column:main_topic_id;not null;index" json:"main_topic_id"`
	Personalization datatypes.JSON `gorm:"type:json;column:personalization_data" json:"personalization_data"`
	Parameters      datatypes.JSON `gorm:"type:json;column:generation_parameters" json:"generation_parameters"`
	Status          string         `gorm:"column:status;not null;default:'pending'" json:"status"` // pending | processing | completed | failed
	TokensUsed      int            `gorm:"column:tokens_used;not null;default:0" json:"tokens_used"`
	CostUSD         float64        `gorm:"column:cost_usd;not null;default:0" json:"cost_usd"`
	ModelUsed       string         `gorm:"column:model_used" json:"model_used"`
	TotalGenerated  int            `gorm:"column:total_generated;not null;default:0" json:"total_generated"`
	QualityScore    *float64       `gorm:"column:quality_score" json:"quality_score,omitempty"`
	ErrorMessage    string         `gorm:"column:error_message;type:text" json:"error_message,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	CompletedAt     *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

func (GenerationRequest) TableName() string { return "subtopic_generation_requests" }
