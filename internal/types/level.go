package types

import (
	"gorm.io/datatypes"
)

// Level is a fixed five step difficulty enumeration seeded at startup.
type Level struct {
	ID                    int            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code                  string         `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name                  string         `gorm:"column:name;not null" json:"name"`
	Description           string         `gorm:"column:description;type:text;not null" json:"description"`
	TargetAudience        string         `gorm:"column:target_audience;not null" json:"target_audience"`
	Characteristics       datatypes.JSON `gorm:"type:json;column:characteristics" json:"characteristics"`
	EstimatedHoursPerWeek int            `gorm:"column:estimated_hours_per_week;not null" json:"estimated_hours_per_week"`
	SortOrder             int            `gorm:"column:sort_order;not null;index" json:"sort_order"`
}

func (Level) TableName() string { return "levels" }
