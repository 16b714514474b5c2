package types

const (
	SubTopicSourceCurated   = "curated"
	SubTopicSourceGenerated = "generated"
)

type SubTopic struct {
	ID          int        `gorm:"column:sub_topic_id;primaryKey;autoIncrement" json:"sub_topic_id"`
	MainTopicID int        `gorm:"column:main_topic_id;not null;index" json:"main_topic_id"`
	MainTopic   *MainTopic `gorm:"constraint:OnDelete:CASCADE;foreignKey:MainTopicID;references:ID" json:"main_topic,omitempty"`
	Name        string     `gorm:"column:name;not null" json:"name"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	SourceType  string     `gorm:"column:source_type;not null" json:"source_type"` // curated | generated
}

func (SubTopic) TableName() string { return "sub_topics" }
