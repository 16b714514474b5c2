package types

type MainTopic struct {
	ID          int    `gorm:"column:main_topic_id;primaryKey;autoIncrement" json:"main_topic_id"`
	Name        string `gorm:"column:name;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
}

func (MainTopic) TableName() string { return "main_topics" }
