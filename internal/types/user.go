package types

type User struct {
	ID       string `gorm:"column:user_id;primaryKey" json:"user_id"`
	Nickname string `gorm:"column:nickname;not null" json:"nickname"`
	Email    string `gorm:"column:email;uniqueIndex" json:"email"`
}

func (User) TableName() string { return "users" }
