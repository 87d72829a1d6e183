package entities

type Tag struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"type:varchar(255);not null" json:"name"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
