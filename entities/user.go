package entities

type User struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Email       string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name        string `gorm:"type:varchar(255)" json:"name"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`

	Timestamp
}
