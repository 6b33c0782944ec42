package models

// User represents a researcher who owns or collaborates on projects
type User struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
