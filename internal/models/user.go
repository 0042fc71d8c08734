package models

import "time"

type UserRole string

const (
	RoleStaff UserRole = "staff"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'staff'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	AssignedTasks []WorkTask `gorm:"foreignKey:AssignedToID" json:"-"`
	CreatedTasks  []WorkTask `gorm:"foreignKey:CreatedByID" json:"-"`
}
