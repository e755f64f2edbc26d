package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStaff     = "staff"
	RoleSuperuser = "superuser"
)

// User is a staff account for the admin surface. Customers have no accounts;
// orders carry their contact details directly.
type User struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Email     string `gorm:"size:100;not null;uniqueIndex"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:20;default:'staff';not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = RoleStaff
	}
	return
}

func (u *User) IsSuperuser() bool {
	return u.Role == RoleSuperuser
}
