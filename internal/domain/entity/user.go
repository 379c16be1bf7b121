package entity

import (
	"time"
)

// Role is the single privilege level of a user. MASTER outranks ADMIN, which
// outranks USER.
type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleMaster Role = "MASTER"
)

// ValidRole reports whether the value belongs to the current role generation.
func ValidRole(role Role) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleMaster:
		return true
	}
	return false
}

// CanGrant reports whether a caller with this role may create a user with the
// target role: ADMIN may grant up to ADMIN, MASTER may grant anything.
func (r Role) CanGrant(target Role) bool {
	switch r {
	case RoleMaster:
		return true
	case RoleAdmin:
		return target == RoleUser || target == RoleAdmin
	}
	return false
}

// User is the authentication record. A user may optionally correspond to a
// patient or doctor row; that linkage lives on those tables.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'USER';index" json:"role"`
	Active    *bool     `gorm:"not null;default:true;index" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
