package entity

import (
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/enum"
)

// User represents an operator account. Each account belongs to one branch
// and carries exactly one role.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BranchID  uint      `gorm:"index" json:"branch_id"`
	RoleID    uint      `gorm:"index" json:"role_id"`
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:255" json:"full_name"`
	Email     string    `gorm:"size:255" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
	Role   Role   `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// Permissions returns the capability set granted by the user's role.
func (u *User) Permissions() enum.PermissionSet {
	return u.Role.Permissions.Set()
}

// Role names a permission set. Roles are looked up by name and never
// duplicated: the seeder updates an existing row instead of inserting.
type Role struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Name        string              `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Permissions enum.PermissionList `gorm:"type:text;serializer:json" json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}
