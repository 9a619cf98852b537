package entity

import (
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/enum"
)

// AttendanceLog is one clock in/out event for a user.
type AttendanceLog struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	UserID    uint                `gorm:"index;not null" json:"user_id"`
	Type      enum.AttendanceType `gorm:"size:10;not null" json:"type"`
	Timestamp time.Time           `gorm:"autoCreateTime" json:"timestamp"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the AttendanceLog model
func (AttendanceLog) TableName() string {
	return "attendance_logs"
}

// AttendanceLogRow is the list projection joined with the user's name and
// home branch.
type AttendanceLogRow struct {
	AttendanceLog
	FullName   string `json:"full_name"`
	BranchName string `json:"branch_name"`
}
