package model

import (
	"strings"
	"time"
)

// Role is the authorization role a user registers with.
type Role string

const (
	RoleFaculty   Role = "faculty"
	RoleEvaluator Role = "evaluator"
	RoleStudent   Role = "student"
)

// ParseRole normalizes a role name. "dean" is accepted as an alias of evaluator.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "faculty":
		return RoleFaculty, true
	case "evaluator", "dean":
		return RoleEvaluator, true
	case "student":
		return RoleStudent, true
	default:
		return "", false
	}
}

// User represents an authenticated user in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"size:200;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:100;not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Publications []Publication `json:"-" gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE"`
	Experiences  []Experience  `json:"-" gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE"`
}

// FacultySummary is the directory entry shown when picking a faculty member.
type FacultySummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
