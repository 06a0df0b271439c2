package model

import "time"

// Experience is a past or current position held by a faculty member.
type Experience struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FacultyID   uint      `json:"-" gorm:"not null;index"`
	Institution string    `json:"institution" gorm:"size:200;not null"`
	Role        string    `json:"role" gorm:"size:100;not null"`
	Duration    string    `json:"duration" gorm:"size:50;not null"` // free text, e.g. "2015-2019"
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Relations
	Faculty User `json:"-" gorm:"foreignKey:FacultyID"`

	FacultyUsername string `json:"faculty_username" gorm:"-"`
}

// ExperienceFields are the editable columns of an experience.
type ExperienceFields struct {
	Institution string
	Role        string
	Duration    string
	Description string
}

// Apply copies the editable fields onto e.
func (f ExperienceFields) Apply(e *Experience) {
	e.Institution = f.Institution
	e.Role = f.Role
	e.Duration = f.Duration
	e.Description = f.Description
}
