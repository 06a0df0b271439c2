package model

import "time"

// Publication is a journal publication owned by a faculty member.
type Publication struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FacultyID uint      `json:"-" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	Journal   string    `json:"journal" gorm:"size:200;not null"`
	Year      int       `json:"year" gorm:"not null"`
	DOI       string    `json:"doi" gorm:"size:100"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	// Relations
	Faculty User `json:"-" gorm:"foreignKey:FacultyID"`

	FacultyUsername string `json:"faculty_username" gorm:"-"`
}

// PublicationFields are the editable columns of a publication.
type PublicationFields struct {
	Title   string
	Journal string
	Year    int
	DOI     string
}

// Apply copies the editable fields onto p.
func (f PublicationFields) Apply(p *Publication) {
	p.Title = f.Title
	p.Journal = f.Journal
	p.Year = f.Year
	p.DOI = f.DOI
}
