package model

import (
	"fmt"
	"time"
)

// AuthorKind discriminates who wrote a feedback row.
type AuthorKind string

const (
	AuthorStudent   AuthorKind = "student"
	AuthorEvaluator AuthorKind = "evaluator"
)

// Author identifies the user who submitted feedback. Exactly one kind is
// always set, so a row can never have both or neither author.
type Author struct {
	Kind   AuthorKind `json:"kind" gorm:"column:author_kind;type:varchar(20);not null;index:idx_feedback_author"`
	UserID uint       `json:"-" gorm:"column:author_id;not null;index:idx_feedback_author"`
}

// StudentAuthor tags feedback as written by a student.
func StudentAuthor(userID uint) Author {
	return Author{Kind: AuthorStudent, UserID: userID}
}

// EvaluatorAuthor tags feedback as written by an evaluator.
func EvaluatorAuthor(userID uint) Author {
	return Author{Kind: AuthorEvaluator, UserID: userID}
}

// AuthorFor maps a session role onto the author kind it writes feedback as.
func AuthorFor(role Role, userID uint) (Author, bool) {
	switch role {
	case RoleStudent:
		return StudentAuthor(userID), true
	case RoleEvaluator:
		return EvaluatorAuthor(userID), true
	default:
		return Author{}, false
	}
}

// Feedback is a rating of a faculty member for one semester.
type Feedback struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	FacultyID uint    `json:"-" gorm:"not null;index"`
	Author    Author  `json:"author" gorm:"embedded"`
	Rating    float64 `json:"rating" gorm:"not null"`
	Comment   string  `json:"comment" gorm:"type:text"`
	Semester  string  `json:"semester" gorm:"size:20;not null;index"`
	// StudentKey is set only on student rows; the unique index keeps one
	// student rating per faculty per semester. NULLs never collide.
	StudentKey *string   `json:"-" gorm:"size:100;uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Faculty User `json:"-" gorm:"foreignKey:FacultyID"`
}

// TableName keeps the table name singular.
func (Feedback) TableName() string {
	return "feedback"
}

// StudentFeedbackKey builds the uniqueness key for a student rating.
func StudentFeedbackKey(studentID, facultyID uint, semester string) string {
	return fmt.Sprintf("%d:%d:%s", studentID, facultyID, semester)
}

// FeedbackView is a feedback row with user ids resolved to usernames.
type FeedbackView struct {
	ID                uint    `json:"id"`
	FacultyUsername   string  `json:"faculty_username"`
	StudentUsername   *string `json:"student_username"`
	EvaluatorUsername *string `json:"evaluator_username"`
	Rating            float64 `json:"rating"`
	Comment           string  `json:"comment"`
	Semester          string  `json:"semester"`
	Timestamp         string  `json:"timestamp"`
}

// FeedbackSummary aggregates every rating a faculty member received.
type FeedbackSummary struct {
	AverageRating  float64        `json:"avg_rating"`
	StudentCount   int            `json:"student_count"`
	EvaluatorCount int            `json:"evaluator_count"`
	Feedback       []FeedbackView `json:"feedback"`
}

// FeedbackStatus reports whether a student already rated a faculty member.
type FeedbackStatus struct {
	FacultyUsername string `json:"faculty_username"`
	FacultyName     string `json:"faculty_name"`
	Status          string `json:"status"`
	Semester        string `json:"semester"`
}

const (
	StatusSubmitted    = "Submitted"
	StatusNotSubmitted = "Not Submitted"
)
