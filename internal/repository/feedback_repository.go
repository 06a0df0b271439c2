package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"appraisal/internal/model"
)

// FeedbackRepository defines feedback persistence operations.
type FeedbackRepository interface {
	// Create inserts fb. A second student row for the same faculty and
	// semester fails with gorm.ErrDuplicatedKey.
	Create(ctx context.Context, fb *model.Feedback) error
	ListBySubject(ctx context.Context, facultyID uint) ([]model.Feedback, error)
	ExistsForStudent(ctx context.Context, studentID, facultyID uint, semester string) (bool, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	if fb.Author.Kind == model.AuthorStudent {
		key := model.StudentFeedbackKey(fb.Author.UserID, fb.FacultyID, fb.Semester)
		fb.StudentKey = &key
	} else {
		fb.StudentKey = nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(fb).Error
}

func (r *feedbackRepository) ListBySubject(ctx context.Context, facultyID uint) ([]model.Feedback, error) {
	var rows []model.Feedback
	if err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *feedbackRepository) ExistsForStudent(ctx context.Context, studentID, facultyID uint, semester string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Feedback{}).
		Where("author_kind = ? AND author_id = ? AND faculty_id = ? AND semester = ?",
			model.AuthorStudent, studentID, facultyID, semester).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
