package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"appraisal/internal/model"
)

// ExperienceRepository defines experience persistence operations.
type ExperienceRepository interface {
	Create(ctx context.Context, exp *model.Experience) error
	FindByID(ctx context.Context, id uint) (*model.Experience, error)
	ListByFaculty(ctx context.Context, facultyID uint) ([]model.Experience, error)
	Update(ctx context.Context, id uint, fields model.ExperienceFields) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type experienceRepository struct {
	db *gorm.DB
}

// NewExperienceRepository creates a new experience repository.
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(exp).Error
}

func (r *experienceRepository) FindByID(ctx context.Context, id uint) (*model.Experience, error) {
	var exp model.Experience
	if err := r.db.WithContext(ctx).First(&exp, id).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

func (r *experienceRepository) ListByFaculty(ctx context.Context, facultyID uint) ([]model.Experience, error) {
	var exps []model.Experience
	if err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).Order("id").Find(&exps).Error; err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *experienceRepository) Update(ctx context.Context, id uint, fields model.ExperienceFields) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exp model.Experience
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&exp, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		fields.Apply(&exp)
		return tx.Model(&exp).
			Select("institution", "role", "duration", "description", "updated_at").
			Updates(&exp).Error
	})
	return found, err
}

func (r *experienceRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Experience{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
