package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"appraisal/internal/model"
)

// PublicationRepository defines publication persistence operations.
type PublicationRepository interface {
	Create(ctx context.Context, pub *model.Publication) error
	FindByID(ctx context.Context, id uint) (*model.Publication, error)
	ListByFaculty(ctx context.Context, facultyID uint) ([]model.Publication, error)
	// Update reports false when no publication has id.
	Update(ctx context.Context, id uint, fields model.PublicationFields) (bool, error)
	// Delete reports false when no publication has id.
	Delete(ctx context.Context, id uint) (bool, error)
}

type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository creates a new publication repository.
func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, pub *model.Publication) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pub).Error
}

func (r *publicationRepository) FindByID(ctx context.Context, id uint) (*model.Publication, error) {
	var pub model.Publication
	if err := r.db.WithContext(ctx).First(&pub, id).Error; err != nil {
		return nil, err
	}
	return &pub, nil
}

func (r *publicationRepository) ListByFaculty(ctx context.Context, facultyID uint) ([]model.Publication, error) {
	var pubs []model.Publication
	if err := r.db.WithContext(ctx).Where("faculty_id = ?", facultyID).Order("id").Find(&pubs).Error; err != nil {
		return nil, err
	}
	return pubs, nil
}

// Update locks the row, then rewrites every editable column so that
// cleared optional fields are persisted too.
func (r *publicationRepository) Update(ctx context.Context, id uint, fields model.PublicationFields) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pub model.Publication
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&pub, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		fields.Apply(&pub)
		return tx.Model(&pub).
			Select("title", "journal", "year", "doi", "updated_at").
			Updates(&pub).Error
	})
	return found, err
}

func (r *publicationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Publication{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
