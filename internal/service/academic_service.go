package service

import (
	"context"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/logger"
	"appraisal/internal/model"
	"appraisal/internal/repository"
	"appraisal/internal/session"
)

// AcademicService manages the publications and experiences of faculty members.
//
// Any authenticated session may list a faculty member's records. Only the
// owning faculty member may add, update or delete them.
type AcademicService interface {
	ListPublications(ctx context.Context, sess session.Context, owner string) ([]model.Publication, error)
	AddPublication(ctx context.Context, sess session.Context, owner string, fields model.PublicationFields) (uint, error)
	UpdatePublication(ctx context.Context, sess session.Context, id uint, fields model.PublicationFields) error
	DeletePublication(ctx context.Context, sess session.Context, id uint) error

	ListExperiences(ctx context.Context, sess session.Context, owner string) ([]model.Experience, error)
	AddExperience(ctx context.Context, sess session.Context, owner string, fields model.ExperienceFields) (uint, error)
	UpdateExperience(ctx context.Context, sess session.Context, id uint, fields model.ExperienceFields) error
	DeleteExperience(ctx context.Context, sess session.Context, id uint) error
}

type academicService struct {
	users        repository.UserRepository
	publications repository.PublicationRepository
	experiences  repository.ExperienceRepository
}

// NewAcademicService creates a new academic-record service.
func NewAcademicService(users repository.UserRepository, publications repository.PublicationRepository, experiences repository.ExperienceRepository) AcademicService {
	return &academicService{
		users:        users,
		publications: publications,
		experiences:  experiences,
	}
}

// resolveOwner looks up a faculty member. ok is false when the username
// does not resolve to a faculty user.
func (s *academicService) resolveOwner(ctx context.Context, owner string) (*model.User, bool, error) {
	user, err := s.users.FindByUsername(ctx, owner)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, storeError("find owner", err, nil)
	}
	if user.Role != model.RoleFaculty {
		return nil, false, nil
	}
	return user, true, nil
}

// authorizeWrite checks that sess is a faculty session for owner.
func authorizeWrite(sess session.Context, owner string) error {
	if err := sess.Require(model.RoleFaculty); err != nil {
		return err
	}
	if !sess.IsSelf(owner) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// authorizeRecord checks that the faculty record identified by facultyID
// belongs to the session user. sess must already be a faculty session.
func (s *academicService) authorizeRecord(ctx context.Context, sess session.Context, facultyID uint) error {
	me, err := s.users.FindByUsername(ctx, sess.Identifier)
	if err != nil {
		if isNotFound(err) {
			return apperrors.ErrPermissionDenied
		}
		return storeError("find session user", err, nil)
	}
	if me.ID != facultyID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

func (s *academicService) ListPublications(ctx context.Context, sess session.Context, owner string) ([]model.Publication, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	user, ok, err := s.resolveOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Publication{}, nil
	}

	pubs, err := s.publications.ListByFaculty(ctx, user.ID)
	if err != nil {
		return nil, storeError("list publications", err, nil)
	}
	for i := range pubs {
		pubs[i].FacultyUsername = user.Username
	}
	return pubs, nil
}

// AddPublication stores a publication for owner and returns its id.
func (s *academicService) AddPublication(ctx context.Context, sess session.Context, owner string, fields model.PublicationFields) (uint, error) {
	if err := authorizeWrite(sess, owner); err != nil {
		return 0, err
	}
	user, ok, err := s.resolveOwner(ctx, owner)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}

	pub := &model.Publication{FacultyID: user.ID}
	fields.Apply(pub)
	if err := s.publications.Create(ctx, pub); err != nil {
		return 0, storeError("create publication", err, nil)
	}

	logger.Info().Str("faculty", owner).Uint("publication_id", pub.ID).Msg("publication added")
	return pub.ID, nil
}

func (s *academicService) UpdatePublication(ctx context.Context, sess session.Context, id uint, fields model.PublicationFields) error {
	if err := sess.Require(model.RoleFaculty); err != nil {
		return err
	}
	pub, err := s.publications.FindByID(ctx, id)
	if err != nil {
		return storeError("find publication", err, apperrors.ErrRecordNotFound)
	}
	if err := s.authorizeRecord(ctx, sess, pub.FacultyID); err != nil {
		return err
	}

	found, err := s.publications.Update(ctx, id, fields)
	if err != nil {
		return storeError("update publication", err, nil)
	}
	if !found {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

func (s *academicService) DeletePublication(ctx context.Context, sess session.Context, id uint) error {
	if err := sess.Require(model.RoleFaculty); err != nil {
		return err
	}
	pub, err := s.publications.FindByID(ctx, id)
	if err != nil {
		return storeError("find publication", err, apperrors.ErrRecordNotFound)
	}
	if err := s.authorizeRecord(ctx, sess, pub.FacultyID); err != nil {
		return err
	}

	found, err := s.publications.Delete(ctx, id)
	if err != nil {
		return storeError("delete publication", err, nil)
	}
	if !found {
		return apperrors.ErrRecordNotFound
	}
	logger.Info().Str("faculty", sess.Identifier).Uint("publication_id", id).Msg("publication deleted")
	return nil
}

func (s *academicService) ListExperiences(ctx context.Context, sess session.Context, owner string) ([]model.Experience, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	user, ok, err := s.resolveOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.Experience{}, nil
	}

	exps, err := s.experiences.ListByFaculty(ctx, user.ID)
	if err != nil {
		return nil, storeError("list experiences", err, nil)
	}
	for i := range exps {
		exps[i].FacultyUsername = user.Username
	}
	return exps, nil
}

// AddExperience stores an experience for owner and returns its id.
func (s *academicService) AddExperience(ctx context.Context, sess session.Context, owner string, fields model.ExperienceFields) (uint, error) {
	if err := authorizeWrite(sess, owner); err != nil {
		return 0, err
	}
	user, ok, err := s.resolveOwner(ctx, owner)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperrors.ErrUserNotFound
	}

	exp := &model.Experience{FacultyID: user.ID}
	fields.Apply(exp)
	if err := s.experiences.Create(ctx, exp); err != nil {
		return 0, storeError("create experience", err, nil)
	}

	logger.Info().Str("faculty", owner).Uint("experience_id", exp.ID).Msg("experience added")
	return exp.ID, nil
}

func (s *academicService) UpdateExperience(ctx context.Context, sess session.Context, id uint, fields model.ExperienceFields) error {
	if err := sess.Require(model.RoleFaculty); err != nil {
		return err
	}
	exp, err := s.experiences.FindByID(ctx, id)
	if err != nil {
		return storeError("find experience", err, apperrors.ErrRecordNotFound)
	}
	if err := s.authorizeRecord(ctx, sess, exp.FacultyID); err != nil {
		return err
	}

	found, err := s.experiences.Update(ctx, id, fields)
	if err != nil {
		return storeError("update experience", err, nil)
	}
	if !found {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

func (s *academicService) DeleteExperience(ctx context.Context, sess session.Context, id uint) error {
	if err := sess.Require(model.RoleFaculty); err != nil {
		return err
	}
	exp, err := s.experiences.FindByID(ctx, id)
	if err != nil {
		return storeError("find experience", err, apperrors.ErrRecordNotFound)
	}
	if err := s.authorizeRecord(ctx, sess, exp.FacultyID); err != nil {
		return err
	}

	found, err := s.experiences.Delete(ctx, id)
	if err != nil {
		return storeError("delete experience", err, nil)
	}
	if !found {
		return apperrors.ErrRecordNotFound
	}
	logger.Info().Str("faculty", sess.Identifier).Uint("experience_id", id).Msg("experience deleted")
	return nil
}
