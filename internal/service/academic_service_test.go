package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/model"
	"appraisal/internal/session"
)

var (
	johnUser = &model.User{ID: 1, Username: "john", Name: "John Smith", Role: model.RoleFaculty}
	annUser  = &model.User{ID: 4, Username: "ann", Name: "Ann Lee", Role: model.RoleFaculty}
	janeUser = &model.User{ID: 2, Username: "jane", Name: "Jane Doe", Role: model.RoleEvaluator}
	mikeUser = &model.User{ID: 3, Username: "mike", Name: "Mike Johnson", Role: model.RoleStudent}
)

func facultySession(username string) session.Context {
	return session.Anonymous().Login(username, model.RoleFaculty)
}

type academicMocks struct {
	users        *MockUserRepository
	publications *MockPublicationRepository
	experiences  *MockExperienceRepository
}

func newAcademicService() (AcademicService, academicMocks) {
	m := academicMocks{
		users:        new(MockUserRepository),
		publications: new(MockPublicationRepository),
		experiences:  new(MockExperienceRepository),
	}
	return NewAcademicService(m.users, m.publications, m.experiences), m
}

func TestAcademicService_ListPublications(t *testing.T) {
	ctx := context.Background()

	t.Run("returns owner records with username", func(t *testing.T) {
		svc, m := newAcademicService()
		m.users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
		m.publications.On("ListByFaculty", mock.Anything, uint(1)).Return([]model.Publication{
			{ID: 7, FacultyID: 1, Title: "T", Journal: "J", Year: 2023, DOI: "D1"},
		}, nil)

		pubs, err := svc.ListPublications(ctx, session.Anonymous().Login("mike", model.RoleStudent), "john")
		require.NoError(t, err)
		require.Len(t, pubs, 1)
		assert.Equal(t, "john", pubs[0].FacultyUsername)
		assert.Equal(t, "T", pubs[0].Title)
	})

	t.Run("unknown owner is empty, not an error", func(t *testing.T) {
		svc, m := newAcademicService()
		m.users.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		pubs, err := svc.ListPublications(ctx, facultySession("john"), "ghost")
		require.NoError(t, err)
		assert.Empty(t, pubs)
		assert.NotNil(t, pubs)
	})

	t.Run("anonymous session", func(t *testing.T) {
		svc, _ := newAcademicService()
		_, err := svc.ListPublications(ctx, session.Anonymous(), "john")
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestAcademicService_AddPublication(t *testing.T) {
	ctx := context.Background()
	fields := model.PublicationFields{Title: "T", Journal: "J", Year: 2023}

	tests := []struct {
		name          string
		sess          session.Context
		owner         string
		setupMock     func(academicMocks)
		expectedError error
	}{
		{
			name:  "owner adds own publication",
			sess:  facultySession("john"),
			owner: "john",
			setupMock: func(m academicMocks) {
				m.users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
				m.publications.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Publication) bool {
					return p.FacultyID == 1 && p.Title == "T" && p.DOI == ""
				})).Return(nil)
			},
		},
		{
			name:          "faculty cannot write for another faculty",
			sess:          facultySession("ann"),
			owner:         "john",
			setupMock:     func(academicMocks) {},
			expectedError: apperrors.ErrPermissionDenied,
		},
		{
			name:          "students cannot add publications",
			sess:          session.Anonymous().Login("mike", model.RoleStudent),
			owner:         "mike",
			setupMock:     func(academicMocks) {},
			expectedError: apperrors.ErrPermissionDenied,
		},
		{
			name:  "owner no longer exists",
			sess:  facultySession("john"),
			owner: "john",
			setupMock: func(m academicMocks) {
				m.users.On("FindByUsername", mock.Anything, "john").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAcademicService()
			tt.setupMock(m)

			id, err := svc.AddPublication(ctx, tt.sess, tt.owner, fields)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), id)
			}
			m.users.AssertExpectations(t)
			m.publications.AssertExpectations(t)
		})
	}
}

func TestAcademicService_UpdatePublication(t *testing.T) {
	ctx := context.Background()
	fields := model.PublicationFields{Title: "New", Journal: "J", Year: 2024}

	t.Run("owner updates", func(t *testing.T) {
		svc, m := newAcademicService()
		m.publications.On("FindByID", mock.Anything, uint(7)).Return(&model.Publication{ID: 7, FacultyID: 1}, nil)
		m.users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
		m.publications.On("Update", mock.Anything, uint(7), fields).Return(true, nil)

		require.NoError(t, svc.UpdatePublication(ctx, facultySession("john"), 7, fields))
		m.publications.AssertExpectations(t)
	})

	t.Run("record of another faculty", func(t *testing.T) {
		svc, m := newAcademicService()
		m.publications.On("FindByID", mock.Anything, uint(7)).Return(&model.Publication{ID: 7, FacultyID: 1}, nil)
		m.users.On("FindByUsername", mock.Anything, "ann").Return(annUser, nil)

		err := svc.UpdatePublication(ctx, facultySession("ann"), 7, fields)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		m.publications.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, m := newAcademicService()
		m.publications.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		err := svc.UpdatePublication(ctx, facultySession("john"), 99, fields)
		assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
	})

	t.Run("deleted between lookup and update", func(t *testing.T) {
		svc, m := newAcademicService()
		m.publications.On("FindByID", mock.Anything, uint(7)).Return(&model.Publication{ID: 7, FacultyID: 1}, nil)
		m.users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
		m.publications.On("Update", mock.Anything, uint(7), fields).Return(false, nil)

		err := svc.UpdatePublication(ctx, facultySession("john"), 7, fields)
		assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
	})

	t.Run("anonymous caller learns nothing", func(t *testing.T) {
		svc, m := newAcademicService()
		err := svc.UpdatePublication(ctx, session.Anonymous(), 7, fields)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		m.publications.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestAcademicService_DeletePublication(t *testing.T) {
	ctx := context.Background()

	svc, m := newAcademicService()
	m.publications.On("FindByID", mock.Anything, uint(7)).Return(&model.Publication{ID: 7, FacultyID: 1}, nil)
	m.users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
	m.publications.On("Delete", mock.Anything, uint(7)).Return(true, nil)

	require.NoError(t, svc.DeletePublication(ctx, facultySession("john"), 7))

	m.publications.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.DeletePublication(ctx, facultySession("john"), 8), apperrors.ErrRecordNotFound)
}

func TestAcademicService_Experiences(t *testing.T) {
	ctx := context.Background()
	fields := model.ExperienceFields{Institution: "MIT", Role: "Lecturer", Duration: "2015-2019"}

	t.Run("add then list", func(t *testing.T) {
		svc, m := newAcademicService()
		m.users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
		m.experiences.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Experience) bool {
			return e.FacultyID == 1 && e.Institution == "MIT" && e.Description == ""
		})).Return(nil)
		m.experiences.On("ListByFaculty", mock.Anything, uint(1)).Return([]model.Experience{
			{ID: 1, FacultyID: 1, Institution: "MIT", Role: "Lecturer", Duration: "2015-2019"},
		}, nil)

		id, err := svc.AddExperience(ctx, facultySession("john"), "john", fields)
		require.NoError(t, err)
		assert.Equal(t, uint(1), id)

		exps, err := svc.ListExperiences(ctx, session.Anonymous().Login("jane", model.RoleEvaluator), "john")
		require.NoError(t, err)
		require.Len(t, exps, 1)
		assert.Equal(t, "john", exps[0].FacultyUsername)
	})

	t.Run("non-faculty owner lists empty", func(t *testing.T) {
		svc, m := newAcademicService()
		m.users.On("FindByUsername", mock.Anything, "mike").Return(mikeUser, nil)

		exps, err := svc.ListExperiences(ctx, facultySession("john"), "mike")
		require.NoError(t, err)
		assert.Empty(t, exps)
	})

	t.Run("update of another faculty's record", func(t *testing.T) {
		svc, m := newAcademicService()
		m.experiences.On("FindByID", mock.Anything, uint(3)).Return(&model.Experience{ID: 3, FacultyID: 1}, nil)
		m.users.On("FindByUsername", mock.Anything, "ann").Return(annUser, nil)

		assert.ErrorIs(t, svc.UpdateExperience(ctx, facultySession("ann"), 3, fields), apperrors.ErrPermissionDenied)
	})

	t.Run("delete missing record", func(t *testing.T) {
		svc, m := newAcademicService()
		m.experiences.On("FindByID", mock.Anything, uint(3)).Return(&model.Experience{ID: 3, FacultyID: 1}, nil)
		m.users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
		m.experiences.On("Delete", mock.Anything, uint(3)).Return(false, nil)

		assert.ErrorIs(t, svc.DeleteExperience(ctx, facultySession("john"), 3), apperrors.ErrRecordNotFound)
	})
}
