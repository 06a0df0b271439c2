package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"appraisal/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == 0 {
		user.ID = uint(len(m.Calls))
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublicationRepository is a mock implementation of PublicationRepository.
type MockPublicationRepository struct {
	mock.Mock
}

func (m *MockPublicationRepository) Create(ctx context.Context, pub *model.Publication) error {
	args := m.Called(ctx, pub)
	if args.Error(0) == nil {
		pub.ID = 1
	}
	return args.Error(0)
}

func (m *MockPublicationRepository) FindByID(ctx context.Context, id uint) (*model.Publication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Publication), args.Error(1)
}

func (m *MockPublicationRepository) ListByFaculty(ctx context.Context, facultyID uint) ([]model.Publication, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Publication), args.Error(1)
}

func (m *MockPublicationRepository) Update(ctx context.Context, id uint, fields model.PublicationFields) (bool, error) {
	args := m.Called(ctx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockPublicationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockExperienceRepository is a mock implementation of ExperienceRepository.
type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) Create(ctx context.Context, exp *model.Experience) error {
	args := m.Called(ctx, exp)
	if args.Error(0) == nil {
		exp.ID = 1
	}
	return args.Error(0)
}

func (m *MockExperienceRepository) FindByID(ctx context.Context, id uint) (*model.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Experience), args.Error(1)
}

func (m *MockExperienceRepository) ListByFaculty(ctx context.Context, facultyID uint) ([]model.Experience, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Experience), args.Error(1)
}

func (m *MockExperienceRepository) Update(ctx context.Context, id uint, fields model.ExperienceFields) (bool, error) {
	args := m.Called(ctx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockExperienceRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockFeedbackRepository is a mock implementation of FeedbackRepository.
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	args := m.Called(ctx, fb)
	if args.Error(0) == nil {
		fb.ID = 1
	}
	return args.Error(0)
}

func (m *MockFeedbackRepository) ListBySubject(ctx context.Context, facultyID uint) ([]model.Feedback, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) ExistsForStudent(ctx context.Context, studentID, facultyID uint, semester string) (bool, error) {
	args := m.Called(ctx, studentID, facultyID, semester)
	return args.Bool(0), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, username string, role model.Role, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, username, role, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, model.Role, error) {
	args := m.Called(ctx, tokenID)
	return args.String(0), args.Get(1).(model.Role), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
