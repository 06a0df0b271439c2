package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"appraisal/internal/db"
	"appraisal/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open(db.DriverSQLite, fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB
}

func createUser(t *testing.T, repo UserRepository, username string, role model.Role) *model.User {
	t.Helper()
	u := &model.User{Username: username, PasswordHash: "x", Name: username, Role: role}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	john := createUser(t, repo, "john", model.RoleFaculty)
	jane := createUser(t, repo, "jane", model.RoleEvaluator)
	createUser(t, repo, "ann", model.RoleFaculty)

	found, err := repo.FindByUsername(ctx, "john")
	require.NoError(t, err)
	assert.Equal(t, john.ID, found.ID)

	_, err = repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	byID, err := repo.FindByID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane", byID.Username)

	users, err := repo.FindByIDs(ctx, []uint{john.ID, jane.ID, 999})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	faculty, err := repo.ListByRole(ctx, model.RoleFaculty)
	require.NoError(t, err)
	require.Len(t, faculty, 2)
	assert.Equal(t, "john", faculty[0].Username)
	assert.Equal(t, "ann", faculty[1].Username)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	err = repo.Create(ctx, &model.User{Username: "john", PasswordHash: "x", Name: "Other", Role: model.RoleStudent})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestPublicationRepository(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	repo := NewPublicationRepository(gormDB)

	john := createUser(t, users, "john", model.RoleFaculty)
	ann := createUser(t, users, "ann", model.RoleFaculty)

	pub := &model.Publication{FacultyID: john.ID, Title: "T", Journal: "J", Year: 2023, DOI: "D1"}
	require.NoError(t, repo.Create(ctx, pub))
	require.NotZero(t, pub.ID)
	other := &model.Publication{FacultyID: ann.ID, Title: "Other", Journal: "JO", Year: 2020, DOI: "DO"}
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByFaculty(ctx, john.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "T", list[0].Title)
	assert.Equal(t, "D1", list[0].DOI)

	found, err := repo.Update(ctx, pub.ID, model.PublicationFields{Title: "T2", Journal: "J2", Year: 2024})
	require.NoError(t, err)
	assert.True(t, found)

	updated, err := repo.FindByID(ctx, pub.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, 2024, updated.Year)
	assert.Empty(t, updated.DOI, "cleared optional field is persisted")

	untouched, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, untouched.FacultyID)
	assert.Equal(t, "Other", untouched.Title)
	assert.Equal(t, "JO", untouched.Journal)
	assert.Equal(t, 2020, untouched.Year)
	assert.Equal(t, "DO", untouched.DOI)

	found, err = repo.Update(ctx, 999, model.PublicationFields{Title: "x"})
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := repo.Delete(ctx, pub.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, pub.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err = repo.ListByFaculty(ctx, john.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExperienceRepository(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	john := createUser(t, NewUserRepository(gormDB), "john", model.RoleFaculty)
	repo := NewExperienceRepository(gormDB)

	exp := &model.Experience{FacultyID: john.ID, Institution: "MIT", Role: "Lecturer", Duration: "2015-2019", Description: "Taught"}
	require.NoError(t, repo.Create(ctx, exp))
	other := &model.Experience{FacultyID: john.ID, Institution: "CMU", Role: "Postdoc", Duration: "2012-2015", Description: "Research"}
	require.NoError(t, repo.Create(ctx, other))

	found, err := repo.Update(ctx, exp.ID, model.ExperienceFields{Institution: "MIT", Role: "Professor", Duration: "2019-"})
	require.NoError(t, err)
	assert.True(t, found)

	updated, err := repo.FindByID(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Professor", updated.Role)
	assert.Equal(t, "2019-", updated.Duration)
	assert.Empty(t, updated.Description)

	untouched, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "CMU", untouched.Institution)
	assert.Equal(t, "Postdoc", untouched.Role)
	assert.Equal(t, "2012-2015", untouched.Duration)
	assert.Equal(t, "Research", untouched.Description)

	list, err := repo.ListByFaculty(ctx, john.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	deleted, err := repo.Delete(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFeedbackRepository(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	users := NewUserRepository(gormDB)
	repo := NewFeedbackRepository(gormDB)

	john := createUser(t, users, "john", model.RoleFaculty)
	jane := createUser(t, users, "jane", model.RoleEvaluator)
	mike := createUser(t, users, "mike", model.RoleStudent)

	exists, err := repo.ExistsForStudent(ctx, mike.ID, john.ID, "2024-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &model.Feedback{FacultyID: john.ID, Author: model.StudentAuthor(mike.ID), Rating: 5, Semester: "2024-1"}))

	exists, err = repo.ExistsForStudent(ctx, mike.ID, john.ID, "2024-1")
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("second student row in the same semester is rejected by the store", func(t *testing.T) {
		err := repo.Create(ctx, &model.Feedback{FacultyID: john.ID, Author: model.StudentAuthor(mike.ID), Rating: 1, Semester: "2024-1"})
		assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
	})

	t.Run("next semester is a new scope", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &model.Feedback{FacultyID: john.ID, Author: model.StudentAuthor(mike.ID), Rating: 4, Semester: "2024-2"}))
	})

	t.Run("evaluator rows never collide", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			require.NoError(t, repo.Create(ctx, &model.Feedback{FacultyID: john.ID, Author: model.EvaluatorAuthor(jane.ID), Rating: 3, Semester: "2024-1"}))
		}
		exists, err := repo.ExistsForStudent(ctx, jane.ID, john.ID, "2024-1")
		require.NoError(t, err)
		assert.False(t, exists, "evaluator rows do not count as student submissions")
	})

	rows, err := repo.ListBySubject(ctx, john.ID)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, model.AuthorStudent, rows[0].Author.Kind)
	assert.Equal(t, mike.ID, rows[0].Author.UserID)
	assert.False(t, rows[0].CreatedAt.IsZero())

	evaluatorRows := 0
	for _, r := range rows {
		if r.Author.Kind == model.AuthorEvaluator {
			evaluatorRows++
			assert.Nil(t, r.StudentKey)
		}
	}
	assert.Equal(t, 2, evaluatorRows)
}
