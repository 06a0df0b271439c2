package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/model"
	"appraisal/internal/session"
)

type stubAcademic struct {
	AcademicService
	pubs []model.Publication
	exps []model.Experience
}

func (s stubAcademic) ListPublications(context.Context, session.Context, string) ([]model.Publication, error) {
	return s.pubs, nil
}

func (s stubAcademic) ListExperiences(context.Context, session.Context, string) ([]model.Experience, error) {
	return s.exps, nil
}

type stubFeedback struct {
	FeedbackService
	summary *model.FeedbackSummary
}

func (s stubFeedback) Summarize(context.Context, session.Context, string) (*model.FeedbackSummary, error) {
	return s.summary, nil
}

func reportUsers() *MockUserRepository {
	users := new(MockUserRepository)
	users.On("FindByUsername", mock.Anything, "john").Return(johnUser, nil)
	users.On("FindByUsername", mock.Anything, "mike").Return(mikeUser, nil)
	users.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	return users
}

func TestReportService_FacultyReport(t *testing.T) {
	mike, jane := "mike", "jane"
	svc := NewReportService(
		reportUsers(),
		stubAcademic{
			pubs: []model.Publication{{ID: 1, Title: "T", Journal: "J", Year: 2023, DOI: "D1"}},
			exps: []model.Experience{{ID: 2, Institution: "MIT", Role: "Lecturer", Duration: "2015-2019"}},
		},
		stubFeedback{summary: &model.FeedbackSummary{
			AverageRating:  4.5,
			StudentCount:   1,
			EvaluatorCount: 1,
			Feedback: []model.FeedbackView{
				{ID: 1, StudentUsername: &mike, Rating: 5, Comment: "great", Semester: "2024-1"},
				{ID: 2, EvaluatorUsername: &jane, Rating: 4, Semester: "2024-1"},
			},
		}},
	)

	buf, filename, err := svc.FacultyReport(context.Background(), evaluatorSession("jane"), "john")
	require.NoError(t, err)
	assert.Equal(t, "appraisal_john.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Publications", "Experiences", "Feedback"}, f.GetSheetList())

	avg, err := f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "4.5", avg)

	pubRows, err := f.GetRows("Publications")
	require.NoError(t, err)
	require.Len(t, pubRows, 2)
	assert.Equal(t, []string{"1", "T", "J", "2023", "D1"}, pubRows[1])

	fbRows, err := f.GetRows("Feedback")
	require.NoError(t, err)
	require.Len(t, fbRows, 3)
	assert.Equal(t, "Student", fbRows[1][1])
	assert.Equal(t, "mike", fbRows[1][2])
	assert.Equal(t, "Evaluator", fbRows[2][1])
	assert.Equal(t, "jane", fbRows[2][2])
}

func TestReportService_Access(t *testing.T) {
	svc := NewReportService(reportUsers(), stubAcademic{}, stubFeedback{summary: &model.FeedbackSummary{}})
	ctx := context.Background()

	_, _, err := svc.FacultyReport(ctx, facultySession("ann"), "john")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, _, err = svc.FacultyReport(ctx, studentSession("mike"), "john")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, _, err = svc.FacultyReport(ctx, facultySession("john"), "john")
	assert.NoError(t, err)
}

func TestReportService_UnknownFaculty(t *testing.T) {
	svc := NewReportService(reportUsers(), stubAcademic{}, stubFeedback{summary: &model.FeedbackSummary{}})
	ctx := context.Background()

	buf, _, err := svc.FacultyReport(ctx, evaluatorSession("jane"), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, buf)

	_, _, err = svc.FacultyReport(ctx, evaluatorSession("jane"), "mike")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
