package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "appraisal/internal/errors"
	"appraisal/internal/model"
	"appraisal/internal/repository"
	"appraisal/internal/session"
)

const (
	sheetSummary      = "Summary"
	sheetPublications = "Publications"
	sheetExperiences  = "Experiences"
	sheetFeedback     = "Feedback"
)

// ReportService exports a faculty member's appraisal record as a workbook.
type ReportService interface {
	// FacultyReport returns the .xlsx content and a suggested file name.
	FacultyReport(ctx context.Context, sess session.Context, subject string) (*bytes.Buffer, string, error)
}

type reportService struct {
	users    repository.UserRepository
	academic AcademicService
	feedback FeedbackService
}

// NewReportService creates a new report service.
func NewReportService(users repository.UserRepository, academic AcademicService, feedback FeedbackService) ReportService {
	return &reportService{users: users, academic: academic, feedback: feedback}
}

func (s *reportService) FacultyReport(ctx context.Context, sess session.Context, subject string) (*bytes.Buffer, string, error) {
	if err := sess.Require(model.RoleEvaluator, model.RoleFaculty); err != nil {
		return nil, "", err
	}
	if sess.Is(model.RoleFaculty) && !sess.IsSelf(subject) {
		return nil, "", apperrors.ErrPermissionDenied
	}

	faculty, err := s.users.FindByUsername(ctx, subject)
	if err != nil {
		return nil, "", storeError("find subject", err, apperrors.ErrUserNotFound)
	}
	if faculty.Role != model.RoleFaculty {
		return nil, "", apperrors.ErrUserNotFound
	}
	subject = faculty.Username

	pubs, err := s.academic.ListPublications(ctx, sess, subject)
	if err != nil {
		return nil, "", err
	}
	exps, err := s.academic.ListExperiences(ctx, sess, subject)
	if err != nil {
		return nil, "", err
	}
	summary, err := s.feedback.Summarize(ctx, sess, subject)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}
	rows := [][]interface{}{
		{"Faculty", subject},
		{"Average Rating", summary.AverageRating},
		{"Student Feedback", summary.StudentCount},
		{"Evaluator Feedback", summary.EvaluatorCount},
		{"Publications", len(pubs)},
		{"Experiences", len(exps)},
	}
	if err := writeRows(f, sheetSummary, rows); err != nil {
		return nil, "", err
	}

	rows = [][]interface{}{{"ID", "Title", "Journal", "Year", "DOI"}}
	for _, p := range pubs {
		rows = append(rows, []interface{}{p.ID, p.Title, p.Journal, p.Year, p.DOI})
	}
	if err := writeSheet(f, sheetPublications, rows); err != nil {
		return nil, "", err
	}

	rows = [][]interface{}{{"ID", "Institution", "Role", "Duration", "Description"}}
	for _, e := range exps {
		rows = append(rows, []interface{}{e.ID, e.Institution, e.Role, e.Duration, e.Description})
	}
	if err := writeSheet(f, sheetExperiences, rows); err != nil {
		return nil, "", err
	}

	rows = [][]interface{}{{"ID", "From", "Author", "Rating", "Comment", "Semester", "Date"}}
	for _, fb := range summary.Feedback {
		from, author := "Student", ""
		if fb.StudentUsername != nil {
			author = *fb.StudentUsername
		}
		if fb.EvaluatorUsername != nil {
			from, author = "Evaluator", *fb.EvaluatorUsername
		}
		rows = append(rows, []interface{}{fb.ID, from, author, fb.Rating, fb.Comment, fb.Semester, fb.Timestamp})
	}
	if err := writeSheet(f, sheetFeedback, rows); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	return buf, fmt.Sprintf("appraisal_%s.xlsx", subject), nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
