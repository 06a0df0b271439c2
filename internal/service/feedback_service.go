package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"appraisal/internal/cache"
	apperrors "appraisal/internal/errors"
	"appraisal/internal/logger"
	"appraisal/internal/model"
	"appraisal/internal/repository"
	"appraisal/internal/semester"
	"appraisal/internal/session"
)

const (
	summaryCacheTTL = 5 * time.Minute
	timestampLayout = "2006-01-02 15:04:05"

	// MsgFeedbackSubmitted is shown after a successful submission.
	MsgFeedbackSubmitted = "Feedback submitted successfully."
)

// SubmitFeedbackInput is what an author fills in when rating a faculty member.
type SubmitFeedbackInput struct {
	Subject string
	Rating  float64
	Comment string
	// Semester defaults to the current semester when empty.
	Semester string
}

// SubmitResult pairs the outcome with the text shown to the author.
type SubmitResult struct {
	Success  bool
	Message  string
	Feedback *model.Feedback
}

// FeedbackService handles feedback submission and aggregation.
type FeedbackService interface {
	HasSubmitted(ctx context.Context, author, subject, semester string) (bool, error)
	Submit(ctx context.Context, sess session.Context, in SubmitFeedbackInput) (*SubmitResult, error)
	Summarize(ctx context.Context, sess session.Context, subject string) (*model.FeedbackSummary, error)
	Statuses(ctx context.Context, sess session.Context) ([]model.FeedbackStatus, error)
	CurrentSemester() string
}

type feedbackService struct {
	users    repository.UserRepository
	feedback repository.FeedbackRepository
	cache    *cache.Client
	clock    semester.Clock
}

// NewFeedbackService creates a new feedback service. A nil clock uses time.Now.
func NewFeedbackService(users repository.UserRepository, feedback repository.FeedbackRepository, cache *cache.Client, clock semester.Clock) FeedbackService {
	return &feedbackService{
		users:    users,
		feedback: feedback,
		cache:    cache,
		clock:    clock,
	}
}

const summaryCacheKeyPrefix = "feedback_summary:"

func summaryCacheKey(subject string) string {
	return summaryCacheKeyPrefix + subject
}

func (s *feedbackService) CurrentSemester() string {
	return s.clock.Current()
}

// HasSubmitted reports whether author already rated subject in semester as a
// student. Evaluator rows are not considered. Unknown users yield false.
func (s *feedbackService) HasSubmitted(ctx context.Context, author, subject, semester string) (bool, error) {
	student, err := s.users.FindByUsername(ctx, author)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, storeError("find author", err, nil)
	}
	faculty, err := s.users.FindByUsername(ctx, subject)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, storeError("find subject", err, nil)
	}

	exists, err := s.feedback.ExistsForStudent(ctx, student.ID, faculty.ID, semester)
	if err != nil {
		return false, storeError("check feedback", err, nil)
	}
	return exists, nil
}

// Submit records feedback from the session user. Students may rate a faculty
// member once per semester; evaluators are not limited.
func (s *feedbackService) Submit(ctx context.Context, sess session.Context, in SubmitFeedbackInput) (*SubmitResult, error) {
	if err := sess.Require(model.RoleStudent, model.RoleEvaluator); err != nil {
		return nil, err
	}

	term := in.Semester
	if term == "" {
		term = s.CurrentSemester()
	} else if err := semester.Validate(term); err != nil {
		return nil, err
	}

	faculty, err := s.users.FindByUsername(ctx, in.Subject)
	if err != nil {
		return nil, storeError("find subject", err, apperrors.ErrUserNotFound)
	}
	if faculty.Role != model.RoleFaculty {
		return nil, apperrors.ErrUserNotFound
	}
	from, err := s.users.FindByUsername(ctx, sess.Identifier)
	if err != nil {
		return nil, storeError("find author", err, apperrors.ErrUserNotFound)
	}

	author, ok := model.AuthorFor(sess.Role, from.ID)
	if !ok {
		return nil, apperrors.ErrPermissionDenied
	}

	if author.Kind == model.AuthorStudent {
		exists, err := s.feedback.ExistsForStudent(ctx, from.ID, faculty.ID, term)
		if err != nil {
			return nil, storeError("check feedback", err, nil)
		}
		if exists {
			return nil, apperrors.ErrDuplicateFeedback
		}
	}

	fb := &model.Feedback{
		FacultyID: faculty.ID,
		Author:    author,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Semester:  term,
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		if isDuplicateKey(err) {
			return nil, apperrors.ErrDuplicateFeedback
		}
		return nil, storeError("create feedback", err, nil)
	}

	_ = s.cache.Delete(ctx, summaryCacheKey(faculty.Username))
	logger.Info().
		Str("faculty", faculty.Username).
		Str("author", from.Username).
		Str("author_kind", string(author.Kind)).
		Str("semester", term).
		Msg("feedback submitted")

	return &SubmitResult{Success: true, Message: MsgFeedbackSubmitted, Feedback: fb}, nil
}

// Summarize aggregates all feedback for subject. Evaluators may summarize any
// faculty member; faculty only themselves.
func (s *feedbackService) Summarize(ctx context.Context, sess session.Context, subject string) (*model.FeedbackSummary, error) {
	if err := sess.Require(model.RoleEvaluator, model.RoleFaculty); err != nil {
		return nil, err
	}
	if sess.Is(model.RoleFaculty) && !sess.IsSelf(subject) {
		return nil, apperrors.ErrPermissionDenied
	}

	faculty, err := s.users.FindByUsername(ctx, subject)
	if err != nil {
		if isNotFound(err) {
			return &model.FeedbackSummary{Feedback: []model.FeedbackView{}}, nil
		}
		return nil, storeError("find subject", err, nil)
	}

	// Keyed by the stored username so Submit invalidates the same entry.
	key := summaryCacheKey(faculty.Username)
	var cached model.FeedbackSummary
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	summary, err := s.summarize(ctx, faculty)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, key, summary, summaryCacheTTL)
	return summary, nil
}

func (s *feedbackService) summarize(ctx context.Context, faculty *model.User) (*model.FeedbackSummary, error) {
	summary := &model.FeedbackSummary{Feedback: []model.FeedbackView{}}

	rows, err := s.feedback.ListBySubject(ctx, faculty.ID)
	if err != nil {
		return nil, storeError("list feedback", err, nil)
	}
	if len(rows) == 0 {
		return summary, nil
	}

	usernames, err := s.usernames(ctx, rows)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, fb := range rows {
		total = total.Add(decimal.NewFromFloat(fb.Rating))

		view := model.FeedbackView{
			ID:              fb.ID,
			FacultyUsername: faculty.Username,
			Rating:          fb.Rating,
			Comment:         fb.Comment,
			Semester:        fb.Semester,
		}
		if !fb.CreatedAt.IsZero() {
			view.Timestamp = fb.CreatedAt.Format(timestampLayout)
		}
		name, known := usernames[fb.Author.UserID]
		switch fb.Author.Kind {
		case model.AuthorStudent:
			summary.StudentCount++
			if known {
				view.StudentUsername = &name
			}
		case model.AuthorEvaluator:
			summary.EvaluatorCount++
			if known {
				view.EvaluatorUsername = &name
			}
		}
		summary.Feedback = append(summary.Feedback, view)
	}

	avg := total.Div(decimal.NewFromInt(int64(len(rows)))).Round(1)
	summary.AverageRating, _ = avg.Float64()
	return summary, nil
}

// usernames resolves every author id in rows in a single query.
func (s *feedbackService) usernames(ctx context.Context, rows []model.Feedback) (map[uint]string, error) {
	seen := make(map[uint]bool, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, fb := range rows {
		if !seen[fb.Author.UserID] {
			seen[fb.Author.UserID] = true
			ids = append(ids, fb.Author.UserID)
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, storeError("resolve authors", err, nil)
	}
	out := make(map[uint]string, len(users))
	for _, u := range users {
		out[u.ID] = u.Username
	}
	return out, nil
}

// Statuses lists every faculty member with whether the session student has
// rated them this semester.
func (s *feedbackService) Statuses(ctx context.Context, sess session.Context) ([]model.FeedbackStatus, error) {
	if err := sess.Require(model.RoleStudent); err != nil {
		return nil, err
	}
	student, err := s.users.FindByUsername(ctx, sess.Identifier)
	if err != nil {
		return nil, storeError("find student", err, apperrors.ErrUserNotFound)
	}
	faculty, err := s.users.ListByRole(ctx, model.RoleFaculty)
	if err != nil {
		return nil, storeError("list faculty", err, nil)
	}

	term := s.CurrentSemester()
	out := make([]model.FeedbackStatus, 0, len(faculty))
	for _, f := range faculty {
		exists, err := s.feedback.ExistsForStudent(ctx, student.ID, f.ID, term)
		if err != nil {
			return nil, storeError("check feedback", err, nil)
		}
		status := model.StatusNotSubmitted
		if exists {
			status = model.StatusSubmitted
		}
		out = append(out, model.FeedbackStatus{
			FacultyUsername: f.Username,
			FacultyName:     f.Name,
			Status:          status,
			Semester:        term,
		})
	}
	return out, nil
}
