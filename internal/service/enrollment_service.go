package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
)

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ListCoursesByStudent(ctx context.Context, studentID int64) ([]models.Course, error)
	Delete(ctx context.Context, enrollment models.Enrollment) (int64, error)
}

// EnrollmentRequest identifies a student/course pair.
type EnrollmentRequest struct {
	StudentID *models.FlexInt `json:"student_id" validate:"required" swaggertype:"integer"`
	CourseID  *models.FlexInt `json:"course_id" validate:"required" swaggertype:"integer"`
}

// EnrollmentService handles enrollment use-cases.
type EnrollmentService struct {
	repo      enrollmentRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewEnrollmentService constructs the enrollment service.
func NewEnrollmentService(repo enrollmentRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

func (s *EnrollmentService) pair(req EnrollmentRequest) (models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Enrollment{}, appErrors.Validation(err, "invalid enrollment payload")
	}
	return models.Enrollment{StudentID: req.StudentID.Int64(), CourseID: req.CourseID.Int64()}, nil
}

// Enroll links a student to a course. Neither side is checked for existence.
func (s *EnrollmentService) Enroll(ctx context.Context, req EnrollmentRequest) (*models.Enrollment, error) {
	enrollment, err := s.pair(req)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	err = s.repo.Create(ctx, &enrollment)
	s.metrics.ObserveDBQuery("enrollments.create", time.Since(start), err)
	if err != nil {
		s.logger.Error("create enrollment failed",
			zap.Int64("student_id", enrollment.StudentID),
			zap.Int64("course_id", enrollment.CourseID),
			zap.Error(err))
		return nil, appErrors.Internal(err, "failed to create enrollment")
	}
	return &enrollment, nil
}

// ListCourses returns the courses a student is enrolled in.
func (s *EnrollmentService) ListCourses(ctx context.Context, studentID int64) ([]models.Course, error) {
	start := time.Now()
	courses, err := s.repo.ListCoursesByStudent(ctx, studentID)
	s.metrics.ObserveDBQuery("enrollments.list_courses", time.Since(start), err)
	if err != nil {
		s.logger.Error("list enrolled courses failed", zap.Int64("student_id", studentID), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list enrolled courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Unenroll removes every join-row for the pair.
func (s *EnrollmentService) Unenroll(ctx context.Context, req EnrollmentRequest) error {
	enrollment, err := s.pair(req)
	if err != nil {
		return err
	}
	start := time.Now()
	affected, err := s.repo.Delete(ctx, enrollment)
	s.metrics.ObserveDBQuery("enrollments.delete", time.Since(start), err)
	if err != nil {
		s.logger.Error("delete enrollment failed",
			zap.Int64("student_id", enrollment.StudentID),
			zap.Int64("course_id", enrollment.CourseID),
			zap.Error(err))
		return appErrors.Internal(err, "failed to delete enrollment")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Enrollment not found")
	}
	return nil
}
