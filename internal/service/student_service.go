package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// StudentRequest holds the payload for creating or updating students.
type StudentRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// blank reports the request as the required check sees it: whitespace-only
// values count as missing. Stored values keep their original spacing.
func (r StudentRequest) blank() StudentRequest {
	return StudentRequest{Name: strings.TrimSpace(r.Name), Email: strings.TrimSpace(r.Email)}
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	start := time.Now()
	students, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("students.list", time.Since(start), err)
	if err != nil {
		s.logger.Error("list students failed", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list students")
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req.blank()); err != nil {
		return nil, appErrors.Validation(err, "invalid student payload")
	}
	student := &models.Student{Name: req.Name, Email: req.Email}
	start := time.Now()
	err := s.repo.Create(ctx, student)
	s.metrics.ObserveDBQuery("students.create", time.Since(start), err)
	if err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to create student")
	}
	return student, nil
}

// Update overwrites an existing student.
func (s *StudentService) Update(ctx context.Context, id int64, req StudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req.blank()); err != nil {
		return nil, appErrors.Validation(err, "invalid student payload")
	}
	student := &models.Student{ID: id, Name: req.Name, Email: req.Email}
	start := time.Now()
	affected, err := s.repo.Update(ctx, student)
	s.metrics.ObserveDBQuery("students.update", time.Since(start), err)
	if err != nil {
		s.logger.Error("update student failed", zap.Int64("student_id", id), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to update student")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Student not found")
	}
	return student, nil
}

// Delete removes a student. Existing enrollments are left in place.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	affected, err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery("students.delete", time.Since(start), err)
	if err != nil {
		s.logger.Error("delete student failed", zap.Int64("student_id", id), zap.Error(err))
		return appErrors.Internal(err, "failed to delete student")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Student not found")
	}
	return nil
}
