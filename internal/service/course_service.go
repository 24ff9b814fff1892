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

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// CourseRequest holds the payload for creating or updating courses.
type CourseRequest struct {
	Title   string          `json:"title" validate:"required"`
	Credits *models.FlexInt `json:"credits" validate:"required" swaggertype:"integer"`
}

func (r CourseRequest) toModel(id int64) *models.Course {
	return &models.Course{ID: id, Title: r.Title, Credits: r.Credits.Int64()}
}

// CourseService handles course use-cases.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewCourseService constructs the course service.
func NewCourseService(repo courseRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, metrics: metrics, logger: logger}
}

func (s *CourseService) validate(req *CourseRequest) error {
	check := CourseRequest{Title: strings.TrimSpace(req.Title), Credits: req.Credits}
	if err := s.validator.Struct(check); err != nil {
		return appErrors.Validation(err, "invalid course payload")
	}
	return nil
}

// List returns all courses.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	start := time.Now()
	courses, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("courses.list", time.Since(start), err)
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Create registers a new course.
func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*models.Course, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	course := req.toModel(0)
	start := time.Now()
	err := s.repo.Create(ctx, course)
	s.metrics.ObserveDBQuery("courses.create", time.Since(start), err)
	if err != nil {
		s.logger.Error("create course failed", zap.Error(err))
		return nil, appErrors.Internal(err, "failed to create course")
	}
	return course, nil
}

// Update overwrites an existing course.
func (s *CourseService) Update(ctx context.Context, id int64, req CourseRequest) (*models.Course, error) {
	if err := s.validate(&req); err != nil {
		return nil, err
	}
	course := req.toModel(id)
	start := time.Now()
	affected, err := s.repo.Update(ctx, course)
	s.metrics.ObserveDBQuery("courses.update", time.Since(start), err)
	if err != nil {
		s.logger.Error("update course failed", zap.Int64("course_id", id), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to update course")
	}
	if affected == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Course not found")
	}
	return course, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	affected, err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery("courses.delete", time.Since(start), err)
	if err != nil {
		s.logger.Error("delete course failed", zap.Int64("course_id", id), zap.Error(err))
		return appErrors.Internal(err, "failed to delete course")
	}
	if affected == 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "Course not found")
	}
	return nil
}
