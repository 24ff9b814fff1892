package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/course-enrollment-api/internal/models"
	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
	"github.com/noah-isme/course-enrollment-api/pkg/export"
)

type enrolledCourseLister interface {
	ListCourses(ctx context.Context, studentID int64) ([]models.Course, error)
}

// ExportFile is a rendered document ready to be streamed.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders a student's enrolled courses as CSV or PDF.
type ExportService struct {
	enrollments enrolledCourseLister
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	logger      *zap.Logger
	now         func() time.Time
}

// NewExportService constructs the export service.
func NewExportService(enrollments enrolledCourseLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		enrollments: enrollments,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		logger:      logger,
		now:         time.Now,
	}
}

// EnrolledCourses renders the course list for studentID in the given format.
func (s *ExportService) EnrolledCourses(ctx context.Context, studentID int64, rawFormat string) (*ExportFile, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, appErrors.Validation(err, "unsupported export format")
	}
	courses, err := s.enrollments.ListCourses(ctx, studentID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{Headers: []string{"id", "title", "credits"}}
	dataset.Rows = make([]map[string]string, 0, len(courses))
	for _, course := range courses {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"id":      strconv.FormatInt(course.ID, 10),
			"title":   course.Title,
			"credits": strconv.FormatInt(course.Credits, 10),
		})
	}

	var content []byte
	switch format {
	case export.FormatPDF:
		title := fmt.Sprintf("Courses for student %d", studentID)
		footer := "Generated " + s.now().UTC().Format(time.RFC3339)
		content, err = s.pdf.Render(dataset, title, footer)
	default:
		content, err = s.csv.Render(dataset)
	}
	if err != nil {
		s.logger.Error("render export failed", zap.Int64("student_id", studentID), zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to render export")
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("student-%d-courses.%s", studentID, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
