package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-enrollment-api/internal/models"
	"github.com/noah-isme/course-enrollment-api/internal/service"
	appErrors "github.com/noah-isme/course-enrollment-api/pkg/errors"
	"github.com/noah-isme/course-enrollment-api/pkg/response"
)

type enrollmentService interface {
	Enroll(ctx context.Context, req service.EnrollmentRequest) (*models.Enrollment, error)
	ListCourses(ctx context.Context, studentID int64) ([]models.Course, error)
	Unenroll(ctx context.Context, req service.EnrollmentRequest) error
}

type exportService interface {
	EnrolledCourses(ctx context.Context, studentID int64, format string) (*service.ExportFile, error)
}

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments enrollmentService
	exports     exportService
}

// NewEnrollmentHandler constructs EnrollmentHandler. exports may be nil when
// the export endpoint is disabled.
func NewEnrollmentHandler(enrollments enrollmentService, exports exportService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments, exports: exports}
}

// Create godoc
// @Summary Enroll student in course
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.EnrollmentRequest true "Enrollment payload"
// @Success 201 {object} models.Enrollment
// @Failure 400 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req service.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	enrollment, err := h.enrollments.Enroll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// ListByStudent godoc
// @Summary List a student's courses
// @Tags Enrollments
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {array} models.Course
// @Failure 400 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Router /enrollments/{studentId} [get]
func (h *EnrollmentHandler) ListByStudent(c *gin.Context) {
	studentID, err := idParam(c, "studentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	courses, err := h.enrollments.ListCourses(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}

// Delete godoc
// @Summary Unenroll student from course
// @Tags Enrollments
// @Accept json
// @Param payload body service.EnrollmentRequest true "Enrollment payload"
// @Success 204
// @Failure 400 {object} errors.Error
// @Failure 404 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Router /enrollments [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	var req service.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	if err := h.enrollments.Unenroll(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export godoc
// @Summary Export a student's courses
// @Tags Enrollments
// @Produce text/csv
// @Produce application/pdf
// @Param studentId path int true "Student ID"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} errors.Error
// @Failure 500 {object} errors.Error
// @Router /enrollments/{studentId}/export [get]
func (h *EnrollmentHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "exports are disabled"))
		return
	}
	studentID, err := idParam(c, "studentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.EnrolledCourses(c.Request.Context(), studentID, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Content)
}
