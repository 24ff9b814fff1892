package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-enrollment-api/internal/models"
)

// EnrollmentRepository manages the student/course join table.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create inserts a join-row. Referenced rows are not checked.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = "INSERT INTO enrollments (student_id, course_id) VALUES (?, ?)"
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), enrollment.StudentID, enrollment.CourseID); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// ListCoursesByStudent returns the courses a student is enrolled in. A course
// appears once per join-row.
func (r *EnrollmentRepository) ListCoursesByStudent(ctx context.Context, studentID int64) ([]models.Course, error) {
	const query = `SELECT courses.id, courses.title, courses.credits
        FROM enrollments
        JOIN courses ON enrollments.course_id = courses.id
        WHERE enrollments.student_id = ?`
	courses := make([]models.Course, 0)
	if err := r.db.SelectContext(ctx, &courses, r.db.Rebind(query), studentID); err != nil {
		return nil, fmt.Errorf("list enrolled courses: %w", err)
	}
	return courses, nil
}

// Delete removes every join-row for the pair and reports how many matched.
func (r *EnrollmentRepository) Delete(ctx context.Context, enrollment models.Enrollment) (int64, error) {
	affected, err := execAffected(ctx, r.db, "DELETE FROM enrollments WHERE student_id = ? AND course_id = ?", enrollment.StudentID, enrollment.CourseID)
	if err != nil {
		return 0, fmt.Errorf("delete enrollment: %w", err)
	}
	return affected, nil
}
