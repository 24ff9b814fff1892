package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-enrollment-api/internal/models"
)

// CourseRepository manages persistence for courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := r.db.SelectContext(ctx, &courses, "SELECT id, title, credits FROM courses ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Create inserts a course and sets its generated ID.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	id, err := insertReturningID(ctx, r.db, "INSERT INTO courses (title, credits) VALUES (?, ?)", course.Title, course.Credits)
	if err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	course.ID = id
	return nil
}

// Update overwrites title and credits and reports the number of matched rows.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) (int64, error) {
	affected, err := execAffected(ctx, r.db, "UPDATE courses SET title = ?, credits = ? WHERE id = ?", course.Title, course.Credits, course.ID)
	if err != nil {
		return 0, fmt.Errorf("update course: %w", err)
	}
	return affected, nil
}

// Delete removes a course by ID.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := execAffected(ctx, r.db, "DELETE FROM courses WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete course: %w", err)
	}
	return affected, nil
}
